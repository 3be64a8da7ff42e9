package config

import (
	"fmt"
	"time"

	"github.com/Netflix/go-env"
)

// Config carries the environment settings for the slack-post command.
type Config struct {
	SlackToken     string `env:"SLACK_TOKEN,required=true"`
	SlackChannel   string `env:"SLACK_CHANNEL,required=true"`
	SlackBaseURL   string `env:"SLACK_BASE_URL"`
	HTTPTimeoutSec int    `env:"HTTP_TIMEOUT_SEC,default=10"`
	LogLevel       string `env:"LOG_LEVEL,default=info"`
}

func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSec) * time.Second
}

func Load() (*Config, error) {
	var cfg Config
	_, err := env.UnmarshalFromEnviron(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}
