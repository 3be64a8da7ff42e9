package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	slack "github.com/nobuo-miura/rustslack"
	"github.com/nobuo-miura/rustslack/internal/config"
	"github.com/nobuo-miura/rustslack/internal/observability"
	"go.uber.org/zap"
)

func main() {
	text := flag.String("text", "", "message text to post")
	deleteTS := flag.String("delete", "", "ts of a message to delete instead of posting")
	channel := flag.String("channel", "", "override SLACK_CHANNEL")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	opts := []slack.Option{
		slack.WithTimeout(cfg.HTTPTimeout()),
		slack.WithLogger(logger),
	}
	if cfg.SlackBaseURL != "" {
		opts = append(opts, slack.WithBaseURL(cfg.SlackBaseURL))
	}
	client := slack.New(cfg.SlackToken, opts...)

	targetChannel := cfg.SlackChannel
	if *channel != "" {
		targetChannel = *channel
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if *deleteTS != "" {
		if err := client.DeleteContext(ctx, targetChannel, *deleteTS); err != nil {
			logger.Fatal("delete failed", zap.Error(err))
		}
		logger.Info("message deleted", zap.String("channel", targetChannel), zap.String("ts", *deleteTS))
		return
	}

	if *text == "" {
		logger.Fatal("-text is required when not deleting")
	}

	ts, err := client.PostMessageTextContext(ctx, targetChannel, *text)
	if err != nil {
		logger.Fatal("post failed", zap.Error(err))
	}
	logger.Info("message posted", zap.String("channel", targetChannel), zap.String("ts", ts))
}
