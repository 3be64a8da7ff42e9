package slack

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// DefaultBaseURL is the root of the Slack Web API.
const DefaultBaseURL = "https://slack.com/api"

const defaultTimeout = 30 * time.Second

// Client calls the Slack Web API on behalf of a single bot token.
//
// A Client has no mutable state after construction; one instance may be
// shared by any number of goroutines, with the transport pooling
// connections internally.
type Client struct {
	baseURL string
	client  *resty.Client
	logger  *zap.Logger
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithBaseURL overrides the API root. Mainly useful for tests and proxies.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithClient supplies a pre-configured resty client. The bearer token is
// still installed on it during New.
func WithClient(client *resty.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.client = client
		}
	}
}

// WithTimeout sets the per-request timeout on the underlying transport.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.client.SetTimeout(timeout)
		}
	}
}

// WithLogger attaches a logger for debug-level request tracing. The default
// logger discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New returns a Client authenticated with token.
func New(token string, opts ...Option) *Client {
	client := resty.New()
	client.SetTimeout(defaultTimeout)
	client.SetRetryCount(0)

	c := &Client{
		baseURL: DefaultBaseURL,
		client:  client,
		logger:  zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.client.SetAuthToken(token)

	return c
}

func (c *Client) endpoint(method string) string {
	return c.baseURL + "/" + method
}
