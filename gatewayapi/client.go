// Package gatewayapi provides a client for the GatewayAPI SMS REST API.
//
// The client covers the three message endpoints:
//   - sending an SMS to one or more recipients
//   - querying the status of sent messages
//   - cancelling scheduled messages
//
// Basic usage:
//
//	client := gatewayapi.NewClient(token)
//
//	resp, err := client.SendSMS(ctx, "TestCo", "Hello", []gatewayapi.Recipient{"+45 12 34 56 78"}, nil)
//	if err != nil {
//		return err
//	}
//	ids := resp.IDs()
//
//	status, err := client.GetMessageStatus(ctx, ids...)
package gatewayapi

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const (
	BaseURL         = "https://gatewayapi.com/rest/"
	DefaultTimeout  = 30 * time.Second
	MaxSenderLength = 15

	messagesPath = "mtsms"
)

// Doer performs HTTP requests. *http.Client satisfies it and is safe for
// concurrent use; custom implementations must be as well if the Client is
// shared between goroutines.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client holds the API token and transport. It has no mutable state and can
// be reused for any number of calls.
type Client struct {
	token      string
	baseURL    string
	httpClient Doer
	logger     zerolog.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the default transport.
func WithHTTPClient(httpClient Doer) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithLogger enables debug logging of outgoing requests. Without it the
// client does not log.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a client authenticating with the given API token.
func NewClient(token string, opts ...Option) *Client {
	client := &Client{
		token:   token,
		baseURL: BaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	return client
}
