// Package mail sends contact form notifications through the Resend API.
package mail

import (
	"net/http"
	"time"
)

const (
	// defaultBaseURL is the root endpoint for the Resend API
	defaultBaseURL = "https://api.resend.com"
	// defaultRequestTimeout bounds the send call; the reference behavior has
	// no timeout, but an unbounded outbound call would hold the request open
	defaultRequestTimeout = 10 * time.Second
)

// Client sends transactional email via Resend
type Client struct {
	apiKey     string
	from       string
	to         string
	baseURL    string
	httpClient *http.Client
}

// Option configures the Client
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client for the Resend client
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the default Resend API base URL
func WithBaseURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.baseURL = url
		}
	}
}

// New creates a new Resend client sending from the given address to the
// given destination
func New(apiKey, from, to string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	if from == "" || to == "" {
		return nil, ErrMissingAddress
	}

	client := &Client{
		apiKey:     apiKey,
		from:       from,
		to:         to,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}
