// Package infrabed is a client for the embedding-calculation service.
//
// Every call goes through Call, which signs the request when asked to,
// routes the payload, sends it and maps non-2xx responses to *APIError.
// EmbedOne, EmbedMany and GetEmbeddings are built on top of it.
package infrabed

import (
	"net/http"
	"time"

	"infrabed/pkg/log"
	"infrabed/pkg/signature"
)

// Client holds the credentials and the HTTP session for one caller.
type Client struct {
	apiKey     string
	apiSecret  string
	baseURL    string
	header     http.Header
	httpClient *http.Client
	l          log.Logger
	now        func() time.Time
}

// New creates a client with its own session. Call Close when done.
func New(apiKey, apiSecret string) (*Client, error) {
	if apiKey == "" || apiSecret == "" {
		return nil, ErrMissingCredentials
	}

	header := http.Header{}
	header.Set("Accept", mimeJSON)
	header.Set("Content-Type", mimeJSON)
	header[signature.HeaderAPIKey] = []string{apiKey}

	return &Client{
		apiKey:     apiKey,
		apiSecret:  apiSecret,
		baseURL:    DefaultBaseURL,
		header:     header,
		httpClient: newHTTPClient(),
		l:          log.NewNop(),
		now:        time.Now,
	}, nil
}

func newHTTPClient() *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	return &http.Client{Transport: transport}
}

// WithBaseURL points the client at another deployment. The URL must end
// with the "back/" segment the signature covers.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// WithHTTPClient replaces the session transport.
func (c *Client) WithHTTPClient(httpClient *http.Client) *Client {
	c.httpClient = httpClient
	return c
}

// WithLogger enables debug tracing of requests.
func (c *Client) WithLogger(l log.Logger) *Client {
	c.l = l
	return c
}

// BaseURL returns the URL paths are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Close releases idle connections held by the session.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
