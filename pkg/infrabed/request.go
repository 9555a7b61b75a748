package infrabed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"infrabed/pkg/signature"
)

// Call performs one request against base URL + path and returns the JSON
// body of a 2xx response unchanged.
//
// When signed is true the request carries nonce, API-KEY and API-SIGN
// headers. GET data travels as the query string; signed non-GET data travels
// as a compact JSON body; anything else is sent without a payload.
func (c *Client) Call(ctx context.Context, method signature.Method, path string, signed bool, data *signature.Params) (json.RawMessage, error) {
	if data == nil {
		data = signature.NewParams()
	}

	ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	httpReq, err := c.newRequest(ctx, method, path, signed, data)
	if err != nil {
		return nil, err
	}

	c.l.Debugf(ctx, "infrabed: %s %s signed=%t", httpReq.Method, httpReq.URL.Path, signed)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call infrabed API: %w", err)
	}
	defer resp.Body.Close()

	c.l.Debugf(ctx, "infrabed: %s %s -> %d", httpReq.Method, httpReq.URL.Path, resp.StatusCode)

	return handleResponse(resp)
}

// Get performs a GET; data becomes the query string.
func (c *Client) Get(ctx context.Context, path string, signed bool, data *signature.Params) (json.RawMessage, error) {
	return c.Call(ctx, signature.MethodGet, path, signed, data)
}

// Post is a POST; data only becomes a body when signed is true.
func (c *Client) Post(ctx context.Context, path string, signed bool, data *signature.Params) (json.RawMessage, error) {
	return c.Call(ctx, signature.MethodPost, path, signed, data)
}

func (c *Client) newRequest(ctx context.Context, method signature.Method, path string, signed bool, data *signature.Params) (*http.Request, error) {
	uri := c.baseURL + path
	header := c.header.Clone()

	var body io.Reader
	if signed {
		nonce := signature.Nonce(c.now())
		canonical, err := signature.Canonicalize(nonce, method, path, data)
		if err != nil {
			return nil, fmt.Errorf("failed to canonicalize request: %w", err)
		}

		signature.Headers{
			Nonce:     nonce,
			APIKey:    c.apiKey,
			Signature: signature.Digest(canonical.Message, c.apiSecret),
		}.Apply(header)

		if canonical.Body != nil {
			body = bytes.NewReader(canonical.Body)
		}
	}

	if method.IsGet() && data.Len() > 0 {
		uri += "?" + data.Values()
	}

	httpReq, err := http.NewRequestWithContext(ctx, method.Upper(), uri, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header = header

	return httpReq, nil
}

func handleResponse(resp *http.Response) (json.RawMessage, error) {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read infrabed response: %w", err)
	}

	if !isSuccess(resp.StatusCode) {
		return nil, newAPIError(resp, raw)
	}

	if !json.Valid(raw) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidResponse, truncate(raw, 200))
	}
	return json.RawMessage(raw), nil
}

// isSuccess checks the first digit of the status code.
func isSuccess(code int) bool {
	return strings.HasPrefix(strconv.Itoa(code), "2")
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
