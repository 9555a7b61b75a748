package signature

import (
	"net/http"
	"strings"
)

// Method is the lowercase HTTP verb a request is signed for.
type Method string

const (
	MethodGet  Method = "get"
	MethodPost Method = "post"
)

// Upper returns the verb as it appears in the signable string.
func (m Method) Upper() string {
	return strings.ToUpper(string(m))
}

// IsGet reports whether m is GET regardless of case.
func (m Method) IsGet() bool {
	return strings.EqualFold(string(m), string(MethodGet))
}

// Canonical is the signable view of one request.
type Canonical struct {
	Endpoint string // path, or path?query for GET with params
	Body     []byte // compact JSON for non-GET with params, nil otherwise
	Message  string // normalized signable string
}

// Headers are the per-request authentication headers.
type Headers struct {
	Nonce     string
	APIKey    string
	Signature string
}

// Apply writes the headers with their exact wire casing.
// http.Header.Set would canonicalize "nonce" to "Nonce".
func (h Headers) Apply(header http.Header) {
	header[HeaderNonce] = []string{h.Nonce}
	header[HeaderAPIKey] = []string{h.APIKey}
	header[HeaderAPISign] = []string{h.Signature}
}

// HeadersFrom reads authentication headers from an incoming request.
func HeadersFrom(header http.Header) Headers {
	return Headers{
		Nonce:     rawOrCanonical(header, HeaderNonce),
		APIKey:    rawOrCanonical(header, HeaderAPIKey),
		Signature: rawOrCanonical(header, HeaderAPISign),
	}
}

func rawOrCanonical(header http.Header, key string) string {
	if v, ok := header[key]; ok && len(v) > 0 {
		return v[0]
	}
	return header.Get(key)
}
