package middleware

import "time"

// Config holds request verification settings.
type Config struct {
	Credentials     map[string]string // API key -> secret
	NonceTTL        time.Duration     // accepted clock skew, also how long nonces are remembered
	RateLimitPerMin int               // per API key
	Prefix          string            // route prefix removed before signing, e.g. "/back/"
}

const (
	ContextKeyAPIKey = "api_key"
	HeaderRequestID  = "X-Request-ID"

	maxRememberedNonces = 100000
	maxRateLimitKeys    = 1000
)
