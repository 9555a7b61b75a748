package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"infrabed/pkg/signature"
)

// Verifier checks signed requests: known key, fresh nonce, valid signature
// and no exact replay.
type Verifier struct {
	secrets     map[string]string
	nonceTTL    time.Duration
	seen        *expirable.LRU[string, struct{}]
	seenMu      sync.Mutex
	rateLimiter *rateLimiter
	now         func() time.Time
}

func NewVerifier(cfg Config) *Verifier {
	return &Verifier{
		secrets:     cfg.Credentials,
		nonceTTL:    cfg.NonceTTL,
		seen:        expirable.NewLRU[string, struct{}](maxRememberedNonces, nil, 2*cfg.NonceTTL),
		rateLimiter: newRateLimiter(cfg.RateLimitPerMin),
		now:         time.Now,
	}
}

// Verify authenticates r. path is the request path relative to the API
// prefix, exactly as the client passed it to the signer. body is the raw
// request body, used only to tell duplicate requests apart.
func (v *Verifier) Verify(r *http.Request, path string, body []byte) (string, error) {
	h := signature.HeadersFrom(r.Header)
	if h.APIKey == "" || h.Nonce == "" || h.Signature == "" {
		return "", ErrMissingHeaders
	}

	secret, ok := v.secrets[h.APIKey]
	if !ok {
		return "", ErrUnknownAPIKey
	}

	issued, err := signature.ParseNonce(h.Nonce)
	if err != nil {
		return h.APIKey, fmt.Errorf("%w: %v", ErrInvalidNonce, err)
	}
	if age := v.now().Sub(issued); age > v.nonceTTL || age < -v.nonceTTL {
		return h.APIKey, ErrStaleNonce
	}

	method := signature.Method(strings.ToLower(r.Method))
	var params *signature.Params
	if method.IsGet() {
		if params, err = signature.ParamsFromQuery(r.URL.RawQuery); err != nil {
			return h.APIKey, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
		}
	}

	msg := signature.Message(h.Nonce, method, path, params)
	if !signature.Verify(msg, secret, h.Signature) {
		return h.APIKey, ErrInvalidSignature
	}

	if !v.remember(h, body) {
		return h.APIKey, ErrReplayedRequest
	}
	return h.APIKey, nil
}

// remember records the request and reports false if it was already seen.
func (v *Verifier) remember(h signature.Headers, body []byte) bool {
	sum := sha256.Sum256(body)
	key := h.APIKey + ":" + h.Nonce + ":" + h.Signature + ":" + hex.EncodeToString(sum[:])

	v.seenMu.Lock()
	defer v.seenMu.Unlock()

	if v.seen.Contains(key) {
		return false
	}
	v.seen.Add(key, struct{}{})
	return true
}

// CheckRateLimit enforces the per-key request budget.
func (v *Verifier) CheckRateLimit(apiKey string) error {
	return v.rateLimiter.Allow(apiKey)
}

// rateLimiter keeps one token bucket per key and forgets idle keys.
type rateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			maxRateLimitKeys,
			nil,
			time.Minute*5,
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0),
		burst: burst,
	}
}

func (rl *rateLimiter) Allow(key string) error {
	rl.mu.Lock()
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	rl.mu.Unlock()

	if !limiter.Allow() {
		return fmt.Errorf("%w for %s", ErrRateLimited, key)
	}
	return nil
}
