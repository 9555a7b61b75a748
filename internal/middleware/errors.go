package middleware

import "errors"

var (
	ErrMissingHeaders   = errors.New("missing authentication headers")
	ErrUnknownAPIKey    = errors.New("invalid API key")
	ErrInvalidNonce     = errors.New("invalid nonce")
	ErrStaleNonce       = errors.New("nonce outside the accepted window")
	ErrReplayedRequest  = errors.New("request already processed")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrRateLimited      = errors.New("rate limit exceeded")
)
