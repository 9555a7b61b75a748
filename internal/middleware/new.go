package middleware

import (
	"infrabed/pkg/log"
)

type Middleware struct {
	l        log.Logger
	verifier *Verifier
	prefix   string
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:        l,
		verifier: NewVerifier(cfg),
		prefix:   cfg.Prefix,
	}
}
