// Package signature builds the canonical signable string of a request and
// signs it with HMAC-SHA256.
//
// The signable string is
//
//	{nonce}{METHOD}back/{endpoint}
//
// where endpoint is the path, with "?k1=v1&k2=v2" appended for GET requests
// carrying params. Before hashing every single quote becomes a double quote
// and every space is removed. The service applies the same normalization, so
// it is part of the wire contract and must not be altered.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strconv"
	"strings"
	"time"
)

var normalizer = strings.NewReplacer("'", `"`, " ", "")

// Canonicalize returns the signable view of a request. For non-GET requests
// with params it also returns the compact JSON body the request must carry.
func Canonicalize(nonce string, method Method, path string, params *Params) (Canonical, error) {
	c := Canonical{Endpoint: Endpoint(method, path, params)}
	if !method.IsGet() && params.Len() > 0 {
		body, err := CompactJSON(params)
		if err != nil {
			return Canonical{}, err
		}
		c.Body = body
	}
	c.Message = message(nonce, method, c.Endpoint)
	return c, nil
}

// Endpoint is path, extended with the signable query string for GET
// requests carrying params.
func Endpoint(method Method, path string, params *Params) string {
	if method.IsGet() && params.Len() > 0 {
		return path + "?" + QueryString(params)
	}
	return path
}

// Message returns the normalized signable string.
func Message(nonce string, method Method, path string, params *Params) string {
	return message(nonce, method, Endpoint(method, path, params))
}

func message(nonce string, method Method, endpoint string) string {
	return normalizer.Replace(nonce + method.Upper() + Prefix + endpoint)
}

// Sign returns base64(HMAC-SHA256(secret, signable string)).
func Sign(nonce string, method Method, path string, params *Params, secret string) string {
	return Digest(Message(nonce, method, path, params), secret)
}

// Digest signs an already normalized message.
func Digest(message, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(message))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Verify reports whether signature matches message under secret.
// The comparison runs in constant time on the decoded bytes.
func Verify(message, secret, signature string) bool {
	expected, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(message))
	return hmac.Equal(expected, mac.Sum(nil))
}

// Nonce returns t as epoch milliseconds.
func Nonce(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

// ParseNonce is the inverse of Nonce.
func ParseNonce(nonce string) (time.Time, error) {
	ms, err := strconv.ParseInt(nonce, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms), nil
}
