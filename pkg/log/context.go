package log

import "context"

// RequestIDKey is the field name request IDs are logged under.
const RequestIDKey = "request_id"

type requestIDCtxKey struct{}

// WithRequestID stores id in ctx so every log line carries it.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDCtxKey{}, id)
}

// RequestID returns the id stored by WithRequestID, or "".
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDCtxKey{}).(string)
	return id
}
