package log

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type ctxKey int

const correlationIDKey ctxKey = iota

// SetCorrelationID returns a context carrying the given correlation id.
func SetCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// SetContextFromHTTP lifts the correlation id from the incoming request
// headers into the context, minting a new one when absent.
func SetContextFromHTTP(ctx context.Context, req *http.Request) context.Context {
	cid := req.Header.Get("X-Correlation-Id")
	if cid == "" {
		cid = req.Header.Get("X-Request-Id")
	}
	if cid == "" {
		cid = uuid.NewString()
	}
	return SetCorrelationID(ctx, cid)
}

// CorrelationID returns the correlation id stored in ctx, or "".
func CorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(correlationIDKey).(string); ok {
		return v
	}
	return ""
}
