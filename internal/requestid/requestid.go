// Package requestid tags API calls with a correlation id via context.
package requestid

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey struct{}

// With returns a context carrying the given request id.
func With(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// From extracts the request id from ctx, minting a new one when absent so
// every call has an id to log and send.
func From(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.New().String()
}
