package model

import (
	"context"
)

// ContextManager carries per-request values through a context.Context.
type ContextManager interface {
	SetRequestIDToContext(ctx context.Context, requestID string) context.Context
	GetRequestIDFromContext(ctx context.Context) (string, bool)
}
