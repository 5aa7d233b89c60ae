package testutil

import (
	"io"

	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/logger"
)

// MakeNoopLogger returns a logger that discards everything.
func MakeNoopLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, 0)
}

// StrPtr returns a pointer to s.
func StrPtr(s string) *string {
	return &s
}
