// Package logging defines the structured, context-aware logger used by the
// JobHub client. It is also the diagnostic channel of the session store.
package logging

import "context"

// Logger takes key/value pairs after the message:
//
//	log.Warn(ctx, "login rejected", "status", 401)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given pairs.
	With(args ...any) Logger
}
