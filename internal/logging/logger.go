// Package logging defines the context-aware structured logger used by the
// client. Implementations wrap slog (console) or zap (rotating file).
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "request sent", "method", "GET", "resource", "profile")
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

// Options selects and tunes the logger built by New.
type Options struct {
	// File, when set, sends JSON logs to a rotating file instead of stderr.
	File  string
	Level string
}

// New returns a zap-backed file logger when opts.File is set and a slog text
// logger on stderr otherwise. The returned close func flushes buffered output.
func New(opts Options) (Logger, func() error, error) {
	if opts.File != "" {
		z, err := NewZapLogger(opts.File, opts.Level)
		if err != nil {
			return nil, nil, err
		}
		return z, z.Sync, nil
	}
	return NewStderrLogger(opts.Level), func() error { return nil }, nil
}

// Nop discards everything. Handy as a default for optional logger fields.
func Nop() Logger { return nopLogger{} }

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) Logger                  { return n }
