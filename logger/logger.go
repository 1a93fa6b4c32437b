// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package logger provides a context-aware logger built on [slog].
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

type ctxKey string

const loggerKey ctxKey = "logger"

// Logf is a printf-style logging function.
type Logf func(format string, args ...any)

// Write implements [io.Writer] by logging p as a single message.
func (f Logf) Write(p []byte) (int, error) {
	f("%s", p)
	return len(p), nil
}

// Logger encapsulates an [slog.Logger] together with the [slog.LevelVar]
// that controls its level.
type Logger struct {
	*slog.Logger
	Level *slog.LevelVar
}

// Options configure the console handler created by [New].
type Options struct {
	// Level controls the minimum level. If nil, LevelInfo is used.
	Level *slog.LevelVar
	// NoColor disables ANSI colors.
	NoColor bool
}

// New creates a Logger that writes human-readable records to w.
func New(w io.Writer, opts Options) *Logger {
	level := opts.Level
	if level == nil {
		level = new(slog.LevelVar)
		level.Set(slog.LevelInfo)
	}
	h := tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    opts.NoColor,
	})
	return &Logger{
		Logger: slog.New(h),
		Level:  level,
	}
}

var defaultLogger = New(io.Discard, Options{NoColor: true})

// Put returns a new context with the provided [Logger].
func Put(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// Get retrieves the [Logger] from the context.
//
// If the context has no [Logger], it returns a default [Logger] that discards all
// messages.
func Get(ctx context.Context) *Logger {
	if l, ok := ctx.Value(loggerKey).(*Logger); ok {
		return l
	}
	return defaultLogger
}

// Debug logs a debug message.
func Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	Get(ctx).LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}

// Printf returns a [Logf] that writes each message on its own line to w.
func Printf(w io.Writer) Logf {
	return func(format string, args ...any) {
		msg := fmt.Sprintf(format, args...)
		if len(msg) == 0 || msg[len(msg)-1] != '\n' {
			msg += "\n"
		}
		io.WriteString(w, msg)
	}
}
