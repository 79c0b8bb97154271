// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package cli implements the atlas command-line interface.
//
// The CLI generates, inspects, and converts texture atlas layouts. It is
// built on cobra with charmbracelet/log for leveled output.
//
// # Commands
//
//   - grid: generate a layout from uniform grid parameters
//   - inspect: print a layout summary with its section table
//   - convert: translate between manifest and snapshot encodings
//   - preview: render a wireframe PNG of the section geometry
//   - slice: cut a sprite sheet into per-section images
//   - clips: validate animation clips against a layout
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// ride the command context, and the atlas library's structured logging
// is routed into the same sink.
package cli

import (
	"context"
	"io"
	"log/slog"

	charmlog "github.com/charmbracelet/log"

	"github.com/gogpu/atlas"
)

// newLogger creates a logger with timestamp formatting that writes to w
// and filters messages at the given level.
func newLogger(w io.Writer, level charmlog.Level) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// ctxKey is the type for context keys used in this package.
// Using a distinct type prevents collisions with other packages.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *charmlog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx. If no logger is
// attached it returns charmlog.Default, so commands always have a valid
// logger even if context setup fails.
func loggerFromContext(ctx context.Context) *charmlog.Logger {
	if l, ok := ctx.Value(loggerKey).(*charmlog.Logger); ok {
		return l
	}
	return charmlog.Default()
}

// routeLibraryLogs points the atlas library's structured logging at the
// CLI logger. charmlog.Logger implements slog.Handler, so library debug
// records land in the same stream as command output.
func routeLibraryLogs(l *charmlog.Logger) {
	atlas.SetLogger(slog.New(l))
}
