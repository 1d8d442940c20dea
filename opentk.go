// SPDX-License-Identifier: Unlicense OR MIT

// Package opentk binds native graphics entry points into typed call
// surfaces and negotiates framebuffer configurations across windowing
// backends (X11, Win32, Cocoa/Carbon, SDL2, dummy).
//
// The binding package loads extension-function tables, the graphics
// package relaxes unsatisfiable mode requests one attribute at a time,
// and the platform package selects the active backend and constructs
// opaque window handles for it.
package opentk

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards all log records. Enabled reports false so callers
// skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures logging for the module and all its packages. The
// default logger is silent. Pass nil to restore it.
//
// Log levels used: Debug for per-slot resolution results, Info for
// backend selection and bulk-load summaries.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the active logger. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
