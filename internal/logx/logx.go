// SPDX-License-Identifier: MIT

// Package logx holds the process-wide structured logger shared by all
// parbench packages.
//
// By default nothing is logged: the installed handler reports every level as
// disabled, so callers skip record construction entirely. Commands install a
// real handler through parbench.SetLogger.
package logx

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled returns false so slog never
// formats attributes for it.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(Nop())
}

// Nop returns a logger that drops all output.
func Nop() *slog.Logger { return slog.New(nopHandler{}) }

// Set installs l as the active logger. A nil l restores the silent default.
// Safe for concurrent use.
func Set(l *slog.Logger) {
	if l == nil {
		l = Nop()
	}
	current.Store(l)
}

// Logger returns the active logger. Never nil.
func Logger() *slog.Logger { return current.Load() }
