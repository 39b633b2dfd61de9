// SPDX-License-Identifier: MIT

package parbench

import (
	"log/slog"

	"github.com/katalvlaran/parbench/internal/logx"
)

// SetLogger configures the logger for parbench and all its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Log levels used:
//   - [slog.LevelDebug]: scheduler forks, per-trial timings, image export
//   - [slog.LevelInfo]: benchmark start/finish in the commands
//
// Example:
//
//	parbench.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) { logx.Set(l) }

// Logger returns the logger currently installed by SetLogger.
func Logger() *slog.Logger { return logx.Logger() }
