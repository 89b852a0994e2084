// Package screens holds the state and operations of each screen of the app,
// independent of how they are rendered. The terminal UI and the CLI drive
// the same screen values.
package screens

import (
	"io"
	"log/slog"
)

func orDiscard(log *slog.Logger) *slog.Logger {
	if log == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return log
}
