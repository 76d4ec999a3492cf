//go:build !android

package logsink

import (
	"log/slog"
	"os"
)

func systemHandler(level slog.Leveler) *Handler {
	return NewHandler(os.Stderr, level)
}
