package safe

import (
	"io"
	"log/slog"
	"os"

	"github.com/secmon-lab/depfix/pkg/utils/logging"
)

// Close safely closes the resource and logs error if any
func Close(closer io.Closer) {
	if closer != nil {
		if err := closer.Close(); err != nil {
			if err == io.EOF {
				return
			}
			logging.Default().Warn("Fail to close resource", slog.Any("error", err))
		}
	}
}

// Remove safely removes the file and logs error if any
func Remove(path string) {
	if err := os.Remove(path); err != nil {
		logging.Default().Warn("Fail to remove file", slog.Any("error", err))
	}
}

// RemoveAll safely removes the directory and logs error if any
func RemoveAll(path string) {
	if err := os.RemoveAll(path); err != nil {
		logging.Default().Warn("Fail to remove file", slog.Any("error", err))
	}
}

type flusher interface {
	Flush() error
}

// Flush safely flushes buffered output and logs error if any
func Flush(f flusher) {
	if f != nil {
		if err := f.Flush(); err != nil {
			logging.Default().Warn("Fail to flush output", slog.Any("error", err))
		}
	}
}
