// Package logging builds the application's zerolog logger.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

const permission = 0o664

// Logger holds a configured logger and the file backing it, if any.
type Logger struct {
	Log  zerolog.Logger
	file *os.File
}

// New opens path for appending and returns a logger writing to it at the
// given level. An empty path yields a disabled logger, so callers never need
// to branch on whether logging is on.
func New(path, level string) (*Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	if path == "" {
		return &Logger{Log: zerolog.Nop()}, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
	if err != nil {
		return nil, err
	}
	log := zerolog.New(zerolog.SyncWriter(f)).Level(lvl).With().Timestamp().Logger()
	return &Logger{Log: log, file: f}, nil
}

// Close releases the backing file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
