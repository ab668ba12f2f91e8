// Package logger provides logging functionality for the git-collab application.
package logger

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted detail message, shown in verbose mode only.
	Logf(format string, args ...interface{})

	// Infof logs a formatted informational message.
	Infof(format string, args ...interface{})

	// Errorf logs a formatted error message.
	Errorf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// Infof does nothing for noop logger.
func (n *noopLogger) Infof(_ string, _ ...interface{}) {}

// Errorf does nothing for noop logger.
func (n *noopLogger) Errorf(_ string, _ ...interface{}) {}

// zeroLogger writes human readable leveled messages through zerolog.
type zeroLogger struct {
	log zerolog.Logger
}

// NewLogger creates a logger writing messages at or above level to w.
// Colours are enabled only when w is a terminal.
func NewLogger(w io.Writer, level zerolog.Level) Logger {
	output := zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      !isTerminal(w),
		PartsExclude: []string{zerolog.TimestampFieldName},
	}

	return &zeroLogger{
		log: zerolog.New(output).Level(level),
	}
}

// NewDefaultLogger creates a logger writing informational messages and errors to stderr.
func NewDefaultLogger() Logger {
	return NewLogger(os.Stderr, zerolog.InfoLevel)
}

// NewVerboseLogger creates a logger writing every message to stderr.
func NewVerboseLogger() Logger {
	return NewLogger(os.Stderr, zerolog.DebugLevel)
}

// NewQuietLogger creates a logger writing only errors to stderr.
func NewQuietLogger() Logger {
	return NewLogger(os.Stderr, zerolog.ErrorLevel)
}

// Logf writes a debug message.
func (l *zeroLogger) Logf(format string, args ...interface{}) {
	l.log.Debug().Msgf(format, args...)
}

// Infof writes an info message.
func (l *zeroLogger) Infof(format string, args ...interface{}) {
	l.log.Info().Msgf(format, args...)
}

// Errorf writes an error message.
func (l *zeroLogger) Errorf(format string, args ...interface{}) {
	l.log.Error().Msgf(format, args...)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
