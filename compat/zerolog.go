package compat

import (
	"strings"

	"github.com/lixenwraith/ringlog"
	"github.com/rs/zerolog"
)

// ZerologWriter wraps ringlog.Logger as a zerolog.LevelWriter so a zerolog
// front end can sink its records into the bounded core. Each write carries
// one rendered event; the core only receives the (level, message) pair.
type ZerologWriter struct {
	logger *ringlog.Logger
}

// NewZerologWriter creates a zerolog-compatible sink
func NewZerologWriter(logger *ringlog.Logger) *ZerologWriter {
	return &ZerologWriter{logger: logger}
}

// Write implements io.Writer for events without level information
func (w *ZerologWriter) Write(p []byte) (int, error) {
	if err := w.logger.Info(trimEventLine(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteLevel implements zerolog.LevelWriter, mapping zerolog levels onto
// the core's level constants
func (w *ZerologWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	var l int64
	switch level {
	case zerolog.TraceLevel, zerolog.DebugLevel:
		l = ringlog.LevelDebug
	case zerolog.WarnLevel:
		l = ringlog.LevelWarn
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		l = ringlog.LevelError
	default:
		l = ringlog.LevelInfo
	}

	if err := w.logger.Log(l, trimEventLine(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}

// trimEventLine strips the newline zerolog appends; the core terminates
// its own lines.
func trimEventLine(p []byte) string {
	return strings.TrimRight(string(p), "\n")
}
