package compat

import (
	"context"
	"log/slog"
	"strings"

	"github.com/lixenwraith/ringlog"
)

// SlogHandler implements slog.Handler on top of ringlog.Logger, so code
// written against the standard structured logger flows into the bounded
// core. Attributes render as "key=value" pairs appended to the message.
type SlogHandler struct {
	logger   *ringlog.Logger
	minLevel slog.Level
	attrs    []slog.Attr
	group    string
}

// NewSlogHandler creates a handler that forwards records at or above
// minLevel to logger
func NewSlogHandler(logger *ringlog.Logger, minLevel slog.Level) *SlogHandler {
	return &SlogHandler{
		logger:   logger,
		minLevel: minLevel,
	}
}

// Enabled implements slog.Handler
func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.minLevel
}

// Handle implements slog.Handler
func (h *SlogHandler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(r.Message)

	// Preformatted attrs already carry their group prefix.
	for _, a := range h.attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.Key)
		sb.WriteByte('=')
		sb.WriteString(a.Value.String())
	}

	// Record attrs belong to the group open at log time.
	r.Attrs(func(a slog.Attr) bool {
		sb.WriteByte(' ')
		sb.WriteString(h.qualify(a.Key))
		sb.WriteByte('=')
		sb.WriteString(a.Value.String())
		return true
	})

	return h.logger.Log(mapSlogLevel(r.Level), sb.String())
}

// WithAttrs implements slog.Handler. Keys are qualified with the group open
// at the time of the call, matching slog's grouping semantics.
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs), len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	for _, a := range attrs {
		newAttrs = append(newAttrs, slog.Attr{Key: h.qualify(a.Key), Value: a.Value})
	}
	return &SlogHandler{logger: h.logger, minLevel: h.minLevel, attrs: newAttrs, group: h.group}
}

func (h *SlogHandler) qualify(key string) string {
	if h.group == "" {
		return key
	}
	return h.group + "." + key
}

// WithGroup implements slog.Handler
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	group := name
	if h.group != "" {
		group = h.group + "." + name
	}
	return &SlogHandler{logger: h.logger, minLevel: h.minLevel, attrs: h.attrs, group: group}
}

func mapSlogLevel(level slog.Level) int64 {
	switch {
	case level < slog.LevelInfo:
		return ringlog.LevelDebug
	case level < slog.LevelWarn:
		return ringlog.LevelInfo
	case level < slog.LevelError:
		return ringlog.LevelWarn
	default:
		return ringlog.LevelError
	}
}
