package compat

import (
	"fmt"
	"log/slog"

	"github.com/lixenwraith/ringlog"
)

// Builder provides a flexible way to create configured logger adapters.
// It can use an existing *ringlog.Logger instance or create a new one from
// a *ringlog.Config
type Builder struct {
	logger *ringlog.Logger
	logCfg *ringlog.Config
	err    error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithLogger specifies an existing logger to use for the adapters
// Recommended for applications that already have a central logger instance
// If this is set WithConfig is ignored
func (b *Builder) WithLogger(l *ringlog.Logger) *Builder {
	if l == nil {
		b.err = fmt.Errorf("ringlog/compat: provided logger cannot be nil")
		return b
	}
	b.logger = l
	return b
}

// WithConfig provides a configuration for a new logger instance
// This is used only if an existing logger is NOT provided via WithLogger
// If neither WithLogger nor WithConfig is used, a default logger will be created
func (b *Builder) WithConfig(cfg *ringlog.Config) *Builder {
	b.logCfg = cfg
	return b
}

// getLogger resolves the logger to be used, creating one if necessary
func (b *Builder) getLogger() (*ringlog.Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	// An existing logger was provided, so we use it
	if b.logger != nil {
		return b.logger, nil
	}

	cfg := b.logCfg
	if cfg == nil {
		// If no config was provided, use the default
		cfg = ringlog.DefaultConfig()
	}

	l, err := ringlog.NewWithConfig(cfg)
	if err != nil {
		return nil, err
	}

	// Cache the newly created logger for subsequent builds with this builder
	b.logger = l
	return l, nil
}

// BuildGnet creates a gnet adapter
// It can be used for servers that require a standard gnet logger
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(l, opts...), nil
}

// BuildFastHTTP creates a fasthttp adapter
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(l, opts...), nil
}

// BuildZerolog creates a zerolog sink
func (b *Builder) BuildZerolog() (*ZerologWriter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewZerologWriter(l), nil
}

// BuildSlog creates a log/slog handler forwarding records at or above minLevel
func (b *Builder) BuildSlog(minLevel slog.Level) (*SlogHandler, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewSlogHandler(l, minLevel), nil
}

// GetLogger returns the underlying *ringlog.Logger instance
// If a logger has not been provided or created yet, it will be initialized
func (b *Builder) GetLogger() (*ringlog.Logger, error) {
	return b.getLogger()
}
