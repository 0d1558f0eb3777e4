// FILE: builder.go
package ringlog

// Builder provides a fluent API for building logger configurations.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg       *Config
	forwarder Forwarder
	err       error // Accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a new Logger instance with the specified configuration.
func (b *Builder) Build() (*Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	// NewWithConfig handles all validation and file setup.
	logger, err := NewWithConfig(b.cfg)
	if err != nil {
		return nil, err
	}

	logger.forwarder = b.forwarder
	return logger, nil
}

// Directory sets the log directory.
func (b *Builder) Directory(dir string) *Builder {
	b.cfg.Directory = dir
	return b
}

// FileName sets the backing file name.
func (b *Builder) FileName(name string) *Builder {
	b.cfg.FileName = name
	return b
}

// Tag sets the tag handed to platform forwarders.
func (b *Builder) Tag(tag string) *Builder {
	b.cfg.Tag = tag
	return b
}

// CapacityKB sets the in-memory ring capacity in KiB.
func (b *Builder) CapacityKB(size int64) *Builder {
	b.cfg.CapacityKB = size
	return b
}

// CapacityMB sets the in-memory ring capacity in MiB. Convenience.
func (b *Builder) CapacityMB(size int64) *Builder {
	b.cfg.CapacityKB = size * 1024
	return b
}

// MaxFileSizeKB sets the on-disk cap that triggers compaction. Zero keeps
// the file append-only.
func (b *Builder) MaxFileSizeKB(size int64) *Builder {
	b.cfg.MaxFileSizeKB = size
	return b
}

// TimestampFormat sets the time layout used for line timestamps.
func (b *Builder) TimestampFormat(format string) *Builder {
	b.cfg.TimestampFormat = format
	return b
}

// EnableConsole enables mirroring lines to stdout/stderr.
func (b *Builder) EnableConsole(enable bool) *Builder {
	b.cfg.EnableConsole = enable
	return b
}

// ConsoleTarget selects the console stream, "stdout" or "stderr".
func (b *Builder) ConsoleTarget(target string) *Builder {
	b.cfg.ConsoleTarget = target
	return b
}

// Forwarder attaches a platform forwarder that receives every written line.
func (b *Builder) Forwarder(f Forwarder) *Builder {
	b.forwarder = f
	return b
}

// Example usage:
// logger, err := ringlog.NewBuilder().
//
//	Directory("/var/log/app").
//	CapacityMB(10).
//	EnableConsole(true).
//	Build()
//
// if err == nil {
//
//	 defer logger.Close()
//	 logger.Info("Logger initialized successfully")
//
// }
