// FILE: global.go
package ringlog

import (
	"sync"
)

// The process-wide default logger. Created exactly once by Init; the
// package-level convenience functions operate on it.
var (
	defaultMu     sync.Mutex
	defaultLogger *Logger
)

// Init performs the one-time setup of the process-wide logger. The single
// log file lives at directory/DefaultFileName; tag is handed to platform
// forwarders. A second call returns ErrAlreadyInitialized.
func Init(directory, tag string) error {
	cfg := DefaultConfig()
	cfg.Directory = directory
	cfg.Tag = tag
	return InitWithConfig(cfg)
}

// InitWithConfig is Init with a full configuration.
func InitWithConfig(cfg *Config) error {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultLogger != nil {
		return ErrAlreadyInitialized
	}

	logger, err := NewWithConfig(cfg)
	if err != nil {
		return err
	}
	defaultLogger = logger
	return nil
}

// Default returns the process-wide logger, or ErrNotInitialized before Init.
func Default() (*Logger, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultLogger == nil {
		return nil, ErrNotInitialized
	}
	return defaultLogger, nil
}

// Debug logs a message at debug level on the process-wide logger.
func Debug(args ...any) error {
	logger, err := Default()
	if err != nil {
		return err
	}
	return logger.Debug(args...)
}

// Info logs a message at info level on the process-wide logger.
func Info(args ...any) error {
	logger, err := Default()
	if err != nil {
		return err
	}
	return logger.Info(args...)
}

// Warn logs a message at warning level on the process-wide logger.
func Warn(args ...any) error {
	logger, err := Default()
	if err != nil {
		return err
	}
	return logger.Warn(args...)
}

// Error logs a message at error level on the process-wide logger.
func Error(args ...any) error {
	logger, err := Default()
	if err != nil {
		return err
	}
	return logger.Error(args...)
}

// ReadLogs returns the process-wide logger's retained content.
func ReadLogs() (string, error) {
	logger, err := Default()
	if err != nil {
		return "", err
	}
	return logger.ReadLogs()
}

// CurrentSize reports the process-wide logger's retained byte count,
// zero before Init.
func CurrentSize() int64 {
	logger, err := Default()
	if err != nil {
		return 0
	}
	return logger.CurrentSize()
}

// Shutdown syncs and closes the process-wide logger and releases the handle.
// Best-effort at process termination; a subsequent Init creates a fresh
// logger, which normal operation is not expected to do.
func Shutdown() error {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultLogger == nil {
		return nil
	}
	err := defaultLogger.Close()
	defaultLogger = nil
	return err
}
