// FILE: logger.go
package ringlog

import (
	"io"
	"os"
	"sync"
	"time"
)

// Forwarder receives every encoded line written through a Logger, after the
// ring and file have been updated. Implementations bridge to platform log
// sinks (syslog, mobile system logs) under the tag configured on the Logger.
// Forward runs under the Logger's guard and must not call back into it.
type Forwarder interface {
	Forward(level int64, line []byte)
}

// Logger is a bounded, crash-tolerant log sink. It owns one RingBuffer and
// one backing file handle; a single mutex serializes every write and query,
// so lines appear in the ring and in ReadLogs output in the exact order
// their calls acquired the guard.
type Logger struct {
	mu        sync.Mutex
	ring      *RingBuffer
	ser       *serializer
	file      *os.File
	path      string
	fileSize  int64 // bytes currently on disk, tracked by us
	maxFile   int64 // on-disk cap in bytes, 0 = append-only
	console   io.Writer
	forwarder Forwarder
	tag       string
}

// New constructs an independent Logger writing to DefaultFileName inside
// directory, with all other settings at their defaults.
func New(directory string) (*Logger, error) {
	cfg := DefaultConfig()
	cfg.Directory = directory
	return NewWithConfig(cfg)
}

// NewWithConfig constructs a Logger from a validated configuration.
// The directory's immediate leaf is created if missing; a missing parent
// fails with an I/O error.
func NewWithConfig(cfg *Config) (*Logger, error) {
	if cfg == nil {
		return nil, fmtErrorf("configuration cannot be nil")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.Clone()

	file, size, path, err := openLogFile(cfg)
	if err != nil {
		return nil, err
	}

	l := &Logger{
		ring:     NewRingBuffer(cfg.capacityBytes()),
		ser:      newSerializer(cfg.TimestampFormat),
		file:     file,
		path:     path,
		fileSize: size,
		maxFile:  cfg.maxFileBytes(),
		tag:      cfg.Tag,
	}

	if cfg.EnableConsole {
		if cfg.ConsoleTarget == "stderr" {
			l.console = os.Stderr
		} else {
			l.console = os.Stdout
		}
	}

	return l, nil
}

// Log encodes a record with the current timestamp and writes it to the ring
// and the backing file under the guard. The ring is updated even when the
// file append fails; the I/O error is reported once and never retried, so
// ReadLogs stays usable while the disk is unwritable.
func (l *Logger) Log(level int64, args ...any) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	line := l.ser.serialize(time.Now(), level, args)
	l.ring.Write(line)

	if l.console != nil {
		_, _ = l.console.Write(line)
	}
	if l.forwarder != nil {
		l.forwarder.Forward(level, line)
	}

	return l.persist(line)
}

// Debug logs a message at debug level.
func (l *Logger) Debug(args ...any) error {
	return l.Log(LevelDebug, args...)
}

// Info logs a message at info level.
func (l *Logger) Info(args ...any) error {
	return l.Log(LevelInfo, args...)
}

// Warn logs a message at warning level.
func (l *Logger) Warn(args ...any) error {
	return l.Log(LevelWarn, args...)
}

// Error logs a message at error level.
func (l *Logger) Error(args ...any) error {
	return l.Log(LevelError, args...)
}

// ReadLogs returns the ring's current logical content, oldest first. After a
// wrap the leading bytes may belong to a record whose start was overwritten;
// that partial record is dropped so only whole lines are ever returned.
func (l *Logger) ReadLogs() (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return string(l.logicalLines()), nil
}

// CurrentSize reports the logically retained byte count of the ring. Never
// exceeds the configured capacity.
func (l *Logger) CurrentSize() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return int64(l.ring.Len())
}

// FileSize reports the bytes currently in the backing file.
func (l *Logger) FileSize() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.fileSize
}

// Path returns the backing file path, fixed at construction.
func (l *Logger) Path() string {
	return l.path
}

// Tag returns the platform forwarder tag, fixed at construction.
func (l *Logger) Tag() string {
	return l.tag
}

// Sync flushes the backing file to stable storage.
func (l *Logger) Sync() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	if err := l.file.Sync(); err != nil {
		return fmtErrorf("failed to sync log file '%s': %w", l.path, err)
	}
	return nil
}

// Close syncs and closes the backing file. Safe to call multiple times;
// writes after Close update the ring but report an I/O error.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}

	var finalErr error
	if err := l.file.Sync(); err != nil {
		finalErr = combineErrors(finalErr, fmtErrorf("failed to sync log file '%s' during close: %w", l.path, err))
	}
	if err := l.file.Close(); err != nil {
		finalErr = combineErrors(finalErr, fmtErrorf("failed to close log file '%s': %w", l.path, err))
	}
	l.file = nil
	return finalErr
}

// logicalLines reconstructs the ring content in logical order and trims the
// leading partial record when eviction has cut into one. Writes that land
// exactly on the capacity boundary evict nothing, so every retained record
// is still whole. Callers must hold the guard.
func (l *Logger) logicalLines() []byte {
	data := l.ring.Bytes()
	if !l.ring.Evicted() {
		return data
	}
	for i, c := range data {
		if c == '\n' {
			return data[i+1:]
		}
	}
	// No line terminator survived: a single record larger than the ring
	return nil
}
