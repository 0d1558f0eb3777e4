// FILE: storage.go
package ringlog

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// openLogFile creates the immediate log directory if needed and opens the
// single backing file for appending. A missing parent directory is an error;
// nested paths are never created silently.
func openLogFile(cfg *Config) (*os.File, int64, string, error) {
	if err := os.Mkdir(cfg.Directory, 0755); err != nil && !errors.Is(err, fs.ErrExist) {
		return nil, 0, "", fmtErrorf("failed to create log directory '%s': %w", cfg.Directory, err)
	}

	path := filepath.Join(cfg.Directory, cfg.FileName)
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, 0, "", fmtErrorf("failed to open/create log file '%s': %w", path, err)
	}

	// The existing size seeds FileSize and the compaction trigger, so a
	// stat failure cannot be papered over with a zero baseline.
	fi, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, 0, "", fmtErrorf("failed to stat log file '%s': %w", path, err)
	}

	return file, fi.Size(), path, nil
}

// persist appends one encoded line to the backing file. When a file cap is
// configured and the append would exceed it, the file is compacted first:
// truncated and rewritten with the ring's current logical content, which
// already includes line. Callers must hold the guard.
func (l *Logger) persist(line []byte) error {
	if l.file == nil {
		return fmtErrorf("log file '%s' is closed", l.path)
	}

	if l.maxFile > 0 && l.fileSize+int64(len(line)) > l.maxFile {
		return l.compact()
	}

	n, err := l.file.Write(line)
	l.fileSize += int64(n)
	if err != nil {
		return fmtErrorf("failed to append to log file '%s': %w", l.path, err)
	}
	return nil
}

// compact rewrites the backing file in place from the ring's logical
// content, bounding on-disk growth to the same window the ring retains.
func (l *Logger) compact() error {
	data := l.logicalLines()

	if err := l.file.Truncate(0); err != nil {
		return fmtErrorf("failed to truncate log file '%s': %w", l.path, err)
	}
	l.fileSize = 0

	// The handle is in O_APPEND mode, so writes land at the new end of file.
	n, err := l.file.Write(data)
	l.fileSize += int64(n)
	if err != nil {
		return fmtErrorf("failed to rewrite log file '%s': %w", l.path, err)
	}
	return nil
}
