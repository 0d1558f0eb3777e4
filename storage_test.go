// FILE: storage_test.go
package ringlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAppendOnlyByDefault verifies the backing file grows without bound when
// no file cap is configured
func TestAppendOnlyByDefault(t *testing.T) {
	logger, _ := createTestLogger(t)
	logger.ring = NewRingBuffer(256)

	var total int64
	for i := 0; i < 40; i++ {
		require.NoError(t, logger.Info("append-only payload", i))
	}
	total = logger.FileSize()

	// The ring evicted most of this, the file kept all of it.
	assert.Greater(t, total, logger.CurrentSize())

	fi, err := os.Stat(logger.Path())
	require.NoError(t, err)
	assert.Equal(t, total, fi.Size())
}

// TestReopenAppendsToExistingFile verifies a fresh Logger picks up the
// existing file size and keeps appending
func TestReopenAppendsToExistingFile(t *testing.T) {
	tmpDir := t.TempDir()

	first, err := New(tmpDir)
	require.NoError(t, err)
	require.NoError(t, first.Info("from first run"))
	require.NoError(t, first.Close())

	firstSize := first.FileSize()
	require.Greater(t, firstSize, int64(0))

	second, err := New(tmpDir)
	require.NoError(t, err)
	defer second.Close()

	assert.Equal(t, firstSize, second.FileSize())
	require.NoError(t, second.Info("from second run"))

	onDisk, err := os.ReadFile(second.Path())
	require.NoError(t, err)
	assert.Contains(t, string(onDisk), "from first run")
	assert.Contains(t, string(onDisk), "from second run")
}

// TestCompactionBoundsFileSize configures a 1 KiB file cap and verifies the
// file never exceeds it while the newest line is always on disk
func TestCompactionBoundsFileSize(t *testing.T) {
	logger, err := NewBuilder().
		Directory(t.TempDir()).
		CapacityKB(1).
		MaxFileSizeKB(1).
		Build()
	require.NoError(t, err)
	defer logger.Close()

	for i := 0; i < 200; i++ {
		require.NoError(t, logger.Info("compaction filler line", i))
		assert.LessOrEqual(t, logger.FileSize(), int64(1024))
	}

	onDisk, err := os.ReadFile(logger.Path())
	require.NoError(t, err)
	assert.EqualValues(t, len(onDisk), logger.FileSize())
	assert.Contains(t, string(onDisk), "compaction filler line 199")

	// Every line on disk is whole after any number of rewrites.
	for _, line := range strings.Split(strings.TrimSuffix(string(onDisk), "\n"), "\n") {
		assert.Regexp(t, lineRe, line)
	}
}

// TestCompactionMatchesRingSnapshot verifies the rewritten file equals the
// ring's logical content at the moment the cap was crossed
func TestCompactionMatchesRingSnapshot(t *testing.T) {
	logger, err := NewBuilder().
		Directory(t.TempDir()).
		CapacityKB(1).
		MaxFileSizeKB(1).
		Build()
	require.NoError(t, err)
	defer logger.Close()

	// "TS [INFO] msg\n" adds 32 bytes of framing around the message.
	line := strings.Repeat("z", 64)
	encoded := int64(32 + len(line))

	var compacted bool
	for i := 0; i < 100; i++ {
		prev := logger.FileSize()
		require.NoError(t, logger.Info(line))
		if logger.FileSize() != prev+encoded {
			compacted = true
			break
		}
	}
	require.True(t, compacted, "file cap never crossed")

	onDisk, err := os.ReadFile(logger.Path())
	require.NoError(t, err)

	content, err := logger.ReadLogs()
	require.NoError(t, err)
	assert.Equal(t, content, string(onDisk))
}

// TestCustomFileName verifies the configured name is used verbatim
func TestCustomFileName(t *testing.T) {
	tmpDir := t.TempDir()

	logger, err := NewBuilder().
		Directory(tmpDir).
		FileName("service.log").
		Build()
	require.NoError(t, err)
	defer logger.Close()

	assert.Equal(t, filepath.Join(tmpDir, "service.log"), logger.Path())
	_, err = os.Stat(logger.Path())
	assert.NoError(t, err)
}
