// FILE: global_test.go
package ringlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetGlobal ensures each test starts and ends without a process-wide logger
func resetGlobal(t *testing.T) {
	t.Helper()
	require.NoError(t, Shutdown())
	t.Cleanup(func() { _ = Shutdown() })
}

// TestInitAndFreeFunctions exercises the package-level convenience surface
func TestInitAndFreeFunctions(t *testing.T) {
	resetGlobal(t)

	require.NoError(t, Init(t.TempDir(), "ringlog-test"))

	require.NoError(t, Debug("global debug"))
	require.NoError(t, Info("global info"))
	require.NoError(t, Warn("global warn"))
	require.NoError(t, Error("global error"))

	content, err := ReadLogs()
	require.NoError(t, err)
	assert.Contains(t, content, "[DEBUG] global debug")
	assert.Contains(t, content, "[INFO] global info")
	assert.Contains(t, content, "[WARN] global warn")
	assert.Contains(t, content, "[ERROR] global error")
	assert.Greater(t, CurrentSize(), int64(0))

	logger, err := Default()
	require.NoError(t, err)
	assert.Equal(t, "ringlog-test", logger.Tag())
}

// TestInitTwiceFails verifies the second initialization is rejected and the
// first logger keeps working
func TestInitTwiceFails(t *testing.T) {
	resetGlobal(t)

	require.NoError(t, Init(t.TempDir(), ""))

	err := Init(t.TempDir(), "")
	assert.ErrorIs(t, err, ErrAlreadyInitialized)

	assert.NoError(t, Info("still working"))
}

// TestUninitializedFails verifies every free function reports the missing
// initialization instead of panicking
func TestUninitializedFails(t *testing.T) {
	resetGlobal(t)

	assert.ErrorIs(t, Debug("x"), ErrNotInitialized)
	assert.ErrorIs(t, Info("x"), ErrNotInitialized)
	assert.ErrorIs(t, Warn("x"), ErrNotInitialized)
	assert.ErrorIs(t, Error("x"), ErrNotInitialized)

	_, err := ReadLogs()
	assert.ErrorIs(t, err, ErrNotInitialized)

	_, err = Default()
	assert.ErrorIs(t, err, ErrNotInitialized)

	assert.EqualValues(t, 0, CurrentSize())
}

// TestInitFailureLeavesGlobalUnset verifies a failed Init does not consume
// the one-time slot
func TestInitFailureLeavesGlobalUnset(t *testing.T) {
	resetGlobal(t)

	cfg := DefaultConfig()
	cfg.Directory = ""
	require.Error(t, InitWithConfig(cfg))

	// A valid Init afterwards succeeds.
	assert.NoError(t, Init(t.TempDir(), ""))
}

// TestShutdownReleasesHandle verifies Shutdown closes the logger and a
// fresh Init is possible afterwards
func TestShutdownReleasesHandle(t *testing.T) {
	resetGlobal(t)

	require.NoError(t, Init(t.TempDir(), ""))
	require.NoError(t, Info("before shutdown"))

	require.NoError(t, Shutdown())
	require.NoError(t, Shutdown()) // idempotent

	assert.ErrorIs(t, Info("after shutdown"), ErrNotInitialized)

	require.NoError(t, Init(t.TempDir(), ""))
	assert.NoError(t, Info("after re-init"))
}

// TestInitWithConfigApplied verifies a custom configuration reaches the
// process-wide logger
func TestInitWithConfigApplied(t *testing.T) {
	resetGlobal(t)

	cfg := DefaultConfig()
	cfg.Directory = t.TempDir()
	cfg.FileName = "global.log"
	cfg.CapacityKB = 4
	require.NoError(t, InitWithConfig(cfg))

	logger, err := Default()
	require.NoError(t, err)
	assert.Contains(t, logger.Path(), "global.log")
	assert.EqualValues(t, 0, logger.CurrentSize())
}
