// FILE: constant.go
package ringlog

// Log level constants
const (
	LevelDebug int64 = -4
	LevelInfo  int64 = 0
	LevelWarn  int64 = 4
	LevelError int64 = 8
)

// Defaults exposed to callers
const (
	// DefaultCapacity is the in-memory ring capacity in bytes
	DefaultCapacity = 10 * 1024 * 1024
	// DefaultFileName is the fixed name of the backing log file
	DefaultFileName = "app.log"
	// DefaultTimestampFormat has millisecond precision and sorts lexically
	DefaultTimestampFormat = "2006-01-02 15:04:05.000"
)

// Size multiplier for the KB-denominated config knobs
const sizeMultiplier = 1024

const hexChars = "0123456789abcdef"
