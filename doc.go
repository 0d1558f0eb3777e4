// FILE: doc.go

// Package ringlog is a bounded, thread-safe, crash-tolerant log sink. Each
// Logger owns a fixed-capacity in-memory ring buffer and a single backing
// file; every leveled write lands in both under one guard, and ReadLogs
// returns the retained window in chronological order regardless of where
// the ring has wrapped.
//
// The ring bounds memory regardless of process uptime by overwriting its
// oldest content once full. The file receives every line as a blocking
// append so a crash loses at most the line being written; an optional cap
// compacts the file in place from the ring's retained window.
//
// A process-wide logger is available through Init and the package-level
// Debug/Info/Warn/Error functions. Independent instances come from New,
// NewWithConfig, or the Builder. The compat subpackage adapts the logger to
// gnet, fasthttp, zerolog, and log/slog front ends.
//
//	if err := ringlog.Init("/var/log/app", "myapp"); err != nil {
//		panic(err)
//	}
//	defer ringlog.Shutdown()
//
//	ringlog.Info("application starting")
//	content, _ := ringlog.ReadLogs()
package ringlog
