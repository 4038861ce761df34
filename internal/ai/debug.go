package ai

import "sync/atomic"

// verbose gates per-tick debug records from chasers, stalkers, the tick
// manager and the sim effect sinks. Hot paths check it before building
// slog attributes.
var verbose atomic.Bool

// EnableDebugLogging turns per-tick debug records on or off.
// cmd/nightveil enables it when log_level is debug.
func EnableDebugLogging(enabled bool) {
	verbose.Store(enabled)
}

// IsDebugEnabled reports whether per-tick debug records should be built.
func IsDebugEnabled() bool {
	return verbose.Load()
}
