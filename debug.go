package alder

import (
	"fmt"
	"os"
)

// debugMode mirrors the most recently set debug flag so that helpers without
// a World pointer can check it cheaply. Only meaningful with a single World;
// multiple Worlds with differing modes reflect whichever called SetDebugMode
// last.
var debugMode bool

// SetDebugMode enables or disables debug mode. When enabled, internal
// invariant violations (operating on a borrowed widget from inside a pass,
// hierarchy corruption) panic immediately instead of being logged and
// skipped. Tests and development builds should run with it on.
func SetDebugMode(enabled bool) {
	debugMode = enabled
}

// debugPanic reports an internal invariant violation: a widget-implementation
// bug, not a recoverable condition. Panics in debug mode; otherwise logs to
// stderr and lets the caller degrade to a no-op.
func debugPanic(format string, args ...any) {
	if debugMode {
		panic("alder debug: " + fmt.Sprintf(format, args...))
	}
	_, _ = fmt.Fprintf(os.Stderr, "[alder] error: "+format+"\n", args...)
}

// warnf logs a non-fatal warning to stderr. Used for conditions that are
// suspicious but survivable, like a non-finite layout size.
func warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[alder] warning: "+format+"\n", args...)
}

// formatMemory renders a byte count for diagnostics.
func formatMemory(bytes uint64) string {
	switch {
	case bytes >= 1<<30:
		return fmt.Sprintf("%.1fGiB", float64(bytes)/(1<<30))
	case bytes >= 1<<20:
		return fmt.Sprintf("%.1fMiB", float64(bytes)/(1<<20))
	case bytes >= 1<<10:
		return fmt.Sprintf("%.1fKiB", float64(bytes)/(1<<10))
	}
	return fmt.Sprintf("%dB", bytes)
}
