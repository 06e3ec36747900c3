package logging

import (
	"fmt"
	"sync"
)

// process default manager, created on first use
var (
	defaultOnce    sync.Once
	defaultMu      sync.RWMutex
	defaultManager *Manager
)

// Default returns the process-wide manager, creating it on first use from
// the environment (LOGGING_LEVEL, JOURNAL_STREAM).
func Default() *Manager {
	defaultOnce.Do(func() {
		m := newFromEnv()
		defaultMu.Lock()
		if defaultManager == nil {
			defaultManager = m
		}
		defaultMu.Unlock()
	})
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultManager
}

// SetDefault makes m the manager used by the package-level functions.
// A nil m is ignored.
func SetDefault(m *Manager) {
	if m == nil {
		return
	}
	defaultMu.Lock()
	defaultManager = m
	defaultMu.Unlock()
}

// --- Setup ---

// SetLevel sets the minimum level emitted by the default manager.
func SetLevel(level Level) { Default().SetLevel(level) }

// IncludeLocation toggles the [location] segment on the default manager.
func IncludeLocation(on bool) { Default().IncludeLocation(on) }

// IncludeLine toggles the [Line N] segment on the default manager.
func IncludeLine(on bool) { Default().IncludeLine(on) }

// SetDriver replaces the default manager's output driver.
func SetDriver(d Driver) { Default().SetDriver(d) }

// Log emits message at level on the default manager, attributed to site.
func Log(level Level, message string, site CallSite) {
	Default().Emit(level, message, site)
}

// --- Level functions ---
// Each captures the caller's location and line. Thread-safe for concurrent use.

// Verbose logs message at VerboseLevel.
func Verbose(message string) { Default().log(VerboseLevel, message) }

// Debug logs message at DebugLevel.
func Debug(message string) { Default().log(DebugLevel, message) }

// Info logs message at InfoLevel.
func Info(message string) { Default().log(InfoLevel, message) }

// Warn logs message at WarnLevel.
func Warn(message string) { Default().log(WarnLevel, message) }

// Error logs message at ErrorLevel.
func Error(message string) { Default().log(ErrorLevel, message) }

// --- Formatted logging (fmt.Sprintf style) ---

// Verbosef logs a verbose message formatted with fmt.Sprintf.
func Verbosef(format string, v ...any) { Default().logf(VerboseLevel, format, v...) }

// Debugf logs a debug message formatted with fmt.Sprintf.
func Debugf(format string, v ...any) { Default().logf(DebugLevel, format, v...) }

// Infof logs an informational message formatted with fmt.Sprintf.
func Infof(format string, v ...any) { Default().logf(InfoLevel, format, v...) }

// Warnf logs a warning message formatted with fmt.Sprintf.
func Warnf(format string, v ...any) { Default().logf(WarnLevel, format, v...) }

// Errorf logs an error message formatted with fmt.Sprintf.
func Errorf(format string, v ...any) { Default().logf(ErrorLevel, format, v...) }

// --- Explicit call site ---

// VerboseAt logs message at VerboseLevel attributed to site.
func VerboseAt(site CallSite, message string) { Default().Emit(VerboseLevel, message, site) }

// DebugAt logs message at DebugLevel attributed to site.
func DebugAt(site CallSite, message string) { Default().Emit(DebugLevel, message, site) }

// InfoAt logs message at InfoLevel attributed to site.
func InfoAt(site CallSite, message string) { Default().Emit(InfoLevel, message, site) }

// WarnAt logs message at WarnLevel attributed to site.
func WarnAt(site CallSite, message string) { Default().Emit(WarnLevel, message, site) }

// ErrorAt logs message at ErrorLevel attributed to site.
func ErrorAt(site CallSite, message string) { Default().Emit(ErrorLevel, message, site) }

// Api logs an HTTP API call on the default manager; see Manager.Api.
func Api(statusCode int, message string) {
	m := Default()
	level := statusCodeToLevel(statusCode)
	if !m.Enabled(level) {
		return
	}
	m.Emit(level, fmt.Sprintf("[%d] %s", statusCode, message), Caller(1))
}
