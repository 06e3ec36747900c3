package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Manager filters, formats and writes log messages.
// A zero Manager is not usable; construct one with New or NewWithDriver.
// All methods are safe for concurrent use.
type Manager struct {
	mu       sync.Mutex
	level    Level
	location bool
	line     bool
	driver   Driver
}

// Dependency injection points for testing outputs.
var (
	outStdout io.Writer = os.Stdout
	outStderr io.Writer = os.Stderr
)

// New returns a manager with the default configuration: threshold InfoLevel,
// location and line segments enabled, console output on stdout.
func New() *Manager {
	return NewWithDriver(nil)
}

// NewWithDriver returns a manager with the default configuration writing to d.
// A nil driver selects the console driver on stdout.
func NewWithDriver(d Driver) *Manager {
	if d == nil {
		d = NewConsoleDriver(outStdout, ConsoleOptions{})
	}
	return &Manager{
		level:    InfoLevel,
		location: true,
		line:     true,
		driver:   d,
	}
}

// newFromEnv builds the process default manager.
// LOGGING_LEVEL overrides the threshold; JOURNAL_STREAM enables syslog prefixes.
func newFromEnv() *Manager {
	m := NewWithDriver(NewConsoleDriver(outStdout, ConsoleOptions{
		SyslogPrefix: shouldUseSyslogPrefix(),
	}))
	if env := os.Getenv("LOGGING_LEVEL"); env != "" {
		level, err := ParseLevel(env)
		if err != nil {
			fmt.Fprintf(outStderr, "ignoring LOGGING_LEVEL: %v\n", err)
		} else {
			m.level = level
		}
	}
	return m
}

func shouldUseSyslogPrefix() bool {
	return os.Getenv("JOURNAL_STREAM") != ""
}

// SetLevel sets the minimum level that will be emitted.
func (m *Manager) SetLevel(level Level) {
	m.mu.Lock()
	m.level = level
	m.mu.Unlock()
}

// Level returns the current threshold.
func (m *Manager) Level() Level {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.level
}

// IncludeLocation toggles the [location] segment.
func (m *Manager) IncludeLocation(on bool) {
	m.mu.Lock()
	m.location = on
	m.mu.Unlock()
}

// IncludeLine toggles the [Line N] segment.
func (m *Manager) IncludeLine(on bool) {
	m.mu.Lock()
	m.line = on
	m.mu.Unlock()
}

// SetDriver replaces the output driver. A nil driver is ignored.
func (m *Manager) SetDriver(d Driver) {
	if d == nil {
		return
	}
	m.mu.Lock()
	m.driver = d
	m.mu.Unlock()
}

// Enabled reports whether a message at level would be emitted.
func (m *Manager) Enabled(level Level) bool {
	return level.Enabled(m.Level())
}

// Format renders a line with the current location/line settings,
// without filtering or writing it.
func (m *Manager) Format(level Level, message string, site CallSite) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.record(level, message, site).Text()
}

func (m *Manager) record(level Level, message string, site CallSite) Record {
	return Record{
		Level:    level,
		Message:  message,
		Site:     site,
		Location: m.location,
		Line:     m.line,
	}
}

// Emit writes message at level if level passes the threshold.
// Nothing is returned; driver failures are dropped.
func (m *Manager) Emit(level Level, message string, site CallSite) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !level.Enabled(m.level) {
		return
	}
	m.driver.Write(m.record(level, message, site))
}

// log captures the call site two frames up: past log and the exported
// wrapper that called it.
func (m *Manager) log(level Level, message string) {
	if !m.Enabled(level) {
		return
	}
	m.Emit(level, message, Caller(2))
}

func (m *Manager) logf(level Level, format string, v ...any) {
	if !m.Enabled(level) {
		return
	}
	m.Emit(level, fmt.Sprintf(format, v...), Caller(2))
}

// --- Level methods (call site captured automatically) ---

// Verbose logs message at VerboseLevel.
func (m *Manager) Verbose(message string) { m.log(VerboseLevel, message) }

// Debug logs message at DebugLevel.
func (m *Manager) Debug(message string) { m.log(DebugLevel, message) }

// Info logs message at InfoLevel.
func (m *Manager) Info(message string) { m.log(InfoLevel, message) }

// Warn logs message at WarnLevel.
func (m *Manager) Warn(message string) { m.log(WarnLevel, message) }

// Error logs message at ErrorLevel.
func (m *Manager) Error(message string) { m.log(ErrorLevel, message) }

// --- Formatted level methods (fmt.Sprintf style) ---

// Verbosef logs a verbose message formatted with fmt.Sprintf.
func (m *Manager) Verbosef(format string, v ...any) { m.logf(VerboseLevel, format, v...) }

// Debugf logs a debug message formatted with fmt.Sprintf.
func (m *Manager) Debugf(format string, v ...any) { m.logf(DebugLevel, format, v...) }

// Infof logs an informational message formatted with fmt.Sprintf.
func (m *Manager) Infof(format string, v ...any) { m.logf(InfoLevel, format, v...) }

// Warnf logs a warning message formatted with fmt.Sprintf.
func (m *Manager) Warnf(format string, v ...any) { m.logf(WarnLevel, format, v...) }

// Errorf logs an error message formatted with fmt.Sprintf.
func (m *Manager) Errorf(format string, v ...any) { m.logf(ErrorLevel, format, v...) }

// --- Explicit call site methods ---

// VerboseAt logs message at VerboseLevel attributed to site.
func (m *Manager) VerboseAt(site CallSite, message string) { m.Emit(VerboseLevel, message, site) }

// DebugAt logs message at DebugLevel attributed to site.
func (m *Manager) DebugAt(site CallSite, message string) { m.Emit(DebugLevel, message, site) }

// InfoAt logs message at InfoLevel attributed to site.
func (m *Manager) InfoAt(site CallSite, message string) { m.Emit(InfoLevel, message, site) }

// WarnAt logs message at WarnLevel attributed to site.
func (m *Manager) WarnAt(site CallSite, message string) { m.Emit(WarnLevel, message, site) }

// ErrorAt logs message at ErrorLevel attributed to site.
func (m *Manager) ErrorAt(site CallSite, message string) { m.Emit(ErrorLevel, message, site) }

// --- API logging (HTTP status code based) ---

// Api logs an HTTP API call with the level chosen from the status code:
// 5xx -> ERROR, 4xx -> WARN, anything else -> INFO.
//
//	m.Api(200, "api call successful") // [..][INFO] [200] api call successful
func (m *Manager) Api(statusCode int, message string) {
	level := statusCodeToLevel(statusCode)
	if !m.Enabled(level) {
		return
	}
	m.Emit(level, fmt.Sprintf("[%d] %s", statusCode, message), Caller(1))
}

// statusCodeToLevel maps HTTP status codes to log levels.
func statusCodeToLevel(code int) Level {
	switch {
	case code >= 500:
		return ErrorLevel
	case code >= 400:
		return WarnLevel
	default:
		return InfoLevel // 1xx, 2xx, 3xx
	}
}
