package logging

import (
	"io"
	"strconv"
	"strings"
	"sync"
)

// Record is a single accepted log call, as handed to a Driver.
type Record struct {
	Level   Level
	Message string
	Site    CallSite
	// Location and Line report which call-site segments are enabled.
	Location bool
	Line     bool
}

// Text renders the record as [LOC][Line N][TAG] message, omitting disabled segments.
func (r Record) Text() string {
	return r.render(r.Level.Tag())
}

func (r Record) render(tag string) string {
	var b strings.Builder
	if r.Location {
		b.WriteString("[")
		b.WriteString(r.Site.Location)
		b.WriteString("]")
	}
	if r.Line {
		b.WriteString("[Line ")
		b.WriteString(strconv.Itoa(r.Site.Line))
		b.WriteString("]")
	}
	b.WriteString("[")
	b.WriteString(tag)
	b.WriteString("] ")
	b.WriteString(r.Message)
	return b.String()
}

// Driver receives every record a Manager accepts.
// Write must not report errors; a failed write is dropped.
type Driver interface {
	Write(r Record)
}

// ConsoleOptions configures a ConsoleDriver.
type ConsoleOptions struct {
	// Colorize wraps the [TAG] segment in ANSI colors.
	// Default: false
	Colorize bool
	// SyslogPrefix prepends the journald priority (<7>, <6>, ...) to each line.
	// Default: false
	SyslogPrefix bool
}

// ConsoleDriver writes one line per record to a console stream.
// Safe for concurrent use.
type ConsoleDriver struct {
	mu   sync.Mutex
	out  io.Writer
	opts ConsoleOptions
}

// NewConsoleDriver returns a driver writing to w.
func NewConsoleDriver(w io.Writer, opts ConsoleOptions) *ConsoleDriver {
	return &ConsoleDriver{out: w, opts: opts}
}

var levelColors = map[Level]string{
	VerboseLevel: "\033[90m",
	DebugLevel:   "\033[36m",
	InfoLevel:    "\033[32m",
	WarnLevel:    "\033[33m",
	ErrorLevel:   "\033[31m",
}

const colorReset = "\033[0m"

// Write renders r and writes it followed by a newline.
func (c *ConsoleDriver) Write(r Record) {
	tag := r.Level.Tag()
	if c.opts.Colorize {
		if color, ok := levelColors[r.Level]; ok {
			tag = color + tag + colorReset
		}
	}
	line := r.render(tag) + "\n"

	var out io.Writer = c.out
	if c.opts.SyslogPrefix {
		out = &syslogPrefixWriter{w: c.out, prefix: syslogPrefixForLevel(r.Level)}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = io.WriteString(out, line)
}

func syslogPrefixForLevel(level Level) string {
	switch level {
	case VerboseLevel, DebugLevel:
		return "<7>"
	case InfoLevel:
		return "<6>"
	case WarnLevel:
		return "<4>"
	case ErrorLevel:
		return "<3>"
	default:
		return ""
	}
}

// syslogPrefixWriter prepends the syslog priority prefix to each line.
type syslogPrefixWriter struct {
	w      io.Writer
	prefix string
}

func (s *syslogPrefixWriter) Write(data []byte) (int, error) {
	if s.prefix == "" {
		return s.w.Write(data)
	}
	if len(data) == 0 {
		return 0, nil
	}
	buf := make([]byte, 0, len(data)+len(s.prefix))
	buf = append(buf, s.prefix...)
	for i, b := range data {
		buf = append(buf, b)
		if b == '\n' && i != len(data)-1 {
			buf = append(buf, s.prefix...)
		}
	}
	if _, err := s.w.Write(buf); err != nil {
		return 0, err
	}
	return len(data), nil
}
