package logging

import (
	"errors"
	"fmt"
	"strings"
)

// Level defines log severity. Higher values are more severe; a manager emits
// a message when its level is greater than or equal to the configured threshold.
type Level int

const (
	// VerboseLevel is the most detailed level.
	VerboseLevel Level = iota
	// DebugLevel enables debug logging.
	DebugLevel
	// InfoLevel enables informational logging.
	InfoLevel
	// WarnLevel enables warning logging.
	WarnLevel
	// ErrorLevel enables error logging.
	ErrorLevel
)

// ErrUnknownLevel is returned by ParseLevel for names that match no level.
var ErrUnknownLevel = errors.New("unknown log level")

// AllLevels returns all supported levels, least severe first.
func AllLevels() []Level {
	return []Level{
		VerboseLevel,
		DebugLevel,
		InfoLevel,
		WarnLevel,
		ErrorLevel,
	}
}

// Tag returns the display tag used inside the [TAG] segment of a line.
func (l Level) Tag() string {
	switch l {
	case VerboseLevel:
		return "VERBOSE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "LOG"
	}
}

func (l Level) String() string {
	return l.Tag()
}

// Enabled reports whether a message at l passes the given threshold.
func (l Level) Enabled(threshold Level) bool {
	return l >= threshold
}

// ParseLevel parses a level name. Matching is case-insensitive and ignores
// surrounding whitespace.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "VERBOSE", "TRACE":
		return VerboseLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERROR", "ERR":
		return ErrorLevel, nil
	}
	return InfoLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}
