// Package logging provides a minimal leveled logger that prefixes each line
// with the caller's location and line number.
//
// # Output
//
// Every accepted message is written as one line:
//
//	[main.main][Line 42][INFO] Started
//
// The [location] and [Line N] segments can be turned off independently.
//
// # Features
//
//   - Global package-level functions backed by a lazily created default Manager
//   - Explicit Manager instances for dependency injection
//   - Five ordered levels: VERBOSE < DEBUG < INFO < WARN < ERROR
//   - Threshold filtering via SetLevel or the LOGGING_LEVEL environment variable
//   - Automatic call-site capture, or explicit sites with the *At functions
//   - Journald priority prefixes when JOURNAL_STREAM is set
//   - Optional ANSI colors, or slog/tint output through SlogDriver
//
// # Usage
//
//	logging.SetLevel(logging.DebugLevel)
//	logging.IncludeLine(false)
//	logging.Info("Started")
//	logging.Errorf("failed to connect: %v", err)
//
// With an explicit manager:
//
//	log := logging.New()
//	log.SetLevel(logging.WarnLevel)
//	log.Warn("disk almost full")
//
// Call-site capture uses runtime.Caller and is a debugging aid, not a stack trace.
package logging
