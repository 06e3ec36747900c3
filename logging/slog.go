package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// LevelVerbose is the slog level records at VerboseLevel are emitted with.
const LevelVerbose = slog.Level(-8)

// SlogDriver forwards records to a slog.Handler.
// The manager has already filtered by level, so the handler should accept
// everything down to LevelVerbose.
type SlogDriver struct {
	handler slog.Handler
}

// NewSlogDriver returns a driver that hands records to h.
func NewSlogDriver(h slog.Handler) *SlogDriver {
	return &SlogDriver{handler: h}
}

// NewTintDriver returns a SlogDriver rendering through tint.
// Colors are enabled only when w is a terminal.
func NewTintDriver(w io.Writer) *SlogDriver {
	return NewSlogDriver(tint.NewHandler(w, &tint.Options{
		Level:       LevelVerbose,
		TimeFormat:  time.TimeOnly,
		NoColor:     !isTerminal(w),
		ReplaceAttr: replaceLevelTag,
	}))
}

// Write converts r to a slog.Record. Handler errors are dropped.
func (d *SlogDriver) Write(r Record) {
	level := SlogLevel(r.Level)
	ctx := context.Background()
	if !d.handler.Enabled(ctx, level) {
		return
	}
	rec := slog.NewRecord(time.Now(), level, r.Message, 0)
	if r.Location {
		rec.AddAttrs(slog.String("location", r.Site.Location))
	}
	if r.Line {
		rec.AddAttrs(slog.Int("line", r.Site.Line))
	}
	_ = d.handler.Handle(ctx, rec)
}

// SlogLevel maps a Level onto the slog level scale.
func SlogLevel(l Level) slog.Level {
	switch l {
	case VerboseLevel:
		return LevelVerbose
	case DebugLevel:
		return slog.LevelDebug
	case WarnLevel:
		return slog.LevelWarn
	case ErrorLevel:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// fromSlogLevel is the inverse of SlogLevel, rounding down to the nearest level.
func fromSlogLevel(l slog.Level) Level {
	switch {
	case l >= slog.LevelError:
		return ErrorLevel
	case l >= slog.LevelWarn:
		return WarnLevel
	case l >= slog.LevelInfo:
		return InfoLevel
	case l >= slog.LevelDebug:
		return DebugLevel
	default:
		return VerboseLevel
	}
}

// replaceLevelTag renders the slog level with our tags instead of DBG/INF/...
func replaceLevelTag(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.LevelKey {
		if lvl, ok := a.Value.Any().(slog.Level); ok {
			return slog.String(slog.LevelKey, fromSlogLevel(lvl).Tag())
		}
	}
	return a
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
