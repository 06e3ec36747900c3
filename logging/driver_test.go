package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestRecordText(t *testing.T) {
	r := Record{Level: InfoLevel, Message: "Started", Site: mainSite, Location: true, Line: true}
	if got := r.Text(); got != "[main][Line 42][INFO] Started" {
		t.Fatalf("unexpected text: %q", got)
	}

	r = Record{Level: Level(42), Message: "odd", Site: mainSite}
	if got := r.Text(); got != "[LOG] odd" {
		t.Fatalf("unknown level should render LOG tag, got: %q", got)
	}
}

func TestConsoleDriver_PlainOutput_NoAnsi(t *testing.T) {
	var buf bytes.Buffer
	m := NewWithDriver(NewConsoleDriver(&buf, ConsoleOptions{}))
	m.InfoAt(mainSite, "plain-info")
	m.ErrorAt(mainSite, "plain-error")

	if got := buf.String(); !strings.Contains(got, "plain-info") || !strings.Contains(got, "plain-error") {
		t.Fatalf("output missing expected logs, got: %q", got)
	}
	if strings.Contains(buf.String(), "\033[") {
		t.Fatalf("output should be plain (no ANSI codes), got %q", buf.String())
	}
}

func TestConsoleDriver_Colorize(t *testing.T) {
	var buf bytes.Buffer
	m := NewWithDriver(NewConsoleDriver(&buf, ConsoleOptions{Colorize: true}))
	m.InfoAt(mainSite, "color-info")

	want := "[main][Line 42][\033[32mINFO\033[0m] color-info\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestConsoleDriver_SyslogPrefix(t *testing.T) {
	var buf bytes.Buffer
	m := NewWithDriver(NewConsoleDriver(&buf, ConsoleOptions{SyslogPrefix: true}))
	m.SetLevel(VerboseLevel)
	m.DebugAt(mainSite, "dbg")

	line := strings.SplitN(buf.String(), "\n", 2)[0]
	if line != "<7>[main][Line 42][DEBUG] dbg" {
		t.Fatalf("stdout should include syslog prefix, got: %q", line)
	}
}

func TestSyslogPrefixForLevels(t *testing.T) {
	cases := map[Level]string{
		VerboseLevel: "<7>",
		DebugLevel:   "<7>",
		InfoLevel:    "<6>",
		WarnLevel:    "<4>",
		ErrorLevel:   "<3>",
		Level(9):     "",
	}

	for level, want := range cases {
		if got := syslogPrefixForLevel(level); got != want {
			t.Fatalf("syslogPrefixForLevel(%s) = %q, want %q", level, got, want)
		}
	}
}

func TestSyslogPrefixWriter_MultiLine(t *testing.T) {
	var buf bytes.Buffer
	w := &syslogPrefixWriter{w: &buf, prefix: "<3>"}

	n, err := w.Write([]byte("first\nsecond\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != len("first\nsecond\n") {
		t.Fatalf("Write returned %d", n)
	}
	if got := buf.String(); got != "<3>first\n<3>second\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestSlogDriver_Attributes(t *testing.T) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: LevelVerbose})
	m := NewWithDriver(NewSlogDriver(h))
	m.SetLevel(VerboseLevel)

	m.VerboseAt(mainSite, "hello")
	got := buf.String()
	for _, want := range []string{"level=DEBUG-4", "msg=hello", "location=main", "line=42"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output, got: %q", want, got)
		}
	}

	buf.Reset()
	m.IncludeLocation(false)
	m.IncludeLine(false)
	m.WarnAt(mainSite, "bare")
	got = buf.String()
	if !strings.Contains(got, "level=WARN") || strings.Contains(got, "location=") || strings.Contains(got, "line=") {
		t.Fatalf("unexpected output with segments disabled: %q", got)
	}
}

func TestSlogDriver_HandlerLevelRespected(t *testing.T) {
	var buf bytes.Buffer
	m := NewWithDriver(NewSlogDriver(slog.NewTextHandler(&buf, nil)))
	m.SetLevel(VerboseLevel)

	m.DebugAt(mainSite, "dropped by handler")
	if buf.Len() != 0 {
		t.Fatalf("handler at INFO should drop debug records, got: %q", buf.String())
	}
}

func TestTintDriver(t *testing.T) {
	var buf bytes.Buffer
	m := NewWithDriver(NewTintDriver(&buf))

	m.WarnAt(mainSite, "boom")
	got := buf.String()
	for _, want := range []string{"WARN", "boom", "location=main", "line=42"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output, got: %q", want, got)
		}
	}
	if strings.Contains(got, "\033[") {
		t.Fatalf("non-terminal writer should not get colors, got: %q", got)
	}
}

func TestSlogLevelMapping(t *testing.T) {
	for _, level := range AllLevels() {
		if got := fromSlogLevel(SlogLevel(level)); got != level {
			t.Fatalf("round trip of %s gave %s", level, got)
		}
	}
	if got := fromSlogLevel(slog.LevelInfo + 2); got != InfoLevel {
		t.Fatalf("slog level between INFO and WARN should map to INFO, got %s", got)
	}
}

func TestReplaceLevelTag(t *testing.T) {
	a := replaceLevelTag(nil, slog.Any(slog.LevelKey, LevelVerbose))
	if got := a.Value.String(); got != "VERBOSE" {
		t.Fatalf("expected VERBOSE, got %q", got)
	}

	other := slog.String("location", "main")
	if got := replaceLevelTag(nil, other); !got.Equal(other) {
		t.Fatalf("non-level attrs should pass through, got %v", got)
	}
}
