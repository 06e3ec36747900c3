package logging

import (
	"runtime"
	"strings"
)

// CallSite identifies where a log call was made.
// It is a debugging aid, not a stack trace: inlining and wrappers can shift
// what the runtime reports.
type CallSite struct {
	// Location is the calling function in package.Function form.
	Location string
	// Line is the source line of the call.
	Line int
}

// Caller returns the call site skip frames above the function that calls
// Caller. Caller(0) describes the caller itself.
func Caller(skip int) CallSite {
	pc, _, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return CallSite{Location: "unknown"}
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return CallSite{Location: "unknown", Line: line}
	}
	return CallSite{Location: shortFuncName(fn.Name()), Line: line}
}

// shortFuncName strips the import path, keeping package.Function.
func shortFuncName(full string) string {
	lastSlash := strings.LastIndex(full, "/")
	if lastSlash >= 0 && lastSlash+1 < len(full) {
		return full[lastSlash+1:]
	}
	return full
}
