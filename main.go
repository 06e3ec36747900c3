package main

import (
	"os"

	"github.com/mordilloSan/go-logging/logging"
)

// Example demonstrating go-logging usage.
// Usage: ./go-logging [tint]
func main() {
	if len(os.Args) > 1 && os.Args[1] == "tint" {
		logging.SetDriver(logging.NewTintDriver(os.Stdout))
	}

	// Defaults: INFO threshold, location and line included.
	logging.Debug("not shown at the default level")
	logging.Info("Started")

	logging.SetLevel(logging.VerboseLevel)
	logging.Verbose("verbose is on")
	logging.Debugf("args: %v", os.Args[1:])

	// Explicit call site
	logging.InfoAt(logging.CallSite{Location: "main", Line: 42}, "Started")

	logging.IncludeLocation(false)
	logging.Warn("location hidden")

	logging.IncludeLine(false)
	logging.Error("bare tag")

	// API logging (level selected from the HTTP status code)
	logging.Api(200, "request successful")
	logging.Api(404, "resource not found")
	logging.Api(500, "internal server error")
}
