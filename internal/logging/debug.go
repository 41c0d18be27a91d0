package logging

import (
	"io"
	"log"
	"os"
	"sync/atomic"
)

var (
	verbose atomic.Bool
	output  atomic.Pointer[log.Logger]
)

func init() {
	output.Store(log.New(os.Stderr, "wh: ", 0))
}

// DebugEnabled returns true if debug mode is enabled via WH_DEBUG or verbose mode
func DebugEnabled() bool {
	return verbose.Load() || os.Getenv("WH_DEBUG") != ""
}

// SetVerbose turns debug output on regardless of WH_DEBUG
func SetVerbose(on bool) {
	verbose.Store(on)
}

// SetOutput redirects debug and warning output
func SetOutput(w io.Writer) {
	output.Store(log.New(w, "wh: ", 0))
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...any) {
	if DebugEnabled() {
		output.Load().Printf("debug: "+format, args...)
	}
}

// Debugln prints a debug message only if debug mode is enabled
func Debugln(args ...any) {
	if DebugEnabled() {
		output.Load().Println(append([]any{"debug:"}, args...)...)
	}
}

// Warnf always prints; used for suspect days and background failures.
func Warnf(format string, args ...any) {
	output.Load().Printf("warning: "+format, args...)
}
