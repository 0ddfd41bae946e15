package logging

import (
	"fmt"
	"io"
	"os"
)

// Output receives every log line. Tests swap it for a buffer.
var Output io.Writer = os.Stderr

// DebugEnabled returns true if debug mode is enabled via TODO_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv("TODO_DEBUG") != ""
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintf(Output, "debug: "+format, args...)
	}
}

// Debugln prints a debug message followed by a newline only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintln(Output, append([]interface{}{"debug:"}, args...)...)
	}
}

// Infof prints a notice the user should always see, such as a created data folder.
func Infof(format string, args ...interface{}) {
	fmt.Fprintf(Output, format, args...)
}

// Errorf prints a non-fatal error.
func Errorf(format string, args ...interface{}) {
	fmt.Fprintf(Output, "error: "+format, args...)
}
