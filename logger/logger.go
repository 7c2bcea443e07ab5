// Package logger is a small leveled wrapper around the standard log package.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

type output struct {
	mu      sync.RWMutex
	verbose bool
	errorL  *log.Logger
	infoL   *log.Logger
	debugL  *log.Logger
}

var std = newOutput(os.Stdout, os.Stderr)

func newOutput(out, errOut io.Writer) *output {
	return &output{
		errorL: log.New(errOut, "[ERROR] ", log.LstdFlags),
		infoL:  log.New(out, "[INFO]  ", log.LstdFlags),
		debugL: log.New(out, "[DEBUG] ", log.LstdFlags),
	}
}

// SetVerbose enables or disables debug output.
func SetVerbose(verbose bool) {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.verbose = verbose
}

// IsVerbose reports whether debug output is enabled.
func IsVerbose() bool {
	std.mu.RLock()
	defer std.mu.RUnlock()
	return std.verbose
}

// SetOutput redirects all levels to w.
func SetOutput(w io.Writer) {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.errorL.SetOutput(w)
	std.infoL.SetOutput(w)
	std.debugL.SetOutput(w)
}

// Errorf logs a formatted error message.
func Errorf(format string, v ...interface{}) {
	std.errorL.Output(2, fmt.Sprintf(format, v...))
}

// Infof logs a formatted informational message.
func Infof(format string, v ...interface{}) {
	std.infoL.Output(2, fmt.Sprintf(format, v...))
}

// Debugf logs a formatted message in verbose mode only.
func Debugf(format string, v ...interface{}) {
	if IsVerbose() {
		std.debugL.Output(2, fmt.Sprintf(format, v...))
	}
}

// Fatalf logs a formatted error message and exits.
func Fatalf(format string, v ...interface{}) {
	std.errorL.Output(2, fmt.Sprintf(format, v...))
	os.Exit(1)
}
