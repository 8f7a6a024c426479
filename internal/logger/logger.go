// Package logger provides console diagnostics for symptomlex.
//
// Build progress that the user always needs to see (counts, per-item
// errors, duplicate notices) goes through Notice and Error. Detail that is
// only useful when following the pipeline step by step goes through Debug,
// Info, Warn and Section, which print only when verbose mode is enabled via
// the --verbose flag.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type level struct {
	prefix string
	gated  bool
}

var (
	levelNotice = level{}
	levelError  = level{prefix: "[ERROR] "}
	levelDebug  = level{prefix: "[DEBUG] ", gated: true}
	levelInfo   = level{prefix: "[INFO] ", gated: true}
	levelWarn   = level{prefix: "[WARN] ", gated: true}
	levelHeader = level{gated: true}
)

var (
	mu      sync.Mutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose switches the gated levels on or off.
func SetVerbose(v bool) {
	mu.Lock()
	verbose = v
	mu.Unlock()
}

// IsVerbose reports whether gated levels are printed.
func IsVerbose() bool {
	mu.Lock()
	defer mu.Unlock()
	return verbose
}

// SetOutput redirects all logging; the default is os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	output = w
	mu.Unlock()
}

// emit holds the lock while writing so concurrent lines never interleave.
func emit(l level, format string, args []any) {
	mu.Lock()
	defer mu.Unlock()
	if l.gated && !verbose {
		return
	}
	fmt.Fprintf(output, l.prefix+format+"\n", args...)
}

// Notice always prints, without a prefix.
func Notice(format string, args ...any) { emit(levelNotice, format, args) }

// Error always prints.
func Error(format string, args ...any) { emit(levelError, format, args) }

func Debug(format string, args ...any) { emit(levelDebug, format, args) }

func Info(format string, args ...any) { emit(levelInfo, format, args) }

func Warn(format string, args ...any) { emit(levelWarn, format, args) }

// Section prints a stage header in verbose mode.
func Section(name string) {
	emit(levelHeader, "\n=== %s ===", []any{name})
}
