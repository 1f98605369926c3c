// Package colors provides color output utilities.
package colors

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
)

const checkmark = "✓"

var (
	errorLabel   = color.New(color.FgRed, color.Bold)
	warningLabel = color.New(color.FgYellow, color.Bold)
	infoText     = color.New(color.FgBlue)
	successMark  = color.New(color.FgGreen)
	debugLabel   = color.New(color.FgCyan)
	headerText   = color.New(color.Bold, color.Underline)
	mutedText    = color.New(color.Faint)
)

// Logger defines the interface for structured logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

var (
	mu           sync.RWMutex
	debugEnabled bool
	quietEnabled bool
	logger       Logger
	stdout       io.Writer = os.Stdout
	stderr       io.Writer = os.Stderr
)

func init() {
	if val := os.Getenv("PLANNER_DEBUG"); val == "true" || val == "1" {
		debugEnabled = true
	}
}

// SetDebug enables or disables debug output.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debugEnabled = enabled
}

// SetQuiet suppresses Info and Success output. Errors and warnings still print.
func SetQuiet(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	quietEnabled = enabled
}

// SetLogger sets the structured logger to mirror console output.
func SetLogger(l Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// SetOutput redirects console output. A nil writer keeps the current one.
func SetOutput(out, errOut io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if out != nil {
		stdout = out
	}
	if errOut != nil {
		stderr = errOut
	}
}

// DisableColor turns off escape codes, e.g. for --no-color or non-terminals.
func DisableColor() {
	color.NoColor = true
}

type settings struct {
	debug  bool
	quiet  bool
	logger Logger
	out    io.Writer
	errOut io.Writer
}

func current() settings {
	mu.RLock()
	defer mu.RUnlock()
	return settings{debug: debugEnabled, quiet: quietEnabled, logger: logger, out: stdout, errOut: stderr}
}

// write prints a line. A failed write falls back to a plain os.Stderr line.
func write(w io.Writer, line string) {
	if _, err := fmt.Fprintln(w, line); err != nil {
		fmt.Fprintf(os.Stderr, "failed to print message: %v\n", err)
	}
}

// Error outputs an error message to stderr.
func Error(msgs ...string) {
	msg := strings.Join(msgs, " ")
	s := current()
	if s.logger != nil {
		s.logger.Error(msg)
	}
	write(s.errOut, errorLabel.Sprint("Error:")+" "+msg)
}

// Warning outputs a warning message to stderr.
func Warning(msgs ...string) {
	msg := strings.Join(msgs, " ")
	s := current()
	if s.logger != nil {
		s.logger.Warn(msg)
	}
	write(s.errOut, warningLabel.Sprint("Warning:")+" "+msg)
}

// Success outputs a success message to stdout.
func Success(msgs ...string) {
	msg := strings.Join(msgs, " ")
	s := current()
	if s.logger != nil {
		s.logger.Info(msg, "type", "success")
	}
	if s.quiet {
		return
	}
	write(s.out, successMark.Sprint(checkmark)+" "+msg)
}

// Info outputs an informational message to stdout.
func Info(msgs ...string) {
	msg := strings.Join(msgs, " ")
	s := current()
	if s.logger != nil {
		s.logger.Info(msg)
	}
	if s.quiet {
		return
	}
	write(s.out, infoText.Sprint(msg))
}

// LogInfo outputs an informational message to stderr so stdout stays parseable.
func LogInfo(msgs ...string) {
	msg := strings.Join(msgs, " ")
	s := current()
	if s.logger != nil {
		s.logger.Info(msg)
	}
	if s.quiet {
		return
	}
	write(s.errOut, infoText.Sprint(msg))
}

// Debug outputs a debug message to stderr if debug is enabled.
func Debug(msgs ...string) {
	s := current()
	if !s.debug {
		return
	}
	msg := strings.Join(msgs, " ")
	if s.logger != nil {
		s.logger.Debug(msg)
	}
	write(s.errOut, debugLabel.Sprint("Debug:")+" "+msg)
}

// Header formats a table or panel title.
func Header(s string) string {
	return headerText.Sprint(s)
}

// Muted formats secondary text such as empty-list placeholders.
func Muted(s string) string {
	return mutedText.Sprint(s)
}
