// Package logging writes structured JSON logs of planner commands to a file.
//
// Logging is off unless logging_enabled is set. Personal data of contacts,
// activities and accommodations is redacted before anything is written.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	clog "github.com/charmbracelet/log"

	"github.com/cristianoliveira/trip-planner/internal/colors"
)

// Logger is the structured logging interface.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	// With returns a logger that adds the key-value pairs to every entry.
	With(args ...any) Logger
	// Shutdown closes the log file.
	Shutdown() error
}

// sink is the open log file shared by a logger and its With children.
type sink struct {
	mu      sync.Mutex
	clogger *clog.Logger
	file    *os.File
	closed  bool
}

type fileLogger struct {
	sink     *sink
	redactor *redactor
	fields   []any
}

// Init opens a new log file as configured. A disabled config yields a logger
// that discards everything.
func Init(cfg Config) (Logger, error) {
	if !cfg.Enabled {
		return noopLogger{}, nil
	}
	dir := cfg.Dir
	if dir == "" {
		var err error
		if dir, err = LogDir(); err != nil {
			return nil, fmt.Errorf("failed to determine log directory: %w", err)
		}
	}
	name := fmt.Sprintf("%s%s_PID%d_%s.log",
		filePrefix,
		time.Now().Format("20060102_150405"),
		cfg.PID,
		strings.ReplaceAll(cfg.Command, " ", "_"))
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	if err := rotate(dir, cfg.MaxFiles); err != nil {
		colors.Debug(fmt.Sprintf("log rotation failed: %v", err))
	}

	clogger := clog.NewWithOptions(f, clog.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339Nano,
		Level:           parseLevel(cfg.Level),
		Formatter:       clog.JSONFormatter,
	})
	return &fileLogger{
		sink:     &sink{clogger: clogger.With("pid", cfg.PID, "command", cfg.Command), file: f},
		redactor: newRedactor(),
	}, nil
}

func parseLevel(level string) clog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return clog.DebugLevel
	case "warn", "warning":
		return clog.WarnLevel
	case "error":
		return clog.ErrorLevel
	default:
		return clog.InfoLevel
	}
}

func (l *fileLogger) Debug(msg string, args ...any) { l.log(clog.DebugLevel, msg, args) }
func (l *fileLogger) Info(msg string, args ...any)  { l.log(clog.InfoLevel, msg, args) }
func (l *fileLogger) Warn(msg string, args ...any)  { l.log(clog.WarnLevel, msg, args) }
func (l *fileLogger) Error(msg string, args ...any) { l.log(clog.ErrorLevel, msg, args) }

func (l *fileLogger) log(level clog.Level, msg string, args []any) {
	pairs := make([]any, 0, len(l.fields)+len(args))
	pairs = append(pairs, l.fields...)
	pairs = append(pairs, args...)

	msg = l.redactor.redactMessage(msg)
	pairs = l.redactor.redact(pairs)

	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	if l.sink.closed {
		return
	}
	l.sink.clogger.Log(level, msg, pairs...)
}

func (l *fileLogger) With(args ...any) Logger {
	fields := make([]any, 0, len(l.fields)+len(args))
	fields = append(fields, l.fields...)
	fields = append(fields, args...)
	return &fileLogger{sink: l.sink, redactor: l.redactor, fields: fields}
}

func (l *fileLogger) Shutdown() error {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	if l.sink.closed {
		return nil
	}
	l.sink.closed = true
	return l.sink.file.Close()
}

func (l *fileLogger) path() string {
	return l.sink.file.Name()
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (n noopLogger) With(...any) Logger { return n }
func (noopLogger) Shutdown() error      { return nil }

var (
	globalMu     sync.RWMutex
	globalLogger Logger
)

// InitGlobal opens the process-wide logger from the global configuration and
// mirrors console messages to it. Later calls keep the first logger.
func InitGlobal() error {
	globalMu.Lock()
	if globalLogger != nil {
		globalMu.Unlock()
		return nil
	}
	l, err := Init(FromGlobalConfig())
	if err != nil {
		globalMu.Unlock()
		return err
	}
	globalLogger = l
	globalMu.Unlock()

	colors.SetLogger(l)
	if path := CurrentLogFile(); path != "" {
		colors.Debug("Logging to file:", path)
	}
	return nil
}

// GetGlobal returns the process-wide logger, or a no-op logger before InitGlobal.
func GetGlobal() Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	if globalLogger == nil {
		return noopLogger{}
	}
	return globalLogger
}

// Debug logs through the global logger.
func Debug(msg string, args ...any) { GetGlobal().Debug(msg, args...) }

// Info logs through the global logger.
func Info(msg string, args ...any) { GetGlobal().Info(msg, args...) }

// Warn logs through the global logger.
func Warn(msg string, args ...any) { GetGlobal().Warn(msg, args...) }

// Error logs through the global logger.
func Error(msg string, args ...any) { GetGlobal().Error(msg, args...) }

// ShutdownGlobal closes the global logger and stops mirroring console output.
func ShutdownGlobal() error {
	globalMu.Lock()
	l := globalLogger
	globalLogger = nil
	globalMu.Unlock()
	if l == nil {
		return nil
	}
	colors.SetLogger(nil)
	return l.Shutdown()
}

// CurrentLogFile returns the path of the global log file, or "" when logging is off.
func CurrentLogFile() string {
	globalMu.RLock()
	defer globalMu.RUnlock()
	if fl, ok := globalLogger.(*fileLogger); ok {
		return fl.path()
	}
	return ""
}
