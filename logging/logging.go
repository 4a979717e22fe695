/*
Copyright © 2025 Flow CLI Authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/

// Package logging provides a small logger with multiple output formats and
// log levels. Logging inside command handlers should go through the
// context-based functions (InfoContext, WarnContext, etc.) so the logger
// configured at startup propagates through the run.
package logging

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/fatih/color"
)

// LogLevel represents the severity level of a log message
type LogLevel int

// OutputType represents the output format for logs
type OutputType int

// Output types for different log formats
const (
	PlainOutput OutputType = iota
	ColorOutput
	JSONOutput
)

// Log levels ordered from least to most severe for numeric comparison.
const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "INFO"
	}
}

// Logger wraps console logging with configurable format and verbosity.
type Logger struct {
	mu            sync.Mutex
	LogLevel      slog.Level
	OutputType    OutputType
	Quiet         bool
	Verbose       bool
	ConsoleWriter io.Writer
	// OutputWriter receives command results; nil means stdout.
	OutputWriter io.Writer
}

// NewLogger creates a new Logger at the given level with plain output on stderr.
func NewLogger(level slog.Level) *Logger {
	return &Logger{
		LogLevel:      level,
		OutputType:    PlainOutput,
		ConsoleWriter: os.Stderr,
	}
}

// NewLoggerWithOptions creates a fully configured Logger.
func NewLoggerWithOptions(logLevelStr, outputFormat string, quiet, verbose bool) *Logger {
	logLevel := DetermineLogLevel(logLevelStr)

	outputType := PlainOutput
	switch outputFormat {
	case "json":
		outputType = JSONOutput
	case "color":
		outputType = ColorOutput
	case "text", "plain":
		outputType = PlainOutput
	}

	if verbose && logLevel > slog.LevelDebug {
		logLevel = slog.LevelDebug
	}

	return &Logger{
		LogLevel:      logLevel,
		OutputType:    outputType,
		Quiet:         quiet,
		Verbose:       verbose,
		ConsoleWriter: os.Stderr,
	}
}

// formatMessage applies a colored level prefix for ColorOutput and returns
// the message unchanged otherwise.
func (l *Logger) formatMessage(level LogLevel, message string, args ...interface{}) string {
	formattedMsg := fmt.Sprintf(message, args...)

	if l.OutputType != ColorOutput {
		return formattedMsg
	}

	switch level {
	case DebugLevel:
		return color.HiBlackString("[DEBUG] %s", formattedMsg)
	case InfoLevel:
		return color.HiGreenString("[INFO] %s", formattedMsg)
	case WarnLevel:
		return color.HiYellowString("[WARN] %s", formattedMsg)
	case ErrorLevel:
		return color.HiRedString("[ERROR] %s", formattedMsg)
	default:
		return formattedMsg
	}
}

// shouldShowLocked reports whether a message at level should reach the console.
// Must be called while holding l.mu.
func (l *Logger) shouldShowLocked(level LogLevel) bool {
	if l.Quiet {
		return level == ErrorLevel
	}
	if l.Verbose {
		return true
	}
	return level >= InfoLevel
}

func (l *Logger) log(level LogLevel, message string, args ...interface{}) {
	formattedMsg := l.formatMessage(level, message, args...)

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.shouldShowLocked(level) || l.ConsoleWriter == nil {
		return
	}

	if _, err := fmt.Fprintf(l.ConsoleWriter, "%s\n", formattedMsg); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", formattedMsg)
	}
}

// SetQuiet enables or disables quiet mode. In quiet mode only errors are shown.
func (l *Logger) SetQuiet(quiet bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Quiet = quiet
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(DebugLevel, format, args...)
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(InfoLevel, format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(WarnLevel, format, args...)
}

// Error logs an error message. It accepts either an error, a format string,
// or any other value as the first argument.
func (l *Logger) Error(firstArg interface{}, args ...interface{}) {
	switch v := firstArg.(type) {
	case error:
		l.log(ErrorLevel, "%s", v.Error())
	case string:
		l.log(ErrorLevel, v, args...)
	default:
		l.log(ErrorLevel, "%v", v)
	}
}

// Output sends command result data to stdout, unlike log messages which go
// to stderr. Strings print verbatim outside JSON mode; any other value is
// rendered as indented JSON so results stay machine-readable in every format.
func (l *Logger) Output(data interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	w := l.OutputWriter
	if w == nil {
		w = os.Stdout
	}

	if s, ok := data.(string); ok && l.OutputType != JSONOutput {
		fmt.Fprintln(w, s)
		return
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode JSON output: %v\n", err)
	}
}

// DetermineLogLevel converts a string to slog.Level
func DetermineLogLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Initialize builds the process logger from the resolved settings and returns
// it. Called once from the root command's PersistentPreRunE.
func Initialize(logLevel, logFormat string, quiet, verbose bool) (*Logger, error) {
	if quiet && verbose {
		return nil, fmt.Errorf("quiet and verbose modes are mutually exclusive")
	}
	return NewLoggerWithOptions(logLevel, logFormat, quiet, verbose), nil
}

// loggerKeyType is the type for the logger context key
type loggerKeyType struct{}

var loggerKey = loggerKeyType{}

// WithLogger returns a new context with the provided logger.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext retrieves the logger from the context.
// If no logger is found in context, returns a new default logger instance.
func FromContext(ctx context.Context) *Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*Logger); ok && l != nil {
			return l
		}
	}
	return NewLogger(slog.LevelInfo)
}

// DebugContext logs a debug message using the logger from context.
func DebugContext(ctx context.Context, message string, args ...interface{}) {
	FromContext(ctx).Debug(message, args...)
}

// InfoContext logs an informational message using the logger from context.
func InfoContext(ctx context.Context, message string, args ...interface{}) {
	FromContext(ctx).Info(message, args...)
}

// WarnContext logs a warning message using the logger from context.
func WarnContext(ctx context.Context, message string, args ...interface{}) {
	FromContext(ctx).Warn(message, args...)
}

// ErrorContext logs an error message using the logger from context. It accepts
// either an error, a format string, or any other value as the first argument.
func ErrorContext(ctx context.Context, firstArg interface{}, args ...interface{}) {
	FromContext(ctx).Error(firstArg, args...)
}

// OutputContext sends data to stdout using the logger from context.
func OutputContext(ctx context.Context, data interface{}) {
	FromContext(ctx).Output(data)
}

// Debug logs a debug message on a default logger. For code paths that run
// before a context-bound logger exists; prefer the Context variants.
func Debug(message string, args ...interface{}) {
	FromContext(nil).Debug(message, args...)
}

// Info logs an informational message on a default logger.
func Info(message string, args ...interface{}) {
	FromContext(nil).Info(message, args...)
}

// Warn logs a warning message on a default logger.
func Warn(message string, args ...interface{}) {
	FromContext(nil).Warn(message, args...)
}

// Error logs an error message on a default logger.
func Error(firstArg interface{}, args ...interface{}) {
	FromContext(nil).Error(firstArg, args...)
}
