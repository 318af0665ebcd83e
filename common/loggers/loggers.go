// Package loggers holds the build logger.
package loggers

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	jww "github.com/spf13/jwalterweatherman"
	"go.uber.org/atomic"
)

// Logger is what the build logs through.
type Logger interface {
	Printf(format string, v ...any)
	Println(v ...any)
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Warnf(format string, v ...any)
	Errorf(format string, v ...any)

	// Process traces a named build phase.
	Process(step, msg string)

	// ErrorCount is the number of errors logged so far.
	ErrorCount() int
}

type logger struct {
	*jww.Notepad
	errors atomic.Int64
}

func (l *logger) Printf(format string, v ...any) {
	l.FEEDBACK.Printf(format, v...)
}

func (l *logger) Println(v ...any) {
	l.FEEDBACK.Println(v...)
}

func (l *logger) Debugf(format string, v ...any) {
	l.DEBUG.Printf(format, v...)
}

func (l *logger) Infof(format string, v ...any) {
	l.INFO.Printf(format, v...)
}

func (l *logger) Warnf(format string, v ...any) {
	l.WARN.Printf(format, v...)
}

func (l *logger) Errorf(format string, v ...any) {
	l.errors.Inc()
	l.ERROR.Printf(format, v...)
}

func (l *logger) Process(step, msg string) {
	l.DEBUG.Printf("%s: %s", step, msg)
}

func (l *logger) ErrorCount() int {
	return int(l.errors.Load())
}

// NewDefault creates a logger that writes everything at or above
// threshold to stderr.
func NewDefault(threshold jww.Threshold) Logger {
	return newLogger(threshold, jww.LevelError, os.Stderr, io.Discard)
}

// NewDiscard creates a logger that drops everything.
func NewDiscard() Logger {
	return newLogger(jww.LevelFatal, jww.LevelFatal, io.Discard, io.Discard)
}

func newLogger(stdoutThreshold, logThreshold jww.Threshold, outHandle, logHandle io.Writer) *logger {
	if logHandle == nil {
		logHandle = io.Discard
	}
	return &logger{
		Notepad: jww.NewNotepad(stdoutThreshold, logThreshold, outHandle, logHandle, "", log.Ldate|log.Ltime),
	}
}

// ParseThreshold maps a level name to a jww threshold.
func ParseThreshold(level string) (jww.Threshold, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return jww.LevelTrace, nil
	case "debug":
		return jww.LevelDebug, nil
	case "info":
		return jww.LevelInfo, nil
	case "", "warn", "warning":
		return jww.LevelWarn, nil
	case "error":
		return jww.LevelError, nil
	default:
		return jww.LevelWarn, fmt.Errorf("unknown log level %q", level)
	}
}

// NewBufferLogger logs everything to a buffer, for assertions in tests.
func NewBufferLogger() (Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return newLogger(jww.LevelTrace, jww.LevelError, &buf, io.Discard), &buf
}
