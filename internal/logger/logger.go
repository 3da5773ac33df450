// Package logger provides structured logging for the callprof CLI.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus behind a small chained-field API.
type Logger struct {
	log *logrus.Logger
}

// Entry accumulates fields before the message is emitted.
type Entry struct {
	entry *logrus.Entry
	level logrus.Level
}

// New creates a logger writing to output at the given level. A nil output
// defaults to stderr; an unknown level falls back to info.
func New(level string, output io.Writer) *Logger {
	if output == nil {
		output = os.Stderr
	}

	log := logrus.New()
	log.SetOutput(output)

	parsed, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	log.SetFormatter(&logrus.TextFormatter{
		ForceColors:      true,
		DisableTimestamp: true,
		PadLevelText:     true,
	})

	return &Logger{log: log}
}

// Debug starts a debug-level entry.
func (l *Logger) Debug() *Entry {
	return &Entry{entry: logrus.NewEntry(l.log), level: logrus.DebugLevel}
}

// Info starts an info-level entry.
func (l *Logger) Info() *Entry {
	return &Entry{entry: logrus.NewEntry(l.log), level: logrus.InfoLevel}
}

// Warn starts a warn-level entry.
func (l *Logger) Warn() *Entry {
	return &Entry{entry: logrus.NewEntry(l.log), level: logrus.WarnLevel}
}

// Error starts an error-level entry.
func (l *Logger) Error() *Entry {
	return &Entry{entry: logrus.NewEntry(l.log), level: logrus.ErrorLevel}
}

// Str adds a string field.
func (e *Entry) Str(key, value string) *Entry {
	e.entry = e.entry.WithField(key, value)
	return e
}

// Int adds an int field.
func (e *Entry) Int(key string, value int) *Entry {
	e.entry = e.entry.WithField(key, value)
	return e
}

// Bool adds a bool field.
func (e *Entry) Bool(key string, value bool) *Entry {
	e.entry = e.entry.WithField(key, value)
	return e
}

// Err adds an error field.
func (e *Entry) Err(err error) *Entry {
	if err != nil {
		e.entry = e.entry.WithError(err)
	}
	return e
}

// Dur adds a duration field, formatted as milliseconds for readability.
func (e *Entry) Dur(key string, duration time.Duration) *Entry {
	ms := float64(duration.Microseconds()) / 1000.0
	e.entry = e.entry.WithField(key, ms)
	return e
}

// Msg emits the entry with its accumulated fields.
func (e *Entry) Msg(msg string) {
	e.entry.Log(e.level, msg)
}
