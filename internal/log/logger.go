// Package log is the logging front door for the application. It wraps
// logrus behind a small structured API so callers attach fields with
// F()/With() instead of depending on the logrus types directly.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var (
	isDebug = false
	logger  = NewLogger()
)

// Field is one structured key/value pair attached to a log line.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logger wraps a logrus logger.
type Logger struct {
	l *logrus.Logger
}

// Option configures a Logger.
type Option func(*Logger)

// WithOutput directs log output to w.
func WithOutput(w io.Writer) Option {
	return func(lg *Logger) {
		lg.l.SetOutput(w)
	}
}

// WithJSON switches the output format to one JSON object per line.
func WithJSON() Option {
	return func(lg *Logger) {
		lg.l.SetFormatter(&logrus.JSONFormatter{})
	}
}

// NewLogger creates a logger writing plain text to stderr unless
// options say otherwise.
func NewLogger(opts ...Option) *Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   true,
	})
	lg := &Logger{l: l}
	for _, opt := range opts {
		opt(lg)
	}
	return lg
}

// Configure rebuilds the package-level logger with the given options.
func Configure(opts ...Option) {
	logger = NewLogger(opts...)
}

// SetDebug toggles debug-level output globally.
func SetDebug(debug bool) {
	isDebug = debug
}

// Entry is a logger with fields already attached.
type Entry struct {
	e *logrus.Entry
}

// With attaches fields to the logger.
func (lg *Logger) With(fields ...Field) *Entry {
	return &Entry{e: lg.l.WithFields(toLogrus(fields))}
}

// With attaches further fields to an entry.
func (en *Entry) With(fields ...Field) *Entry {
	return &Entry{e: en.e.WithFields(toLogrus(fields))}
}

func toLogrus(fields []Field) logrus.Fields {
	lf := make(logrus.Fields, len(fields))
	for _, f := range fields {
		lf[f.Key] = f.Value
	}
	return lf
}

func (lg *Logger) Info(args ...interface{})                 { lg.l.Info(args...) }
func (lg *Logger) Infof(format string, args ...interface{}) { lg.l.Infof(format, args...) }
func (lg *Logger) Warn(args ...interface{})                 { lg.l.Warn(args...) }
func (lg *Logger) Warnf(format string, args ...interface{}) { lg.l.Warnf(format, args...) }
func (lg *Logger) Error(args ...interface{})                { lg.l.Error(args...) }
func (lg *Logger) Errorf(format string, args ...interface{}) {
	lg.l.Errorf(format, args...)
}

// Debug logs only when debug output is enabled.
func (lg *Logger) Debug(args ...interface{}) {
	if isDebug {
		lg.l.Debug(args...)
	}
}

// Debugf logs a formatted message when debug output is enabled.
func (lg *Logger) Debugf(format string, args ...interface{}) {
	if isDebug {
		lg.l.Debugf(format, args...)
	}
}

func (en *Entry) Info(args ...interface{})                  { en.e.Info(args...) }
func (en *Entry) Infof(format string, args ...interface{})  { en.e.Infof(format, args...) }
func (en *Entry) Warn(args ...interface{})                  { en.e.Warn(args...) }
func (en *Entry) Warnf(format string, args ...interface{})  { en.e.Warnf(format, args...) }
func (en *Entry) Error(args ...interface{})                 { en.e.Error(args...) }
func (en *Entry) Errorf(format string, args ...interface{}) { en.e.Errorf(format, args...) }

func (en *Entry) Debug(args ...interface{}) {
	if isDebug {
		en.e.Debug(args...)
	}
}

func (en *Entry) Debugf(format string, args ...interface{}) {
	if isDebug {
		en.e.Debugf(format, args...)
	}
}

// Package-level helpers that write through the configured logger.

func Info(args ...interface{})                  { logger.Info(args...) }
func Infof(format string, args ...interface{})  { logger.Infof(format, args...) }
func Warn(args ...interface{})                  { logger.Warn(args...) }
func Warnf(format string, args ...interface{})  { logger.Warnf(format, args...) }
func Error(args ...interface{})                 { logger.Error(args...) }
func Errorf(format string, args ...interface{}) { logger.Errorf(format, args...) }
func Debug(args ...interface{})                 { logger.Debug(args...) }
func Debugf(format string, args ...interface{}) { logger.Debugf(format, args...) }

// LogWithFields returns an entry on the package logger with the given
// fields attached.
func LogWithFields(fields ...Field) *Entry {
	return logger.With(fields...)
}

// LogWithError returns an entry with the error attached under the
// "error" key.
func LogWithError(err error) *Entry {
	return logger.With(F("error", err))
}
