// Package logger provides logging functionality for cherrybomb.
package logger

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=logger.go -destination=mocks/logger.gen.go -package=mocks

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted progress message.
	Logf(format string, args ...interface{})
	// Errorf logs a formatted error detail that must not reach the user's screen as is.
	Errorf(format string, args ...interface{})
	// With returns a logger that adds a key/value pair to every message.
	With(key string, value any) Logger
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// Errorf does nothing for noop logger.
func (n *noopLogger) Errorf(_ string, _ ...interface{}) {}

// With returns the noop logger itself.
func (n *noopLogger) With(_ string, _ any) Logger { return n }

// defaultLogger is a thread-safe logger writing progress to stdout and errors to stderr.
type defaultLogger struct {
	mu     *sync.Mutex
	out    io.Writer
	errOut io.Writer
	fields map[string]any
}

// NewDefaultLogger creates a new default logger.
func NewDefaultLogger() Logger {
	return NewWriterLogger(os.Stdout, os.Stderr)
}

// NewWriterLogger creates a default logger writing to the given writers.
func NewWriterLogger(out, errOut io.Writer) Logger {
	return &defaultLogger{
		mu:     &sync.Mutex{},
		out:    out,
		errOut: errOut,
	}
}

// Logf writes a formatted message to stdout with thread safety.
func (d *defaultLogger) Logf(format string, args ...interface{}) {
	d.write(d.out, format, args...)
}

// Errorf writes a formatted message to stderr with thread safety.
func (d *defaultLogger) Errorf(format string, args ...interface{}) {
	d.write(d.errOut, format, args...)
}

// With returns a copy of the logger carrying one more field.
func (d *defaultLogger) With(key string, value any) Logger {
	fields := make(map[string]any, len(d.fields)+1)
	for k, v := range d.fields {
		fields[k] = v
	}
	fields[key] = value

	return &defaultLogger{mu: d.mu, out: d.out, errOut: d.errOut, fields: fields}
}

func (d *defaultLogger) write(w io.Writer, format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, _ = fmt.Fprintf(w, format+d.suffix()+"\n", args...)
}

func (d *defaultLogger) suffix() string {
	if len(d.fields) == 0 {
		return ""
	}

	keys := make([]string, 0, len(d.fields))
	for k := range d.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		// Escape % so that field values never act as format verbs.
		b.WriteString(strings.ReplaceAll(fmt.Sprintf(" %s=%v", k, d.fields[k]), "%", "%%"))
	}
	return b.String()
}

// multiLogger fans messages out to several loggers.
type multiLogger struct {
	loggers []Logger
}

// NewMultiLogger creates a logger writing to every given logger.
func NewMultiLogger(loggers ...Logger) Logger {
	return &multiLogger{loggers: loggers}
}

func (m *multiLogger) Logf(format string, args ...interface{}) {
	for _, l := range m.loggers {
		l.Logf(format, args...)
	}
}

func (m *multiLogger) Errorf(format string, args ...interface{}) {
	for _, l := range m.loggers {
		l.Errorf(format, args...)
	}
}

func (m *multiLogger) With(key string, value any) Logger {
	loggers := make([]Logger, len(m.loggers))
	for i, l := range m.loggers {
		loggers[i] = l.With(key, value)
	}
	return &multiLogger{loggers: loggers}
}
