package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/getsentry/sentry-go"
)

// sentryFlushTimeout bounds the time spent sending pending events on close.
const sentryFlushTimeout = 2 * time.Second

// DiagnosticConfig holds the diagnostic log configuration.
type DiagnosticConfig struct {
	Level slog.Level
	// LogFile is the log destination. Empty means Output, or stderr when Output is nil.
	LogFile string
	Output  io.Writer
	// SentryDSN enables forwarding of errors to Sentry when set.
	SentryDSN string
	Release   string
}

// diagnosticLogger writes structured records through slog.
type diagnosticLogger struct {
	logger *slog.Logger
}

// NewDiagnosticLogger creates the structured diagnostic logger.
// The returned function flushes pending Sentry events and closes the log file.
func NewDiagnosticLogger(cfg DiagnosticConfig) (Logger, func(), error) {
	sentryEnabled := false
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:     cfg.SentryDSN,
			Release: cfg.Release,
		}); err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrSentryInit, err)
		}
		sentryEnabled = true
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	var logFile *os.File
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrLogFileOpen, err)
		}

		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrLogFileOpen, err)
		}
		output = f
		logFile = f
	}

	handler := &sentryHandler{
		Handler:       slog.NewTextHandler(output, &slog.HandlerOptions{Level: cfg.Level}),
		sentryEnabled: sentryEnabled,
	}

	closeFn := func() {
		if sentryEnabled {
			sentry.Flush(sentryFlushTimeout)
		}
		if logFile != nil {
			_ = logFile.Sync()
			_ = logFile.Close()
		}
	}

	return &diagnosticLogger{logger: slog.New(handler)}, closeFn, nil
}

// Logf records an info message.
func (l *diagnosticLogger) Logf(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

// Errorf records an error message, forwarded to Sentry when enabled.
func (l *diagnosticLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

// With returns a logger adding the attribute to every record.
func (l *diagnosticLogger) With(key string, value any) Logger {
	return &diagnosticLogger{logger: l.logger.With(key, value)}
}

// sentryHandler wraps an slog.Handler and sends errors to Sentry.
type sentryHandler struct {
	slog.Handler
	sentryEnabled bool
}

func (h *sentryHandler) Handle(ctx context.Context, r slog.Record) error {
	if err := h.Handler.Handle(ctx, r); err != nil {
		return err
	}

	if h.sentryEnabled && r.Level >= slog.LevelError {
		sentry.CaptureEvent(newSentryEvent(r))
	}

	return nil
}

func (h *sentryHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sentryHandler{
		Handler:       h.Handler.WithAttrs(attrs),
		sentryEnabled: h.sentryEnabled,
	}
}

func (h *sentryHandler) WithGroup(name string) slog.Handler {
	return &sentryHandler{
		Handler:       h.Handler.WithGroup(name),
		sentryEnabled: h.sentryEnabled,
	}
}

// newSentryEvent converts a log record into a Sentry event.
// Attributes added with With are held by the wrapped handler and are not part of the record.
func newSentryEvent(r slog.Record) *sentry.Event {
	event := sentry.NewEvent()
	event.Level = slogLevelToSentry(r.Level)
	event.Message = r.Message
	event.Timestamp = r.Time

	r.Attrs(func(a slog.Attr) bool {
		event.Extra[a.Key] = a.Value.Any()
		return true
	})

	if r.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{r.PC})
		frame, _ := frames.Next()
		event.Exception = []sentry.Exception{{
			Type:  "LogError",
			Value: r.Message,
			Stacktrace: &sentry.Stacktrace{
				Frames: []sentry.Frame{{
					Filename: frame.File,
					Function: frame.Function,
					Lineno:   frame.Line,
				}},
			},
		}}
	}

	return event
}

func slogLevelToSentry(level slog.Level) sentry.Level {
	switch {
	case level >= slog.LevelError:
		return sentry.LevelError
	case level >= slog.LevelWarn:
		return sentry.LevelWarning
	case level >= slog.LevelInfo:
		return sentry.LevelInfo
	default:
		return sentry.LevelDebug
	}
}
