package logger

import (
	"fmt"
	"log/slog"
	"os"
)

// Logger is a thin wrapper around slog that carries the package, file, and
// function the log line came from. The error helpers return the error so call
// sites can log and propagate in one statement.
type Logger struct {
	pkg      string
	file     string
	function string
}

func New(pkg string) Logger {
	return Logger{pkg: pkg}
}

func Init(level slog.Level) {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func (l Logger) File(file string) Logger {
	l.file = file
	return l
}

func (l Logger) Function(function string) Logger {
	l.function = function
	return l
}

func (l Logger) attrs(args ...any) []any {
	out := []any{"package", l.pkg}
	if l.file != "" {
		out = append(out, "file", l.file)
	}
	if l.function != "" {
		out = append(out, "function", l.function)
	}
	return append(out, args...)
}

func (l Logger) Debug(msg string, args ...any) {
	slog.Debug(msg, l.attrs(args...)...)
}

func (l Logger) Info(msg string, args ...any) {
	slog.Info(msg, l.attrs(args...)...)
}

func (l Logger) Warn(msg string, args ...any) {
	slog.Warn(msg, l.attrs(args...)...)
}

// Er logs an error without returning it.
func (l Logger) Er(msg string, err error, args ...any) {
	slog.Error(msg, l.attrs(append(args, "error", err)...)...)
}

// ErMsg logs an error message without an underlying error and without returning.
func (l Logger) ErMsg(msg string, args ...any) {
	slog.Error(msg, l.attrs(args...)...)
}

// Err logs the error and returns it wrapped with the message.
func (l Logger) Err(msg string, err error, args ...any) error {
	slog.Error(msg, l.attrs(append(args, "error", err)...)...)
	return fmt.Errorf("%s: %w", msg, err)
}

// Error logs and returns a new error built from the message.
func (l Logger) Error(msg string, args ...any) error {
	slog.Error(msg, l.attrs(args...)...)
	return fmt.Errorf("%s", msg)
}

// ErrMsg is an alias for Error for call sites that read better with it.
func (l Logger) ErrMsg(msg string, args ...any) error {
	return l.Error(msg, args...)
}
