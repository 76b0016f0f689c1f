package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Level is a logging severity threshold.
type Level string

const (
	// LevelError logs only errors.
	LevelError Level = "error"
	// LevelWarn logs warnings and errors.
	LevelWarn Level = "warn"
	// LevelInfo logs informational messages, warnings, and errors.
	LevelInfo Level = "info"
	// LevelDebug logs everything, including debug messages.
	LevelDebug Level = "debug"
)

// Format represents the log output format.
type Format string

const (
	// FormatJSON outputs logs as JSON objects.
	FormatJSON Format = "json"
	// FormatLogfmt outputs logs in logfmt format.
	FormatLogfmt Format = "logfmt"
	// FormatText outputs logs in a human-readable text format.
	FormatText Format = "text"
)

// Handler is the [slog.Handler] built by [NewHandler].
type Handler = slog.Handler

var (
	// ErrInvalidArgument indicates an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownLogLevel indicates an unrecognized log level string.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrUnknownLogFormat indicates an unrecognized log format string.
	ErrUnknownLogFormat = errors.New("unknown log format")
)

// NewHandlerFromStrings parses levelStr and formatStr and creates a
// [Handler] writing to w. It delegates to [NewHandler].
func NewHandlerFromStrings(w io.Writer, levelStr, formatStr string) (Handler, error) {
	level, err := ParseLevel(levelStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	format, err := ParseFormat(formatStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return NewHandler(w, level, format), nil
}

// NewHandler creates a [Handler] writing to w at the given level and format.
func NewHandler(w io.Writer, level Level, format Format) Handler {
	opts := &slog.HandlerOptions{
		AddSource: true,
		Level:     level.slogLevel(),
	}

	switch format {
	case FormatJSON:
		return slog.NewJSONHandler(w, opts)
	case FormatLogfmt, FormatText:
		return slog.NewTextHandler(w, opts)
	}

	return slog.NewTextHandler(w, opts)
}

// ParseLevel parses a level string, case-insensitively. "warning" is
// accepted as an alias for [LevelWarn].
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(level) {
	case string(LevelError):
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case string(LevelInfo):
		return LevelInfo, nil
	case string(LevelDebug):
		return LevelDebug, nil
	}

	return "", ErrUnknownLogLevel
}

// ParseFormat parses a format string, case-insensitively.
func ParseFormat(format string) (Format, error) {
	logFmt := Format(strings.ToLower(format))
	switch logFmt {
	case FormatJSON, FormatLogfmt, FormatText:
		return logFmt, nil
	}

	return "", ErrUnknownLogFormat
}

// GetAllLevelStrings returns every recognized level string, in the order
// used for flag help text and shell completions.
func GetAllLevelStrings() []string {
	return []string{string(LevelError), string(LevelWarn), string(LevelInfo), string(LevelDebug)}
}

// GetAllFormatStrings returns every recognized format string, in the order
// used for flag help text and shell completions.
func GetAllFormatStrings() []string {
	return []string{string(FormatJSON), string(FormatLogfmt), string(FormatText)}
}

// slogLevel maps l to the corresponding [slog.Level], defaulting to
// [slog.LevelInfo] for the zero value.
func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelError:
		return slog.LevelError
	case LevelWarn:
		return slog.LevelWarn
	case LevelDebug:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
