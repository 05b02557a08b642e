package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LevelTrace is more verbose than debug. It is used by the generated
// repository middleware to log arguments and results of every call.
const LevelTrace = slog.Level(-8)

// Options configures InitLogger.
type Options struct {
	// Filepath of the log file. If empty, logs are only written to stderr.
	Filepath string

	// MaxSizeMB is the size a log file grows to before it gets rotated.
	MaxSizeMB int

	// MaxBackups is the number of rotated log files to keep.
	MaxBackups int

	Verbose bool
	Debug   bool
	Trace   bool
}

// InitLogger sets up the default logger. Human readable records go to
// stderr, if a log file is given, JSON records are written there as well.
// The log file is rotated by lumberjack.
func InitLogger(stderr io.Writer, opts Options) (*Handler, io.Closer, error) {
	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelInfo
	}

	if opts.Debug {
		level = slog.LevelDebug
	}

	if opts.Trace {
		level = LevelTrace
	}

	if stderr == nil {
		stderr = os.Stderr
	}

	handler := NewLogHandler(level, slog.HandlerOptions{
		// Add source information, if debug level is enabled.
		AddSource:   opts.Debug || opts.Trace,
		ReplaceAttr: replaceLevelName,
	})

	handler.AddHandler(slog.NewTextHandler(stderr, &handler.options))

	var closer io.Closer = io.NopCloser(nil)
	if opts.Filepath != "" {
		if opts.MaxSizeMB <= 0 {
			opts.MaxSizeMB = 10
		}

		if opts.MaxBackups <= 0 {
			opts.MaxBackups = 3
		}

		file := &lumberjack.Logger{
			Filename:   opts.Filepath,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			Compress:   true,
		}

		// Open the file right away, such that permission problems are reported
		// on startup and not on the first record.
		_, err := file.Write(nil)
		if err != nil {
			return nil, nil, fmt.Errorf("Failed to open log file %q: %w", opts.Filepath, err)
		}

		handler.AddHandler(slog.NewJSONHandler(file, &handler.options))
		closer = file
	}

	slog.SetDefault(slog.New(handler))
	bridgeLogrus(handler)

	return handler, closer, nil
}

func replaceLevelName(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}

	level, ok := a.Value.Any().(slog.Level)
	if ok && level <= LevelTrace {
		a.Value = slog.StringValue("TRACE")
	}

	return a
}

// Err is a helper function to ensure errors are always logged with the key
// "err". Additionally this becomes the single point in code, where we could
// tweak how errors are logged, e.g. to handle application specific error types
// or to add stack trace information in debug mode.
func Err(err error) slog.Attr {
	return slog.Any("err", err)
}

func ValidateLevel(levelStr string) error {
	validLogLevels := []string{"TRACE", slog.LevelDebug.String(), slog.LevelInfo.String(), slog.LevelWarn.String(), slog.LevelError.String()}
	if !slices.Contains(validLogLevels, strings.ToUpper(levelStr)) {
		return fmt.Errorf("Log level %q is invalid, must be one of %q", levelStr, strings.Join(validLogLevels, ","))
	}

	return nil
}

func ParseLevel(levelStr string) slog.Level {
	level := slog.LevelWarn
	switch strings.ToUpper(levelStr) {
	case "TRACE":
		level = LevelTrace
	case slog.LevelDebug.String():
		level = slog.LevelDebug
	case slog.LevelInfo.String():
		level = slog.LevelInfo
	case slog.LevelWarn.String():
		level = slog.LevelWarn
	case slog.LevelError.String():
		level = slog.LevelError
	}

	return level
}
