// Package logging builds the plugin's logger. Nothing here is global:
// callers create a logger once at startup and pass it down.
package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultFileName is the log file created when no path is given
const DefaultFileName = "growify.log"

// Config selects where and how much to log.
type Config struct {
	// File is the log file path. "-" logs to stderr.
	File string
	// Level is a zap level name; empty means error.
	Level string
	// Header is written as the first line of the log, whatever the level.
	Header string
}

// Logger is a zap logger bound to an output that must be closed.
type Logger struct {
	*zap.Logger
	out io.WriteCloser
}

// New opens the log output, writes the header and builds the logger.
// The file is truncated so each session starts with a fresh log.
func New(cfg Config) (*Logger, error) {
	level := zapcore.ErrorLevel
	if cfg.Level != "" {
		parsed, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("parsing log level: %w", err)
		}
		level = parsed
	}

	out, err := openOutput(cfg.File)
	if err != nil {
		return nil, err
	}

	if cfg.Header != "" {
		if _, err := fmt.Fprintln(out, cfg.Header); err != nil {
			out.Close()
			return nil, fmt.Errorf("writing log header: %w", err)
		}
	}

	return &Logger{
		Logger: zap.New(newCore(out, level)),
		out:    out,
	}, nil
}

// NewWriter builds a logger on an existing writer, for tests and embedding hosts
func NewWriter(w io.Writer, level zapcore.Level) *zap.Logger {
	return zap.New(newCore(w, level))
}

// Close flushes the logger and closes its output
func (l *Logger) Close() error {
	_ = l.Logger.Sync()
	return l.out.Close()
}

func newCore(w io.Writer, level zapcore.Level) zapcore.Core {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeCaller = nil
	return zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func openOutput(path string) (io.WriteCloser, error) {
	switch path {
	case "-":
		return nopCloser{os.Stderr}, nil
	case "":
		path = DefaultFileName
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}
