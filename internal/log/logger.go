package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is the logging interface taken by every service in this repository.
type Logger interface {
	Debug(msg string, keyvals ...interface{})
	Info(msg string, keyvals ...interface{})
	Error(msg string, keyvals ...interface{})

	With(keyvals ...interface{}) Logger
}

const (
	// LogFormatPlain defines a logging format used for human-readable text-based logging.
	LogFormatPlain = "plain"

	// LogFormatJSON defines a logging format using structured JSON output.
	LogFormatJSON = "json"
)

type defaultLogger struct {
	zerolog.Logger
}

// NewLogger returns a logger that writes to w with the given format and level.
func NewLogger(format, level string, w io.Writer) (Logger, error) {
	logLevel, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level (%s): %w", level, err)
	}

	var logWriter io.Writer
	switch strings.ToLower(format) {
	case LogFormatPlain:
		logWriter = zerolog.ConsoleWriter{Out: w}
	case LogFormatJSON:
		logWriter = w
	default:
		return nil, fmt.Errorf("unsupported log format: %s", format)
	}

	return &defaultLogger{
		Logger: zerolog.New(logWriter).Level(logLevel).With().Timestamp().Logger(),
	}, nil
}

// MustNewLogger panics if an error is encountered creating the logger.
func MustNewLogger(format, level string) Logger {
	logger, err := NewLogger(format, level, os.Stderr)
	if err != nil {
		panic(err)
	}
	return logger
}

func (l *defaultLogger) Debug(msg string, keyvals ...interface{}) {
	l.Logger.Debug().Fields(keyvals).Msg(msg)
}

func (l *defaultLogger) Info(msg string, keyvals ...interface{}) {
	l.Logger.Info().Fields(keyvals).Msg(msg)
}

func (l *defaultLogger) Error(msg string, keyvals ...interface{}) {
	l.Logger.Error().Fields(keyvals).Msg(msg)
}

func (l *defaultLogger) With(keyvals ...interface{}) Logger {
	return &defaultLogger{Logger: l.Logger.With().Fields(keyvals).Logger()}
}
