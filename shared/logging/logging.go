// Package logging builds the zap loggers used across funcutils.
//
// Library packages never construct loggers themselves; they log through
// zap.L() unless one is injected. Applications call New or FromEnv and
// install the result with zap.ReplaceGlobals.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level defines the severity level for log messages.
type Level string

const (
	// LevelDebug is used for debugging messages, such as memoizer hits and misses.
	LevelDebug Level = "debug"

	// LevelInfo is used for general informational messages.
	LevelInfo Level = "info"

	// LevelWarn is used for potentially harmful situations.
	LevelWarn Level = "warn"

	// LevelError is used for error events.
	LevelError Level = "error"
)

// Format selects the encoder of the logger core.
type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
)

const (
	delimiter = "_"

	EnvPrefix    = "FUNCUTILS"
	EnvLogPrefix = EnvPrefix + delimiter + "LOG"
	EnvLogLevel  = EnvLogPrefix + delimiter + "LEVEL"
	EnvLogFormat = EnvLogPrefix + delimiter + "FORMAT"
)

// Config describes a logger.
type Config struct {
	Level  Level
	Format Format
	// Output defaults to stderr.
	Output io.Writer
}

// ParseLevel maps a Level name onto a zap level. Empty means info.
func ParseLevel(level string) (zapcore.Level, error) {
	switch Level(strings.ToLower(strings.TrimSpace(level))) {
	case LevelDebug:
		return zap.DebugLevel, nil
	case LevelInfo, "":
		return zap.InfoLevel, nil
	case LevelWarn:
		return zap.WarnLevel, nil
	case LevelError:
		return zap.ErrorLevel, nil
	default:
		return zap.InfoLevel, fmt.Errorf("unknown log level: %q", level)
	}
}

// New builds a logger from cfg.
func New(cfg Config) (*zap.Logger, error) {
	lvl, err := ParseLevel(string(cfg.Level))
	if err != nil {
		return nil, err
	}

	var encoder zapcore.Encoder
	switch cfg.Format {
	case FormatJSON:
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	case FormatConsole, "":
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	default:
		return nil, fmt.Errorf("unknown log format: %q", cfg.Format)
	}

	var out io.Writer = os.Stderr
	if cfg.Output != nil {
		out = cfg.Output
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(out)), lvl)
	return zap.New(core), nil
}

// FromEnv builds a logger configured by FUNCUTILS_LOG_LEVEL and
// FUNCUTILS_LOG_FORMAT.
func FromEnv() (*zap.Logger, error) {
	return New(Config{
		Level:  Level(os.Getenv(EnvLogLevel)),
		Format: Format(os.Getenv(EnvLogFormat)),
	})
}

// NewTest returns a debug-level console logger writing to w.
func NewTest(w io.Writer) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.DebugLevel,
	)
	return zap.New(core)
}
