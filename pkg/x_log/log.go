// Package x_log provides zerolog-based logging with styled console
// output, optional JSON mode and rotated file output.
package x_log

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

//---------------------
// TYPES
//---------------------

type Level int8

//---------------------
// LOG LEVELS
//---------------------

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

//---------------------
// INITIALIZATION
//---------------------

// Init sets up the global logger with the default config.
func Init() {
	cfg, err := LoadConfig("")
	if err != nil {
		cfg = &defaultConfig
	}
	InitWithConfig(cfg, "radix")
}

// InitWithConfig sets up the global logger from a config, tagging every
// entry with the module name.
func InitWithConfig(cfg *Config, module string) {
	zerolog.SetGlobalLevel(parseLevel(cfg.Level))

	var writers []io.Writer
	if cfg.ToConsole {
		styles := DefaultStylesByName(cfg.Style)
		styles.Out = os.Stderr
		writers = append(writers, ConsoleWriterWithStyles(styles))
	}
	if cfg.ToFile {
		file := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		if cfg.ColoredFile {
			styles := DefaultStylesByName(cfg.Style)
			styles.Out = file
			writers = append(writers, ConsoleWriterWithStyles(styles))
		} else {
			writers = append(writers, file)
		}
	}

	var out io.Writer = os.Stderr
	switch len(writers) {
	case 0:
	case 1:
		out = writers[0]
	default:
		out = zerolog.MultiLevelWriter(writers...)
	}

	log.Logger = zerolog.New(out).With().
		Timestamp().
		Str("module", module).
		Logger()
}

//---------------------
// SCOPED LOGGERS
//---------------------

// New returns a logger scoped to a module name.
func New(module string) zerolog.Logger {
	return log.Logger.With().Str("module", module).Logger()
}

//---------------------
// CONTEXT HELPERS
//---------------------

type ctxKey struct{}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// From extracts the logger from the context, falling back to the
// global logger.
func From(ctx context.Context) *zerolog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*zerolog.Logger); ok {
		return l
	}
	return &log.Logger
}

//---------------------
// LOG SHORTCUTS
//---------------------

func Debug() *zerolog.Event { return log.Debug() }
func Info() *zerolog.Event  { return log.Info() }
func Warn() *zerolog.Event  { return log.Warn() }
func Error() *zerolog.Event { return log.Error() }
func Fatal() *zerolog.Event { return log.Fatal() }

//---------------------
// UTILITIES
//---------------------

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
