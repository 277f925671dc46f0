// Package bitmapeditor wires configuration, logging and the editor for the
// bitmapeditor command.
package bitmapeditor

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/gogpu/bitmap"
	"github.com/gogpu/bitmap/editor"
)

// ErrInputFile is returned when the script path is missing or unreadable.
var ErrInputFile = errors.New("please provide correct file")

// Config holds bitmapeditor command configuration.
type Config struct {
	LogLevel  string `env:"BITMAP_EDITOR_LOG_LEVEL"  envDefault:"error"`
	LogFormat string `env:"BITMAP_EDITOR_LOG_FORMAT" envDefault:"text"`

	// Input is the script path, taken from the first positional argument.
	Input string
}

// ParseConfig reads the environment, then lets flags override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (text, json)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 1 {
		return Config{}, fmt.Errorf("expected a single input file, got %d arguments", fs.NArg())
	}
	cfg.Input = fs.Arg(0)
	return cfg, nil
}

// NewLogger builds the slog logger described by cfg, writing to w.
func NewLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(cfg.LogFormat) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.LogFormat)
	}
}

// Run executes the script named by cfg.Input, writing canvas renders to
// out and logs to errOut. The interpreter is never started when the input
// cannot be opened.
func Run(cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}

	logger, err := NewLogger(cfg, errOut)
	if err != nil {
		return err
	}
	bitmap.SetLogger(logger)

	if cfg.Input == "" {
		return ErrInputFile
	}
	f, err := os.Open(cfg.Input)
	if err != nil {
		logger.Debug("bitmapeditor: open input", slog.String("path", cfg.Input), slog.Any("error", err))
		return ErrInputFile
	}
	defer func() {
		_ = f.Close()
	}()

	return editor.Run(f, editor.New(out))
}
