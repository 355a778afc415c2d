package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls where and how the client logs.
// The TUI owns the terminal, so output always goes to a file.
type Options struct {
	Level  string
	File   string
	Format string
}

// New builds a zap logger writing to opts.File.
// The returned cleanup flushes buffered entries.
func New(opts Options) (*zap.Logger, func(), error) {
	var cfg zap.Config
	if strings.EqualFold(opts.Level, "debug") {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.Sampling = nil
	}

	level := opts.Level
	if level == "" {
		level = "info"
	}
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}

	switch strings.ToLower(opts.Format) {
	case "console", "text":
		cfg.Encoding = "console"
	default:
		cfg.Encoding = "json"
	}

	file := opts.File
	if file == "" {
		file = "homelyhub.log"
	}
	if dir := filepath.Dir(file); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	cfg.OutputPaths = []string{file}
	cfg.ErrorOutputPaths = []string{file}

	log, err := cfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return log, func() { _ = log.Sync() }, nil
}
