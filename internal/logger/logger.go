// Package logger configures the process logger. Call sites log through
// log/slog; Init routes slog into a charmbracelet logger.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	Level  string
	Dir    string
	Prefix string
}

// Init builds the logger, installs it as the slog default and returns it.
// With Dir set, output is also written to a rotating file in that directory.
func Init(cfg Config) (*log.Logger, error) {
	var writer io.Writer = os.Stderr
	if cfg.Dir != "" {
		if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
			return nil, err
		}
		writer = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   filepath.Join(cfg.Dir, "habitdash.log"),
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		})
	}

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}

	l := log.NewWithOptions(writer, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          cfg.Prefix,
	})
	log.SetDefault(l)
	slog.SetDefault(slog.New(l))
	return l, nil
}
