package logger

import (
	"io"
	"log/slog"
	"os"

	"teamvote/internal/config"

	"gopkg.in/lumberjack.v2"
)

// Init installs the process-wide JSON logger. An unknown level falls back
// to info rather than failing startup.
func Init(cfg config.LogConfig) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	h := slog.NewJSONHandler(sink(cfg), &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
	Info("logger initialized", "level", level.String(), "file", cfg.File)
}

// sink combines console output with an optional size-rotated log file.
// With neither configured, logs go to stdout.
func sink(cfg config.LogConfig) io.Writer {
	var ws []io.Writer
	if cfg.Console {
		ws = append(ws, os.Stdout)
	}
	if cfg.File != "" {
		ws = append(ws, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			LocalTime:  true,
		})
	}
	switch len(ws) {
	case 0:
		return os.Stdout
	case 1:
		return ws[0]
	default:
		return io.MultiWriter(ws...)
	}
}

func Info(msg string, args ...any)  { slog.Info(msg, args...) }
func Warn(msg string, args ...any)  { slog.Warn(msg, args...) }
func Error(msg string, args ...any) { slog.Error(msg, args...) }
func Debug(msg string, args ...any) { slog.Debug(msg, args...) }
