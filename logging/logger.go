package logging

import (
	"io"
	"os"

	"github.com/op/go-logging"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/bio-registry/part-hub/config"
)

var Logger = logging.MustGetLogger("part-hub")

var format = logging.MustStringFormatter(
	`%{time:2006-01-02T15:04:05.000} %{level:.4s} %{shortfile} %{message}`,
)

// InitLogger configures the package logger from LogConfig. Without console
// or file flags set, logs go to stderr at the configured level.
func InitLogger(cfg *config.LogConfig) {
	writers := make([]io.Writer, 0, 2)
	if cfg.UseConsoleLogger {
		writers = append(writers, os.Stdout)
	}
	if cfg.UseFileLogger {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxFileSizeInMB,
			MaxBackups: cfg.MaxBackupsOfLogFiles,
			MaxAge:     cfg.MaxAgeToRetainLogFilesInDays,
			Compress:   cfg.Compress,
		})
	}
	if len(writers) == 0 {
		writers = append(writers, os.Stderr)
	}

	backend := logging.NewLogBackend(io.MultiWriter(writers...), "", 0)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))

	level, err := logging.LogLevel(cfg.Level)
	if err != nil {
		level = logging.INFO
	}
	leveled.SetLevel(level, "")
	logging.SetBackend(leveled)
}
