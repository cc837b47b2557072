package logger

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func InitLogger() zerolog.Logger {
	logger := log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if level, err := zerolog.ParseLevel(v); err == nil {
			logger = logger.Level(level)
		}
	}
	return logger
}
