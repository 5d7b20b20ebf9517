package main

import (
	"fmt"
	"os"

	"github.com/mcdev12/reaction/go/internal/gameconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func loadConfig() (gameconfig.Config, error) {
	path := getEnv("REACTION_CONFIG", "")
	cfg, err := gameconfig.Load(path)
	if err != nil {
		return gameconfig.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		log.Warn().Str("log_level", level).Msg("unknown log level, using info")
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}
