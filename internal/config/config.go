package config

import (
	"fmt"
	"os"
	"strings"

	"transgen/internal/language"
	"transgen/internal/parser"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	DefaultInputPath  = "src/lib/services/translations.ts"
	DefaultOutputPath = "src/satellite/src/translations_generated.txt"
)

type Config struct {
	InputPath   string
	OutputPath  string
	BlockHeader string
	Languages   []language.Code
	LogLevel    zerolog.Level
}

// Load reads configuration from the environment, after applying an optional
// .env file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	langs, err := language.ParseList(getEnv("TRANSGEN_LANGS", ""))
	if err != nil {
		return nil, fmt.Errorf("config: TRANSGEN_LANGS: %w", err)
	}

	level, err := zerolog.ParseLevel(getEnv("TRANSGEN_LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("config: TRANSGEN_LOG_LEVEL: %w", err)
	}

	cfg := &Config{
		InputPath:   getEnv("TRANSGEN_INPUT", DefaultInputPath),
		OutputPath:  getEnv("TRANSGEN_OUTPUT", DefaultOutputPath),
		BlockHeader: getEnv("TRANSGEN_HEADER", parser.DefaultHeader),
		Languages:   langs,
		LogLevel:    level,
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.InputPath) == "" {
		return fmt.Errorf("config: input path is empty")
	}
	if strings.TrimSpace(c.OutputPath) == "" {
		return fmt.Errorf("config: output path is empty")
	}
	if strings.TrimSpace(c.BlockHeader) == "" {
		return fmt.Errorf("config: block header is empty")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
