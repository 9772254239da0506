package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// DefaultEnvFile is read by LoadEnvFile when no path is given.
const DefaultEnvFile = ".env"

// LoadEnvFile loads KEY=VALUE pairs from envFile into the process
// environment. Variables already set are left untouched. Returns true if a
// file was loaded.
func LoadEnvFile(envFile string) bool {
	if envFile == "" {
		envFile = DefaultEnvFile
	}

	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		log.Debug().Str("path", envFile).Msg("No .env file found")
		return false
	}

	if err := godotenv.Load(envFile); err != nil {
		log.Warn().Err(err).Str("path", envFile).Msg("Failed to load .env file")
		return false
	}

	log.Debug().Str("path", envFile).Msg("Loaded .env file")
	return true
}
