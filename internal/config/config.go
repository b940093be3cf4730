package config

import "os"

type Config struct {
	// Server
	Port        string
	Environment string

	// Database. Empty means the in-memory store.
	DatabaseURL string

	// Word lists
	AnswersFile   string
	GuessableFile string

	// Logging
	LogLevel string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		AnswersFile:   getEnv("WORDS_ANSWERS_FILE", "data/answers.txt"),
		GuessableFile: getEnv("WORDS_GUESSABLE_FILE", "data/guessable.txt"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}
	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
