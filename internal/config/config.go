package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/Makepad-fr/journal/internal/remote"
)

type Config struct {
	APIURL   string
	Source   string
	Timeout  time.Duration
	Sync     bool
	Theme    string
	LogLevel string
	LogFile  string
	SeedFile string
}

// New reads the process environment, after loading an optional .env file.
func New() (*Config, error) {
	_ = godotenv.Load()

	timeout, err := getDuration("JOURNAL_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	sync, err := getBool("JOURNAL_SYNC", true)
	if err != nil {
		return nil, err
	}

	return &Config{
		APIURL:   getEnv("JOURNAL_API_URL", remote.DefaultURL),
		Source:   getEnv("JOURNAL_SOURCE", "demo"),
		Timeout:  timeout,
		Sync:     sync,
		Theme:    getEnv("JOURNAL_THEME", "classic"),
		LogLevel: getEnv("JOURNAL_LOG_LEVEL", "info"),
		LogFile:  getEnv("JOURNAL_LOG_FILE", ""),
		SeedFile: getEnv("JOURNAL_SEED_FILE", ""),
	}, nil
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func getBool(key string, defaultVal bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
