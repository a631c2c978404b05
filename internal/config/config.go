package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"habitdash/clients/tracker"
)

const (
	TokenStoreKeyring = "keyring"
	TokenStoreSQLite  = "sqlite"
)

type Config struct {
	APIURL     string
	APITimeout time.Duration
	APIToken   string

	Port       int
	SSHAddr    string
	SSHHostKey string
	DBURL      string
	TokenStore string
	Timezone   *time.Location
	LogLevel   string
	LogDir     string
}

// Load reads the environment (and a .env file, if present).
func Load() (Config, error) {
	cfg := Config{
		APIURL:     getenv("HABIT_API_URL", tracker.DefaultBaseURL),
		APITimeout: tracker.DefaultTimeout,
		APIToken:   os.Getenv("HABIT_API_TOKEN"),
		Port:       8080,
		SSHAddr:    getenv("SSH_ADDR", ":23234"),
		SSHHostKey: getenv("SSH_HOST_KEY", ".ssh/id_ed25519"),
		DBURL:      os.Getenv("DB_URL"),
		TokenStore: getenv("TOKEN_STORE", TokenStoreKeyring),
		Timezone:   time.UTC,
		LogLevel:   getenv("LOG_LEVEL", "info"),
		LogDir:     os.Getenv("LOG_DIR"),
	}

	if v := os.Getenv("HABIT_API_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid HABIT_API_TIMEOUT %q: %w", v, err)
		}
		cfg.APITimeout = d
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}

	if v := os.Getenv("HABIT_TIMEZONE"); v != "" {
		loc, err := time.LoadLocation(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid HABIT_TIMEZONE %q: %w", v, err)
		}
		cfg.Timezone = loc
	}

	switch cfg.TokenStore {
	case TokenStoreKeyring:
	case TokenStoreSQLite:
		if cfg.DBURL == "" {
			cfg.DBURL = "habitdash.db"
		}
	default:
		return cfg, fmt.Errorf("invalid TOKEN_STORE %q: want %q or %q", cfg.TokenStore, TokenStoreKeyring, TokenStoreSQLite)
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
