package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage backend names.
const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

type Config struct {
	APIBaseURL  string
	UserID      uint
	Locale      string
	Storage     string
	DatabaseURL string
	RedisAddr   string
	DataDir     string
	HTTPTimeout time.Duration

	// Poll intervals are explicit configuration, one per query family.
	// Defaults mirror the historical values: detail views polled tightest,
	// notification checks loosest.
	EventDetailPoll  time.Duration
	EventListPoll    time.Duration
	NotificationPoll time.Duration
}

// Load reads the configuration from environment variables and validates it.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment
	// (Docker, CI, etc.).
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:  os.Getenv("BACO_API_URL"),
		Locale:      os.Getenv("BACO_LOCALE"),
		Storage:     os.Getenv("BACO_STORAGE"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		DataDir:     os.Getenv("BACO_DATA_DIR"),
	}

	userID, err := parseUint("BACO_USER_ID")
	if err != nil {
		return nil, err
	}
	cfg.UserID = userID

	if cfg.HTTPTimeout, err = parseDuration("BACO_HTTP_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.EventDetailPoll, err = parseDuration("BACO_EVENT_DETAIL_POLL", 5*time.Second); err != nil {
		return nil, err
	}
	if cfg.EventListPoll, err = parseDuration("BACO_EVENT_LIST_POLL", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.NotificationPoll, err = parseDuration("BACO_NOTIFICATION_POLL", 60*time.Second); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies all rules on the loaded configuration.
func (c *Config) validate() error {
	if strings.TrimSpace(c.APIBaseURL) == "" {
		return fmt.Errorf("config: BACO_API_URL is required")
	}
	parsed, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return fmt.Errorf("config: BACO_API_URL invalid (%q): %w", c.APIBaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: BACO_API_URL invalid (%q): missing scheme or host", c.APIBaseURL)
	}
	c.APIBaseURL = strings.TrimRight(c.APIBaseURL, "/")

	if c.UserID == 0 {
		return fmt.Errorf("config: BACO_USER_ID is required")
	}

	if c.Locale == "" {
		c.Locale = "fr"
	}

	switch c.Storage {
	case "":
		c.Storage = StorageFile
	case StorageFile, StoragePostgres, StorageRedis:
	default:
		return fmt.Errorf("config: BACO_STORAGE must be one of file, postgres, redis (got %q)", c.Storage)
	}
	if c.Storage == StoragePostgres && strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("config: DATABASE_URL is required when BACO_STORAGE=postgres")
	}
	if c.Storage == StorageRedis && strings.TrimSpace(c.RedisAddr) == "" {
		return fmt.Errorf("config: REDIS_ADDR is required when BACO_STORAGE=redis")
	}

	if c.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		c.DataDir = home + "/.baco"
	}

	return nil
}

func parseUint(key string) (uint, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be a numeric user id (got %q)", key, raw)
	}
	return uint(v), nil
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s invalid duration (%q): %w", key, raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("config: %s must be positive (got %q)", key, raw)
	}
	return d, nil
}
