package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Redis configuration struct.
// The host can be left empty, in which case the catalog cache runs memory only.
type RedisConfiguration struct {
	Host     string
	Port     string
	Password string
}

// Config holds every environment driven setting of the application.
type Config struct {
	ApiKey string
	Port   string

	Redis RedisConfiguration

	// Path of the bundled consolidated champions document.
	ChampionsFile string

	// Path of the sqlite file holding search history and favorites.
	HistoryDBPath string

	// Language used when a language specific catalog request fails.
	DefaultLanguage string

	CacheTTL   time.Duration
	MaxRetries int

	MatchCount   int
	MasteryCount int

	LivePollInterval time.Duration
}

// Load reads the configuration from the environment.
// The Riot API key is the only required variable.
func Load() (*Config, error) {
	cfg := &Config{
		ApiKey:          os.Getenv("RIOT_API_KEY"),
		Port:            getEnv("PORT", "8080"),
		ChampionsFile:   getEnv("CHAMPIONS_FILE", "data/champions-full.json"),
		HistoryDBPath:   getEnv("HISTORY_DB_PATH", "riftbook.db"),
		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "en_US"),
		Redis: RedisConfiguration{
			Host:     os.Getenv("REDIS_HOST"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		CacheTTL:         getDurationEnv("CACHE_TTL", 5*time.Minute),
		MaxRetries:       getIntEnv("MAX_RETRIES", 3),
		MatchCount:       getIntEnv("MATCH_COUNT", 20),
		MasteryCount:     getIntEnv("MASTERY_COUNT", 5),
		LivePollInterval: getDurationEnv("LIVE_POLL_INTERVAL", 30*time.Second),
	}

	if cfg.ApiKey == "" {
		return nil, errors.New("RIOT_API_KEY is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return fallback
}
