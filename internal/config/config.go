package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	// Base URL of the ShopFast API the storefront talks to.
	APIURL string

	// Per-request timeout shared by all API calls.
	RequestTimeout time.Duration

	// How often the tracking view refreshes an order's status.
	PollInterval time.Duration

	// Optional log file path; logging is off when empty because stdout
	// belongs to the terminal UI.
	LogFile string
}

func Load() Config {
	return Config{
		APIURL:         getenv("SHOPFAST_API_URL", "http://localhost:3001"),
		RequestTimeout: parseDuration(getenv("SHOPFAST_REQUEST_TIMEOUT", "30s"), 30*time.Second),
		PollInterval:   parseDuration(getenv("SHOPFAST_POLL_INTERVAL", "10s"), 10*time.Second),
		LogFile:        getenv("SHOPFAST_LOG_FILE", ""),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
