package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the base server configuration.
type Config struct {
	Host         string
	Port         string
	SQLiteDBPath string

	// Spotify Web API credentials (client-credentials flow).
	SpotifyClientID     string
	SpotifyClientSecret string
	// CatalogRateLimitRPS throttles outgoing catalog calls. The Spotify API
	// rate-limits aggressively when a bot fans out query variants.
	CatalogRateLimitRPS float64
	// SearchResultCap is the per-call result cap of the catalog (observed: 50).
	SearchResultCap int

	// Target Sonos coordinator.
	SonosIP        string
	SonosTimeoutMs int
	// SonosAccountSerial is the sn= value of the Spotify account registered on
	// the device, extracted from an existing favorite. Usually 1.
	SonosAccountSerial int

	// Theme mixing defaults, used when a request doesn't carry its own.
	DefaultTheme    string
	ThemePercentage int

	// BoosterRulesPath points to a YAML file of query booster rules.
	// Empty means compiled-in defaults.
	BoosterRulesPath string

	// StatusSampleSpec is a cron spec for the device status sampler.
	// Empty disables sampling.
	StatusSampleSpec string
}

// Load reads configuration from environment variables with defaults.
func Load() (Config, error) {
	cfg := Config{
		Host:                envString("HOST", "0.0.0.0"),
		Port:                envString("PORT", "9000"),
		SQLiteDBPath:        envString("SQLITE_DB_PATH", "./data/chatdj.db"),
		SpotifyClientID:     envString("SPOTIFY_CLIENT_ID", ""),
		SpotifyClientSecret: envString("SPOTIFY_CLIENT_SECRET", ""),
		CatalogRateLimitRPS: envFloat("CATALOG_RATE_LIMIT_RPS", 5),
		SearchResultCap:     envInt("SEARCH_RESULT_CAP", 50),
		SonosIP:             envString("SONOS_IP", "192.168.1.10"),
		SonosTimeoutMs:      envInt("SONOS_TIMEOUT_MS", 5000),
		SonosAccountSerial:  envInt("SONOS_ACCOUNT_SERIAL", 1),
		DefaultTheme:        envString("DEFAULT_THEME", ""),
		ThemePercentage:     envInt("THEME_PERCENTAGE", 0),
		BoosterRulesPath:    envString("BOOSTER_RULES_PATH", ""),
		StatusSampleSpec:    envString("STATUS_SAMPLE_SPEC", ""),
	}

	if cfg.ThemePercentage < 0 || cfg.ThemePercentage > 100 {
		return Config{}, fmt.Errorf("THEME_PERCENTAGE must be in [0,100], got %d", cfg.ThemePercentage)
	}
	if cfg.SearchResultCap < 1 {
		return Config{}, fmt.Errorf("SEARCH_RESULT_CAP must be positive, got %d", cfg.SearchResultCap)
	}
	if cfg.CatalogRateLimitRPS <= 0 {
		return Config{}, fmt.Errorf("CATALOG_RATE_LIMIT_RPS must be positive, got %v", cfg.CatalogRateLimitRPS)
	}
	if strings.TrimSpace(cfg.SonosIP) == "" {
		return Config{}, fmt.Errorf("SONOS_IP is required")
	}

	return cfg, nil
}

func envString(key, fallback string) string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	return val
}

func envInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func envFloat(key string, fallback float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
