package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"horizons/internal/clients"
	"horizons/internal/models"
)

type Config struct {
	App struct {
		Port        string
		Debug       bool
		FrontendURL string
	}
	Horizons struct {
		URL               string
		UserAgent         string
		Timeout           time.Duration
		RequestsPerSecond float64
		Burst             int
	}
	Defaults struct {
		Site       string
		WRT        string
		Units      string
		TimeFormat string
		RefPlane   string
	}
	Workers struct {
		ProbeEnabled  bool
		ProbeInterval time.Duration
	}
	RateLimit struct {
		RequestsPerSecond int
		Burst             int
	}
	Log struct {
		File       string
		MaxSizeMB  int
		MaxBackups int
		MaxAgeDays int
	}
}

func Load() *Config {
	cfg := &Config{}

	// App
	cfg.App.Port = getEnv("PORT", "8080")
	cfg.App.Debug = getEnvAsBool("DEBUG", false)
	cfg.App.FrontendURL = getEnv("FRONTEND_URL", "http://localhost:3000")

	// Horizons
	cfg.Horizons.URL = getEnv("HORIZONS_URL", clients.DefaultHorizonsURL)
	cfg.Horizons.UserAgent = getEnv("HORIZONS_USER_AGENT", "horizons-go/1.0")
	cfg.Horizons.Timeout = getEnvAsDuration("HORIZONS_TIMEOUT", 60*time.Second)
	cfg.Horizons.RequestsPerSecond = getEnvAsFloat("HORIZONS_RPS", 2)
	cfg.Horizons.Burst = getEnvAsInt("HORIZONS_BURST", 2)

	// Query defaults
	cfg.Defaults.Site = getEnv("DEFAULT_SITE", models.DefaultSite)
	cfg.Defaults.WRT = getEnv("DEFAULT_WRT", models.DefaultWRT)
	cfg.Defaults.Units = getEnv("DEFAULT_UNITS", string(models.UnitsKmS))
	cfg.Defaults.TimeFormat = getEnv("DEFAULT_TIME_FORMAT", string(models.TimeTDB))
	cfg.Defaults.RefPlane = getEnv("DEFAULT_REF_PLANE", string(models.RefPlaneEcliptic))

	// Workers
	cfg.Workers.ProbeEnabled = getEnvAsBool("PROBE_ENABLED", true)
	cfg.Workers.ProbeInterval = getEnvAsDuration("WORKER_PROBE_INTERVAL", 300*time.Second)

	// Rate Limit
	cfg.RateLimit.RequestsPerSecond = getEnvAsInt("RATE_LIMIT_RPS", 10)
	cfg.RateLimit.Burst = getEnvAsInt("RATE_LIMIT_BURST", 20)

	// Log
	cfg.Log.File = getEnv("LOG_FILE", "")
	cfg.Log.MaxSizeMB = getEnvAsInt("LOG_MAX_SIZE_MB", 50)
	cfg.Log.MaxBackups = getEnvAsInt("LOG_MAX_BACKUPS", 3)
	cfg.Log.MaxAgeDays = getEnvAsInt("LOG_MAX_AGE_DAYS", 28)

	return cfg
}

// HorizonsClientConfig is the transport section in the shape the client takes.
func (c *Config) HorizonsClientConfig() clients.HorizonsConfig {
	return clients.HorizonsConfig{
		BaseURL:           c.Horizons.URL,
		UserAgent:         c.Horizons.UserAgent,
		Timeout:           c.Horizons.Timeout,
		RequestsPerSecond: c.Horizons.RequestsPerSecond,
		Burst:             c.Horizons.Burst,
	}
}

// QueryDefaults returns the options applied to requests that leave a field
// unset. Values are not validated here; the query builder rejects bad ones.
func (c *Config) QueryDefaults() models.Options {
	opts := models.DefaultOptions()
	opts.Site = c.Defaults.Site
	opts.WRT = models.ParseBody(c.Defaults.WRT)
	opts.Units = models.Units(strings.ToUpper(c.Defaults.Units))
	opts.TimeFormat = models.TimeFormat(strings.ToUpper(c.Defaults.TimeFormat))
	opts.RefPlane = models.RefPlane(strings.ToUpper(c.Defaults.RefPlane))
	return opts
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if dur, err := time.ParseDuration(value); err == nil {
			return dur
		}
	}
	return defaultValue
}
