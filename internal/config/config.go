package config

import (
	"time"

	"github.com/spf13/viper"

	"github.com/lepinkainen/cardscout/internal/errors"
)

// PlaceholderAPIKey is the documented dummy value shipped in the example
// config. Leaving it in place is a configuration error.
const PlaceholderAPIKey = "Y0URXXXXAP1XXXXXK3YXXXXXH3R3XXXX"

// Config holds the per-session settings for the analyzer. It is built once
// at startup and passed into the orchestrator, never mutated afterwards.
type Config struct {
	// APIKey is the Steam Web API key used for all remote calls
	APIKey string
	// CatalogCacheFile is the local file holding the raw card catalog response
	CatalogCacheFile string
	// LongPlaytimeHours is the threshold above which playtime counts as long
	LongPlaytimeHours int
	// PaceInterval is the mandatory pause between per-game lookups
	PaceInterval time.Duration
	// CatalogTimeout bounds the card catalog fetch
	CatalogTimeout time.Duration
	// LookupTimeout bounds each badge/achievement lookup
	LookupTimeout time.Duration
}

// SetDefaults registers the config defaults with viper.
func SetDefaults() {
	viper.SetDefault("steam.apikey", "")
	viper.SetDefault("catalog.cachefile", "request.php.json")
	viper.SetDefault("report.longplaytimehours", 10)
	viper.SetDefault("pace.interval", "1s")
	viper.SetDefault("timeout.catalog", "15s")
	viper.SetDefault("timeout.lookup", "5s")
}

// Load builds a Config from the current viper state and validates it.
// A missing or placeholder API key is fatal to the session.
func Load() (*Config, error) {
	cfg := &Config{
		APIKey:            viper.GetString("steam.apikey"),
		CatalogCacheFile:  viper.GetString("catalog.cachefile"),
		LongPlaytimeHours: viper.GetInt("report.longplaytimehours"),
		PaceInterval:      getDuration("pace.interval", time.Second),
		CatalogTimeout:    getDuration("timeout.catalog", 15*time.Second),
		LookupTimeout:     getDuration("timeout.lookup", 5*time.Second),
	}

	if cfg.APIKey == "" || cfg.APIKey == PlaceholderAPIKey {
		return nil, errors.NewConfigError("steam API key is not set - get one from https://steamcommunity.com/dev/apikey and set steam.apikey in config or the STEAM_API_KEY environment variable")
	}

	if cfg.LongPlaytimeHours <= 0 {
		cfg.LongPlaytimeHours = 10
	}

	return cfg, nil
}

func getDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(viper.GetString(key))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
