// Package config reads the configuration of the simulator from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Defaults for unset variables.
const (
	DefaultAPIURL       = "http://localhost:8080"
	DefaultDataFile     = "dados_simulador.xlsx"
	DefaultAssetDir     = "."
	DefaultDSN          = "file::memory:"
	DefaultSessionTTL   = 12 * time.Hour
	DefaultPortfolioURL = "https://sebraepr.sharepoint.com/:f:/s/pr_uan/IgBb_9qODkNhR4N6uGmaTzWAAZAcx99HqjJITLFLMeAZYpQ"
)

var (
	ErrInvalidURL = errors.New("API_URL must be an absolute URL")
	ErrInvalidTTL = errors.New("SIMULATOR_SESSION_TTL must be a positive duration")
)

// Config is the configuration of the simulator.
type Config struct {
	APIURL           *url.URL      // External URL of the simulator, used for links
	DataFile         string        // Reference spreadsheet
	AssetDir         string        // Directory containing the logos
	DSN              string        // Data source name of the session store
	SessionTTL       time.Duration // Sessions unused for longer are deleted
	PortfolioURL     string
	CORSAllowOrigins []string
	EnablePprof      bool
	EnableMetrics    bool
}

// LoadDotEnv loads variables from a .env file into the environment if it
// exists. Variables that are already set are not overwritten.
func LoadDotEnv(path string) {
	err := godotenv.Load(path)
	if err != nil {
		log.Debug().Str("path", path).Msg("no .env file loaded, using the environment only")
		return
	}

	log.Debug().Str("path", path).Msg("loaded .env file")
}

func get(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	return value
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	apiURL, err := url.Parse(get("API_URL", DefaultAPIURL))
	if err != nil || !apiURL.IsAbs() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidURL, os.Getenv("API_URL"))
	}

	ttl := DefaultSessionTTL
	if value, ok := os.LookupEnv("SIMULATOR_SESSION_TTL"); ok && value != "" {
		ttl, err = time.ParseDuration(value)
		if err != nil || ttl <= 0 {
			return nil, fmt.Errorf("%w: %s", ErrInvalidTTL, value)
		}
	}

	return &Config{
		APIURL:           apiURL,
		DataFile:         get("SIMULATOR_DATA_FILE", DefaultDataFile),
		AssetDir:         get("SIMULATOR_ASSET_DIR", DefaultAssetDir),
		DSN:              get("SIMULATOR_DB_DSN", DefaultDSN),
		SessionTTL:       ttl,
		PortfolioURL:     get("SIMULATOR_PORTFOLIO_URL", DefaultPortfolioURL),
		CORSAllowOrigins: strings.Fields(os.Getenv("CORS_ALLOW_ORIGINS")),
		EnablePprof:      os.Getenv("ENABLE_PPROF") == "true",
		EnableMetrics:    os.Getenv("ENABLE_METRICS") == "true",
	}, nil
}
