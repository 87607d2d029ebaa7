package test

import (
	"net/url"
	"testing"
	"time"

	"github.com/acoes-municipais/simulador/internal/config"
	"github.com/acoes-municipais/simulador/internal/controllers"
	"github.com/acoes-municipais/simulador/internal/models"
	"github.com/acoes-municipais/simulador/internal/view"
	"github.com/stretchr/testify/require"
)

// Config returns the configuration used in tests.
func Config() *config.Config {
	apiURL, _ := url.Parse("http://example.com")

	return &config.Config{
		APIURL:       apiURL,
		DataFile:     config.DefaultDataFile,
		AssetDir:     config.DefaultAssetDir,
		DSN:          config.DefaultDSN,
		SessionTTL:   time.Hour,
		PortfolioURL: "https://example.com/portfolio",
	}
}

// Controller returns a controller with an empty in-memory store and the
// default reference data. The store is closed when the test ends.
func Controller(t *testing.T) controllers.Controller {
	cfg := Config()

	store, err := models.Connect(cfg.DSN)
	require.Nil(t, err, "Database initialization failed")
	t.Cleanup(func() {
		_ = store.Close()
	})

	return controllers.Controller{
		Store:    store,
		Data:     ReferenceData(t),
		Config:   cfg,
		Branding: view.Branding{},
	}
}
