package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test-defaults")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "LOFAR_galaxies.fits", cfg.Catalogue.URL)
	assert.Equal(t, 2*time.Minute, cfg.Catalogue.FetchTimeout)
	assert.Equal(t, 10.0, cfg.Catalogue.ShortlistMinFlux)
	assert.Equal(t, 50, cfg.Catalogue.ShortlistMax)
	assert.Equal(t, "png", cfg.Plot.Format)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.True(t, cfg.RateLimit.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test-overrides")
	t.Setenv("CATALOGUE_URL", "https://example.com/LOFAR_galaxies.fits")
	t.Setenv("FETCH_TIMEOUT", "30s")
	t.Setenv("PLOT_FORMAT", "SVG")
	t.Setenv("SHORTLIST_MAX", "20")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/LOFAR_galaxies.fits", cfg.Catalogue.URL)
	assert.Equal(t, 30*time.Second, cfg.Catalogue.FetchTimeout)
	assert.Equal(t, "svg", cfg.Plot.Format)
	assert.Equal(t, 20, cfg.Catalogue.ShortlistMax)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "bad format", env: map[string]string{"PLOT_FORMAT": "gif"}},
		{name: "bad size", env: map[string]string{"PLOT_WIDTH_IN": "0"}},
		{name: "bad rate", env: map[string]string{"RATE_LIMIT_RPS": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ENVIRONMENT", "test-invalid")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := load(viper.New())
			assert.Error(t, err)
		})
	}
}
