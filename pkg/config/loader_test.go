package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shophub/shopkit/pkg/config"
)

func TestLoad(t *testing.T) {
	t.Run("defaults point at production", func(t *testing.T) {
		var cfg config.Client
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "https://shophub-production-cad4.up.railway.app/api", cfg.APIBaseURL)
		assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
		assert.Equal(t, "file", cfg.StorageBackend)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("SHOPHUB_API_URL", "http://localhost:5000/api")
		t.Setenv("SHOPHUB_HTTP_TIMEOUT", "5s")
		t.Setenv("SHOPHUB_STORAGE", "memory")

		var cfg config.Client
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "http://localhost:5000/api", cfg.APIBaseURL)
		assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
		assert.Equal(t, "memory", cfg.StorageBackend)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *config.Client
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})

	t.Run("invalid duration", func(t *testing.T) {
		t.Setenv("SHOPHUB_HTTP_TIMEOUT", "not-a-duration")

		var cfg config.Client
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	})
}
