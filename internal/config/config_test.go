package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	require.Equal(t, ":8080", cfg.HTTPAddress)
	require.Equal(t, "web/static", cfg.StaticDir)
	require.Empty(t, cfg.CatalogPath)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", ":9090")
	t.Setenv("CATALOG_PATH", "/etc/signup/catalog.yaml")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")

	cfg := Load()

	require.Equal(t, ":9090", cfg.HTTPAddress)
	require.Equal(t, "/etc/signup/catalog.yaml", cfg.CatalogPath)
	require.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
}

func TestLoadIgnoresInvalidDuration(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	cfg := Load()
	require.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
}
