package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "$", cfg.Display.CurrencySymbol)
	assert.Equal(t, "2006-01-02", cfg.Display.DateFormat)
	assert.Empty(t, cfg.Seed.Path)
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Display.CurrencySymbol = "Bs"
	cfg.Display.DateFormat = "02/01/2006"
	cfg.Seed.Path = "/tmp/seed.yaml"

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	partial := []byte("display:\n  currency_symbol: \"€\"\n")
	require.NoError(t, os.WriteFile(path, partial, 0644))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "€", loaded.Display.CurrencySymbol)
	assert.Equal(t, "2006-01-02", loaded.Display.DateFormat, "unset keys keep their defaults")
}
