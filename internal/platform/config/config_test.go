package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, "petshop-registry", cfg.AppName)
	assert.False(t, cfg.RequireUsername)
	assert.Empty(t, cfg.DBDSN)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("PORT", ":9090")
	t.Setenv("REQUIRE_USERNAME", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, https://petshop.example")
	t.Setenv("WRITE_TIMEOUT", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.RequireUsername)
	assert.Equal(t, []string{"http://localhost:5173", "https://petshop.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 30*time.Second, cfg.WriteTimeout)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
PORT: "4000"
LOG_FORMAT: json
REQUIRE_USERNAME: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("CONFIG_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.True(t, cfg.RequireUsername)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_RejectsZeroTimeout(t *testing.T) {
	t.Setenv("READ_TIMEOUT", "0s")

	_, err := Load()
	require.Error(t, err)
}
