package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Setenv("MYSQL_DSN", "")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.WebhookTimeout)
	assert.Equal(t, time.Minute, cfg.HTTP.RateLimit.Window)
	assert.Equal(t, "America/Sao_Paulo", cfg.Reports.TimeZone)
	assert.Equal(t, 5, cfg.Reports.TopProducts)
	assert.True(t, cfg.Reenrich.Enabled)
	assert.Equal(t, time.Hour, cfg.Reenrich.WorkerInterval)
	assert.Equal(t, "https://api.mercadolibre.com", cfg.Marketplace.BaseURL)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	viper.Reset()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[mysql]
dsn = "file-dsn"

[http]
port = "9000"
allowed_origins = ["https://panel.example.com"]

[reports]
time_zone = "UTC"
group_by = "sku"
`), 0o600))

	t.Setenv("MYSQL_DSN", "env-dsn")
	t.Setenv("MARKETPLACE_CLIENT_ID", "app-1")
	t.Setenv("REENRICH_WORKER_INTERVAL", "15m")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "env-dsn", cfg.DB.DSN)
	assert.Equal(t, "9000", cfg.HTTP.Port)
	assert.Equal(t, []string{"https://panel.example.com"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, "UTC", cfg.Reports.TimeZone)
	assert.Equal(t, "sku", cfg.Reports.GroupBy)
	assert.Equal(t, "app-1", cfg.Marketplace.ClientID)
	assert.Equal(t, 15*time.Minute, cfg.Reenrich.WorkerInterval)
}

func TestLoadConfigBuildsDSN(t *testing.T) {
	viper.Reset()
	t.Setenv("MYSQL_DSN", "")
	t.Setenv("MYSQL_HOST", "db")
	t.Setenv("MYSQL_USER", "sales")
	t.Setenv("MYSQL_PASSWORD", "pw")
	t.Setenv("MYSQL_DATABASE", "panel")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, "sales:pw@tcp(db:3306)/panel?charset=utf8mb4&parseTime=true", cfg.DB.DSN)
}
