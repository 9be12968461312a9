package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "posture-atlas.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
addr: 0.0.0.0:9090
mock: true
database_url: postgres://localhost:5432/atlas
clients_path: /etc/atlas/clients.ini
archive:
  endpoint: minio.internal:9000
  access_key: atlas
  secret_key: secret
  bucket: posture-reports
  use_ssl: true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.Addr)
	assert.True(t, cfg.Mock)
	assert.Equal(t, "postgres://localhost:5432/atlas", cfg.DatabaseURL)
	assert.Equal(t, "/etc/atlas/clients.ini", cfg.ClientsPath)
	assert.Equal(t, "minio.internal:9000", cfg.Archive.Endpoint)
	assert.Equal(t, "posture-reports", cfg.Archive.Bucket)
	assert.True(t, cfg.Archive.UseSSL)
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, `mock: false`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Addr)
	assert.Equal(t, "clients.ini", cfg.ClientsPath)
	assert.False(t, cfg.Mock)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Empty(t, cfg.Archive.Endpoint)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}
