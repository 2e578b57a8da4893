//go:build unit
// +build unit

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
	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeRestConfig(t *testing.T) {
	path := writeConfig(t, `
port: "9090"
logger:
  log_level: debug
  log_type: console
database:
  type: sqlite
  dsn: ":memory:"
rsa:
  workers: 4
`)

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, LogLevelDebug, cfg.Logger.LogLevel)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.Equal(t, ":memory:", cfg.Database.DSN)
	assert.Equal(t, 4, cfg.RSA.Workers)
	assert.Equal(t, DefaultEncryptedImageDir, cfg.RSA.EncryptedImageDir)
}

func TestInitializeRestConfig_Defaults(t *testing.T) {
	cfg, err := InitializeRestConfig(writeConfig(t, "port: \"8081\"\n"))
	require.NoError(t, err)

	assert.Equal(t, LogTypeConsole, cfg.Logger.LogType)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.Equal(t, DefaultUploadDir, cfg.RSA.UploadDir)
}

func TestInitializeRestConfig_Invalid(t *testing.T) {
	_, err := InitializeRestConfig(writeConfig(t, "port: \"8081\"\nlogger:\n  log_level: loud\n"))
	assert.Error(t, err)

	_, err = InitializeRestConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
