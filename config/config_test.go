package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PORTAL_MANAGER_CONFIG", "")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", c.Server.Port)
	assert.Equal(t, 12*time.Hour, c.Server.SessionTTL)
	assert.Equal(t, DatabaseModePostgres, c.Database.Mode)
	assert.Equal(t, "5432", c.Database.Port)
	assert.Equal(t, DefaultAdminPassword, c.Admin.Password)
	assert.Equal(t, "local", c.Storage.Mode)
	assert.True(t, c.Storage.S3.UseSSL)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := writeConfig(t, `
[server]
port = "8080"
session_ttl = "30m"
trusted_origins = ["admin.example.com"]

[database]
mode = "memory"
seed = true

[admin]
email = "ops@example.com"
password_hash = "$2a$10$abcdefghijklmnopqrstuv"

[storage]
mode = "s3"

[storage.s3]
bucket = "logos"
`)
	t.Setenv("PORTAL_MANAGER_CONFIG", path)
	t.Setenv("PORTAL_MANAGER_SERVER_PORT", "9090")
	t.Setenv("PORTAL_MANAGER_STORAGE_S3_REGION", "eu-central-1")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", c.Server.Port)
	assert.Equal(t, 30*time.Minute, c.Server.SessionTTL)
	assert.Equal(t, []string{"admin.example.com"}, c.Server.TrustedOrigins)
	assert.Equal(t, DatabaseModeMemory, c.Database.Mode)
	assert.True(t, c.Database.Seed)
	assert.Equal(t, "ops@example.com", c.Admin.Email)

	u := c.Storage.Upload()
	assert.Equal(t, "s3", u.Mode)
	assert.Equal(t, "logos", u.S3.BucketName)
	assert.Equal(t, "eu-central-1", u.S3.Region)
}

func TestLoadInvalid(t *testing.T) {
	t.Run("Unknown database mode", func(t *testing.T) {
		t.Setenv("PORTAL_MANAGER_CONFIG", writeConfig(t, "[database]\nmode = \"sqlite\"\n"))
		_, err := Load()
		assert.ErrorContains(t, err, "database.mode")
	})

	t.Run("Malformed file", func(t *testing.T) {
		t.Setenv("PORTAL_MANAGER_CONFIG", writeConfig(t, "[database\n"))
		_, err := Load()
		assert.ErrorContains(t, err, "read config")
	})

	t.Run("Missing file is ignored", func(t *testing.T) {
		t.Setenv("PORTAL_MANAGER_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
		_, err := Load()
		assert.NoError(t, err)
	})
}

func TestConnection(t *testing.T) {
	c := DatabaseConfig{Host: "db", Port: "5433", Name: "portal", User: "u", Password: "p", SSLMode: "require", Schema: "admin"}
	conn := c.Connection()
	assert.Equal(t, "db", conn.Host)
	assert.Equal(t, "portal", conn.Database)
	assert.Equal(t, "u", conn.Username)
	assert.Equal(t, "admin", conn.Schema)
}
