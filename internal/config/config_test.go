package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoad_DefaultsWithEnvSigningKey(t *testing.T) {
	t.Setenv("RECIPES_AUTH_SIGNING_KEY", "env-secret")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, "recipes.db", cfg.DB.Path)
	assert.Equal(t, "env-secret", cfg.Auth.SigningKey)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `
port: "9090"
log:
  level: debug
db:
  driver: mongo
  mongo_uri: mongodb://db:27017
  mongo_database: cookbook
auth:
  signing_key: file-secret
  token_ttl: 30m
`)
	cfg, err := Load(newFlags(t, "--config", path))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, DriverMongo, cfg.DB.Driver)
	assert.Equal(t, "mongodb://db:27017", cfg.DB.MongoURI)
	assert.Equal(t, "cookbook", cfg.DB.MongoDatabase)
	assert.Equal(t, "file-secret", cfg.Auth.SigningKey)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
}

func TestLoad_Precedence(t *testing.T) {
	path := writeConfig(t, `
port: "9090"
auth:
  signing_key: file-secret
`)
	t.Setenv("RECIPES_PORT", "7070")
	t.Setenv("RECIPES_AUTH_TOKEN_TTL", "5m")

	cfg, err := Load(newFlags(t, "--config", path))
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port, "env overrides file")
	assert.Equal(t, 5*time.Minute, cfg.Auth.TokenTTL)

	cfg, err = Load(newFlags(t, "--config", path, "--port", "6060", "--log-level", "warn"))
	require.NoError(t, err)
	assert.Equal(t, "6060", cfg.Port, "flag overrides env")
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_MissingSigningKey(t *testing.T) {
	_, err := Load(nil)
	assert.ErrorIs(t, err, ErrMissingSigningKey)
}

func TestLoad_UnknownDriver(t *testing.T) {
	t.Setenv("RECIPES_AUTH_SIGNING_KEY", "k")

	_, err := Load(newFlags(t, "--db-driver", "postgres"))
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	_, err := Load(newFlags(t, "--config", filepath.Join(t.TempDir(), "nope.yml")))
	assert.Error(t, err)
}
