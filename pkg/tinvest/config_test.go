package tinvest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironmentEndpoint(t *testing.T) {
	assert.Equal(t, "invest-public-api.tinkoff.ru:443", Production.Endpoint())
	assert.Equal(t, "sandbox-invest-public-api.tinkoff.ru:443", Sandbox.Endpoint())
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("token: t-secret\napp_name: me.bot\nenvironment: sandbox\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "t-secret", cfg.Token)
	assert.Equal(t, "me.bot", cfg.AppName)
	assert.Equal(t, Sandbox, cfg.Environment)
	assert.Equal(t, SandboxEndpoint, cfg.target())
}

func TestLoadConfig_DefaultsToProduction(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("token: t-secret\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Production, cfg.Environment)
	assert.Equal(t, ProductionEndpoint, cfg.target())
	assert.Equal(t, DefaultAppName, cfg.appName())
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("token: t\nenvironment: staging\n"), 0o600))
	_, err = LoadConfig(path)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("app_name: me.bot\n"), 0o600))
	_, err = LoadConfig(path)
	assert.Error(t, err, "missing token must fail")
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(EnvToken, "t-env-token")
	t.Setenv(EnvAppName, "me.env-bot")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "t-env-token", cfg.Token)
	assert.Equal(t, "me.env-bot", cfg.AppName)
}

func TestConfigFromEnv_MissingToken(t *testing.T) {
	t.Setenv(EnvToken, "")
	_, err := ConfigFromEnv()
	assert.Error(t, err)
}

func TestConfigEndpointOverride(t *testing.T) {
	cfg := Config{Token: "t", Endpoint: "localhost:50051"}
	assert.Equal(t, "localhost:50051", cfg.target())
}
