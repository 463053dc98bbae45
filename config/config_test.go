package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir moves into an empty directory so no config.yaml or .env is picked up.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.HTTPServer.Host)
	assert.Equal(t, 8005, cfg.HTTPServer.Port)
	assert.Equal(t, 30*time.Second, cfg.MCP.CallTimeout)
	assert.Equal(t, DefaultHealthMCPURL, cfg.MCP.Health.URL)
	assert.Equal(t, DefaultProductivityMCPURL, cfg.MCP.Productivity.URL)
	assert.Equal(t, DefaultCognitiveMCPURL, cfg.MCP.Cognitive.URL)
	assert.Equal(t, "Local", cfg.Timezone)
	assert.Equal(t, time.Hour, cfg.MCPServer.SessionTTL)
	assert.False(t, cfg.RateLimit.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t)
	t.Setenv("HEALTH_MCP_URL", "http://health.local/mcp")
	t.Setenv("MCP_CALL_TIMEOUT", "5s")
	t.Setenv("HTTP_SERVER_PORT", "9000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://health.local/mcp", cfg.MCP.Health.URL)
	assert.Equal(t, 5*time.Second, cfg.MCP.CallTimeout)
	assert.Equal(t, 9000, cfg.HTTPServer.Port)
}

func TestLoad_ConfigFileAndDotEnv(t *testing.T) {
	dir := chdir(t)
	t.Setenv("COGNITIVE_MCP_URL", "")

	yaml := `
mcp:
  call_timeout: 2s
  cognitive:
    url: ${COGNITIVE_FROM_DOTENV}
rate_limit:
  enabled: true
  per_min: 30
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("COGNITIVE_FROM_DOTENV=http://cognitive.local/mcp\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("COGNITIVE_FROM_DOTENV") })

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.MCP.CallTimeout)
	assert.Equal(t, "http://cognitive.local/mcp", cfg.MCP.Cognitive.URL)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 30, cfg.RateLimit.PerMin)
}

func TestLoad_Invalid(t *testing.T) {
	tcs := map[string]map[string]string{
		"non positive timeout": {"MCP_CALL_TIMEOUT": "0s"},
		"bad port":             {"HTTP_SERVER_PORT": "70000"},
		"rate limit zero":      {"RATE_LIMIT_ENABLED": "true", "RATE_LIMIT_PER_MIN": "0"},
		"unknown timezone":     {"TIMEZONE": "Asia/Hanoii"},
	}

	for name, env := range tcs {
		t.Run(name, func(t *testing.T) {
			chdir(t)
			for k, v := range env {
				t.Setenv(k, v)
			}

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_Timezone(t *testing.T) {
	chdir(t)
	t.Setenv("TIMEZONE", "Asia/Ho_Chi_Minh")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Ho_Chi_Minh", cfg.Timezone)

	t.Setenv("TIMEZONE", "Mars/Olympus")
	_, err = Load()
	assert.ErrorContains(t, err, "timezone")
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("SOME_URL", "http://x")

	assert.Equal(t, "http://x", expandEnvVar("${SOME_URL}"))
	assert.Equal(t, "", expandEnvVar("${MISSING_URL_FOR_TEST}"))
	assert.Equal(t, "plain", expandEnvVar("plain"))
}
