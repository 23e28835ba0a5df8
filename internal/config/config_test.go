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

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("port", "3000", "")
	flags.String("app-env", "development", "")
	flags.String("allowed-origins", "*", "")
	flags.String("log-level", "info", "")
	flags.Bool("simulate-latency", true, "")
	flags.Duration("shutdown-timeout", 10*time.Second, "")
	return flags
}

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil, missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, "public", cfg.StaticDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.SimulateLatency)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "0.0.0.0:3000", cfg.Addr())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("APP_ENV", "production")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")
	t.Setenv("SIMULATE_LATENCY", "false")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load(nil, missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
	assert.False(t, cfg.SimulateLatency)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_FlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("LOG_LEVEL", "warn")

	flags := testFlags()
	require.NoError(t, flags.Parse([]string{"--port=9090", "--simulate-latency=false"}))

	cfg, err := Load(flags, missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.SimulateLatency)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("STATIC_DIR=/srv/www\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("STATIC_DIR") })

	cfg, err := Load(nil, path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/www", cfg.StaticDir)
}

func TestLoad_RejectsOriginWithoutScheme(t *testing.T) {
	for _, origins := range []string{"example.com", "https://ok.example.com,example.com", "ftp://files.example.com"} {
		t.Setenv("ALLOWED_ORIGINS", origins)

		_, err := Load(nil, missingEnvFile(t))
		require.Error(t, err, "origins %q", origins)
		assert.Contains(t, err.Error(), "invalid allowed origin")
	}
}

func TestLoad_AcceptsSchemedOrigins(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "*,http://localhost:5173,https://app.example.com")

	cfg, err := Load(nil, missingEnvFile(t))
	require.NoError(t, err)
	assert.Len(t, cfg.AllowedOrigins, 3)
}

func TestLoad_EmptyPort(t *testing.T) {
	flags := testFlags()
	require.NoError(t, flags.Parse([]string{"--port="}))

	_, err := Load(flags, missingEnvFile(t))
	assert.Error(t, err)
}
