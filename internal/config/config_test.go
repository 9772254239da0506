package config

import (
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigLoad_Defaults(t *testing.T) {
	for _, k := range []string{"BASE_URL", "TIMEOUT_SECONDS", "TOKEN", "LOG_LEVEL", "DEBUG", "MCP_HTTP_ADDR", "MCP_STDIO", "MCP_SERVER_NAME", "SHUTDOWN_TIMEOUT"} {
		// t.Setenv restores the previous value on cleanup
		t.Setenv(Prefix+"_"+k, "")
		require.NoError(t, os.Unsetenv(Prefix+"_"+k))
	}

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout())
	assert.Equal(t, "polly-mcp-server", cfg.MCPServerName)
	assert.Equal(t, ":8001", cfg.MCPHTTPAddr)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())
	assert.False(t, cfg.MCPStdio)
}

func TestConfigLoad_EnvOverride(t *testing.T) {
	t.Setenv("POLLY_BASE_URL", "https://polls.example.com/api//")
	t.Setenv("POLLY_TIMEOUT_SECONDS", "2.5")
	t.Setenv("POLLY_TOKEN", "jwt")
	t.Setenv("POLLY_LOG_LEVEL", "WARN")
	t.Setenv("POLLY_MCP_STDIO", "true")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "https://polls.example.com/api", cfg.BaseURL)
	assert.Equal(t, 2500*time.Millisecond, cfg.Timeout())
	assert.Equal(t, "jwt", cfg.Token)
	assert.Equal(t, zerolog.WarnLevel, cfg.Level())
	assert.True(t, cfg.MCPStdio)
}

func TestConfigLoad_DebugForcesDebugLevel(t *testing.T) {
	t.Setenv("POLLY_LOG_LEVEL", "error")
	t.Setenv("POLLY_DEBUG", "true")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
}

func TestResolveDefaults_Rejects(t *testing.T) {
	base := func() Config {
		return Config{BaseURL: "http://x", TimeoutSeconds: 1, LogLevel: "info", ShutdownTimeout: time.Second}
	}
	cases := map[string]func(*Config){
		"empty base url": func(c *Config) { c.BaseURL = " / " },
		"zero timeout":   func(c *Config) { c.TimeoutSeconds = 0 },
		"bad level":      func(c *Config) { c.LogLevel = "loud" },
		"no shutdown":    func(c *Config) { c.ShutdownTimeout = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := base()
			mutate(&cfg)
			assert.Error(t, cfg.ResolveDefaults())
		})
	}

	cfg := base()
	require.NoError(t, cfg.ResolveDefaults())
}

func TestConfig_NewClient(t *testing.T) {
	cfg := Config{BaseURL: "http://polly.test", TimeoutSeconds: 3, LogLevel: "info", ShutdownTimeout: time.Second}
	require.NoError(t, cfg.ResolveDefaults())

	c, err := cfg.NewClient(zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "http://polly.test", c.BaseURL())
	assert.Equal(t, 3*time.Second, c.Timeout())
}
