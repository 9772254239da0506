// Package config loads front-end settings (CLI and MCP server) from the
// environment. The client library itself is configured with options only.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/MauriceNgicho/Polly-API/client"
)

// Prefix is prepended to every variable name, e.g. POLLY_BASE_URL.
const Prefix = "POLLY"

// Config holds the settings shared by pollyCli and the MCP server.
type Config struct {
	// Polly-API endpoint
	BaseURL        string  `envconfig:"BASE_URL" default:"http://localhost:8000"`
	TimeoutSeconds float64 `envconfig:"TIMEOUT_SECONDS" default:"10"`

	// Bearer token used by vote when none is passed explicitly
	Token string `envconfig:"TOKEN" default:""`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Debug    bool   `envconfig:"DEBUG" default:"false"`

	// MCP server
	MCPServerName    string        `envconfig:"MCP_SERVER_NAME" default:"polly-mcp-server"`
	MCPServerVersion string        `envconfig:"MCP_SERVER_VERSION" default:"0.1.0"`
	MCPHTTPAddr      string        `envconfig:"MCP_HTTP_ADDR" default:":8001"`
	MCPStdio         bool          `envconfig:"MCP_STDIO" default:"false"`
	HTTPReadTimeout  time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"5s"`
	HTTPIdleTimeout  time.Duration `envconfig:"HTTP_IDLE_TIMEOUT" default:"120s"`
	ShutdownTimeout  time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	level zerolog.Level
}

// ResolveDefaults normalises BaseURL and validates the remaining fields.
func (c *Config) ResolveDefaults() error {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.BaseURL == "" {
		return fmt.Errorf("%s_BASE_URL must not be empty", Prefix)
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("%s_TIMEOUT_SECONDS must be > 0, got %v", Prefix, c.TimeoutSeconds)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("%s_SHUTDOWN_TIMEOUT must be > 0, got %s", Prefix, c.ShutdownTimeout)
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(c.LogLevel)))
	if err != nil {
		return fmt.Errorf("unsupported %s_LOG_LEVEL %q: %w", Prefix, c.LogLevel, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	c.level = lvl
	return nil
}

// New parses POLLY_* environment variables and validates them.
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("base_url", cfg.BaseURL).
		Float64("timeout_seconds", cfg.TimeoutSeconds).
		Bool("token_present", cfg.Token != "").
		Str("log_level", cfg.level.String()).
		Bool("debug", cfg.Debug).
		Str("mcp_server_name", cfg.MCPServerName).
		Str("mcp_http_addr", cfg.MCPHTTPAddr).
		Msg("Configuration loaded")

	return &cfg, nil
}

// Level returns the parsed log level. Debug forces debug level.
func (c *Config) Level() zerolog.Level {
	if c.Debug {
		return zerolog.DebugLevel
	}
	return c.level
}

// Timeout returns TimeoutSeconds as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds * float64(time.Second))
}

// ClientOptions translates the config into client options.
func (c *Config) ClientOptions(logger zerolog.Logger) []client.Option {
	return []client.Option{
		client.WithBaseURL(c.BaseURL),
		client.WithTimeoutSeconds(c.TimeoutSeconds),
		client.WithDebugLogging(c.Debug),
		client.WithLogger(logger),
	}
}

// NewClient builds a client.Client from the config.
func (c *Config) NewClient(logger zerolog.Logger) (*client.Client, error) {
	return client.New(c.ClientOptions(logger)...)
}
