package mcp

import (
	"testing"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/MauriceNgicho/Polly-API/internal/config"
)

func newTestServer(t *testing.T, baseURL string) *server.MCPServer {
	t.Helper()
	cfg := &config.Config{
		BaseURL:          baseURL,
		TimeoutSeconds:   5,
		LogLevel:         "info",
		MCPServerName:    "polly-test",
		MCPServerVersion: "0.0.1",
		ShutdownTimeout:  1,
	}
	if err := cfg.ResolveDefaults(); err != nil {
		t.Fatalf("config: %v", err)
	}
	c, err := cfg.NewClient(zerolog.Nop())
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	s, err := NewServer(cfg, c)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return s
}

func TestNewServer_RegistersTools(t *testing.T) {
	s := newTestServer(t, "http://polly.test")
	if s == nil {
		t.Fatal("nil server")
	}
}

func TestShouldUseStdio_Forced(t *testing.T) {
	if !shouldUseStdio(&config.Config{MCPStdio: true}) {
		t.Fatal("POLLY_MCP_STDIO=true must force stdio")
	}
}
