// Package mcp exposes the Polly-API client as a Model Context Protocol tool
// server.
package mcp

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/MauriceNgicho/Polly-API/client"
	"github.com/MauriceNgicho/Polly-API/internal/config"
	"github.com/MauriceNgicho/Polly-API/internal/logger"
	"github.com/MauriceNgicho/Polly-API/mcp/internal/handlers"
)

type toolRegisterer interface {
	RegisterTools(s *server.MCPServer) error
}

// NewServer builds an MCP server with every Polly tool and guide registered.
func NewServer(cfg *config.Config, c *client.Client) (*server.MCPServer, error) {
	s := server.NewMCPServer(
		cfg.MCPServerName,
		cfg.MCPServerVersion,
		server.WithToolCapabilities(true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
	)

	for _, h := range []struct {
		name    string
		handler toolRegisterer
	}{
		{"user", handlers.NewUserHandler(c)},
		{"poll", handlers.NewPollHandler(c)},
		{"vote", handlers.NewVoteHandler(c, cfg.Token)},
		{"prompts", handlers.NewPromptsHandler()},
	} {
		if err := h.handler.RegisterTools(s); err != nil {
			return nil, fmt.Errorf("register %s tools: %w", h.name, err)
		}
	}
	return s, nil
}

// RunMCPServer loads POLLY_* configuration and serves until the transport
// closes or SIGINT/SIGTERM arrives.
func RunMCPServer() error {
	config.LoadEnvFile(os.Getenv(config.Prefix + "_ENV_FILE"))
	cfg, err := config.New()
	if err != nil {
		return err
	}

	zerolog.SetGlobalLevel(cfg.Level())
	log.Logger = logger.New(cfg.MCPServerName).With().Caller().Logger()

	log.Info().Str("base_url", cfg.BaseURL).Msg("Creating Polly client")
	pollyClient, err := cfg.NewClient(log.Logger)
	if err != nil {
		log.Error().Stack().Err(err).Msg("Failed to create client")
		return err
	}

	s, err := NewServer(cfg, pollyClient)
	if err != nil {
		log.Error().Stack().Err(err).Msg("Failed to build MCP server")
		return err
	}

	if shouldUseStdio(cfg) {
		// Stdio transport (for desktop hosts, launched processes)
		log.Info().Msg("Starting Polly MCP server (stdio transport)")
		return server.ServeStdio(s)
	}
	return serveHTTP(cfg, s)
}

func serveHTTP(cfg *config.Config, s *server.MCPServer) error {
	log.Info().Str("addr", cfg.MCPHTTPAddr).Msg("Starting Polly MCP server (Streamable HTTP)")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	streamSrv := server.NewStreamableHTTPServer(
		s,
		server.WithEndpointPath("/mcp"),
		server.WithHeartbeatInterval(30*time.Second),
	)

	srv := &http.Server{
		Addr:         cfg.MCPHTTPAddr,
		Handler:      streamSrv,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: 0, // SSE streams have no deadline
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	shutdownComplete := make(chan struct{})
	go func() {
		defer close(shutdownComplete)

		sig := <-sigChan
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Error during HTTP server shutdown")
		}
		if err := streamSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Error during MCP server shutdown")
		}
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}

	<-shutdownComplete
	log.Info().Msg("MCP server shutdown complete")
	return nil
}

// shouldUseStdio picks stdio when forced by POLLY_MCP_STDIO or when stdin is
// not a terminal (the server was launched by a host process).
func shouldUseStdio(cfg *config.Config) bool {
	if cfg.MCPStdio {
		return true
	}
	if fileInfo, err := os.Stdin.Stat(); err == nil {
		return (fileInfo.Mode() & os.ModeCharDevice) == 0
	}
	return false
}
