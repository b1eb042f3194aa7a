package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dwain-barnes/uk-ons-mcp-server/client/ons"
	"github.com/dwain-barnes/uk-ons-mcp-server/internal/config"
	"github.com/dwain-barnes/uk-ons-mcp-server/internal/datasets"
	"github.com/dwain-barnes/uk-ons-mcp-server/internal/tools"
	"github.com/dwain-barnes/uk-ons-mcp-server/internal/transport"
)

func main() {
	cfg, err := config.Get()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// ONS API flags
	flag.StringVar(&cfg.APIURL, "url", cfg.APIURL, "ONS API URL")
	flag.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "ONS API request timeout")

	// MCP server flags
	flag.StringVar(&cfg.HTTPAddr, "http", cfg.HTTPAddr, "address for http transport, defaults to stdio")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug/info/warn/error)")
	flag.Parse()

	// stdout carries the stdio transport, so logs go to stderr.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()})))
	slog.Debug("Configuration loaded", "config", cfg.String())

	client, err := ons.NewClient(cfg.ClientConfig())
	if err != nil {
		slog.Error("Failed to create ONS client", "error", err)
		os.Exit(1)
	}
	service := datasets.NewService(client)

	mcpServer := mcp.NewServer(&mcp.Implementation{Name: "uk-ons-mcp-server", Version: "v1.0.0"}, nil)
	tools.Register(mcpServer, service)
	tools.RegisterResources(mcpServer, client.BaseURL())

	if cfg.HTTPAddr == "" {
		// Run the server on the stdio transport.
		if err := mcpServer.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
			slog.Error("Server failed", "error", err)
		}
	} else {
		handler := transport.NewHandler(mcpServer, service)

		// Run the server on the HTTP transport.
		slog.Info("Server listening", "address", cfg.HTTPAddr, "mcp", transport.MCPPath, "health", transport.HealthPath)
		if err := http.ListenAndServe(cfg.HTTPAddr, handler); err != nil {
			slog.Error("Server failed", "error", err)
		}
	}
}
