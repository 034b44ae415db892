package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "vanta/internal/adapters/mcp"
	"vanta/internal/config"
	"vanta/internal/session"
)

func main() {
	configFlag := flag.String("config", "", "path to the config file")
	flag.Parse()

	if err := run(*configFlag); err != nil {
		fmt.Fprintf(os.Stderr, "vanta-mcp: %v\n", err)
		os.Exit(1)
	}
}

// run returns instead of exiting so deferred closes always happen
func run(configPath string) error {
	cfg, err := config.Resolve(configPath)
	if err != nil {
		return err
	}

	// stdout carries the protocol; logs go to stderr unless a file is set
	var logger = config.NewLogger(os.Stderr, cfg.Level())
	if cfg.Log.File != "" {
		w, closer, err := cfg.OpenLogFile()
		if err != nil {
			return err
		}
		defer closer.Close()
		logger = config.NewLogger(w, cfg.Level())
	}

	sess := mcpadapter.NewSession(session.New(cfg, logger), logger.WithPrefix("mcp"))

	mcpServer := server.NewMCPServer(
		"vanta-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, sess)
	mcpadapter.RegisterWriteTools(mcpServer, sess)

	logger.Info("serving on stdio")
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Error("serve failed", "err", err)
		return err
	}
	return nil
}
