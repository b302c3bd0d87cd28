package main

import (
	"context"

	"github.com/spf13/cobra"

	"employeetracker/internal/action"
	"employeetracker/internal/mcp"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Expose the menu actions as MCP tools over stdio",
		RunE:  runServe,
	}
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, logger, err := loadConfigAndLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	db, err := openDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Release(ctx)

	server := mcp.NewServer(action.Default(), db, version, logger)
	return server.Run(ctx, &sdk.StdioTransport{})
}
