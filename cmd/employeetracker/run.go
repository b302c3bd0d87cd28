package main

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"employeetracker/internal/render"
	"employeetracker/internal/session"
	"employeetracker/internal/tui"
)

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the interactive menu (default)",
		Args:  cobra.NoArgs,
		RunE:  runSession,
	}
}

func runSession(cmd *cobra.Command, args []string) error {
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

	logger.Info("Session started", zap.String("config", configPath))
	controller := session.New(db,
		tui.NewPrompter(os.Stdin, os.Stdout),
		render.NewConsole(os.Stdout),
		session.WithLogger(logger),
	)
	err = controller.Run(ctx)
	if errors.Is(err, tui.ErrAborted) {
		logger.Info("Session aborted by operator")
		return nil
	}
	return err
}
