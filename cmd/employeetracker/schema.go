package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func schemaCmd() *cobra.Command {
	var seed bool
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Create the department, role and employee tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchema(cmd, seed)
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", false, "Insert sample data when the tables are empty")
	return cmd
}

func runSchema(cmd *cobra.Command, seed bool) error {
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

	if err := db.EnsureSchema(ctx); err != nil {
		return err
	}
	logger.Info("Schema ensured")
	cmd.Println("Schema is up to date.")

	if !seed {
		return nil
	}
	if err := db.Seed(ctx); err != nil {
		return err
	}
	logger.Info("Sample data seeded", zap.String("config", configPath))
	cmd.Println("Sample data loaded.")
	return nil
}
