package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"employeetracker/internal/config"
)

func initCmd() *cobra.Command {
	var dsn string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter employeetracker.yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(dsn) == "" {
				return fmt.Errorf("--dsn is required")
			}
			return runInit(cmd, dsn)
		},
	}
	cmd.Flags().StringVar(&dsn, "dsn", "sqlite://employees.db", "Database DSN (postgres:// or sqlite://)")
	return cmd
}

func runInit(cmd *cobra.Command, dsn string) error {
	if _, err := config.Driver(dsn); err != nil {
		return err
	}
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists", configPath)
	}

	data, err := config.Render(dsn)
	if err != nil {
		return err
	}
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", configPath, err)
	}
	cmd.Printf("Wrote %s\n", configPath)
	return nil
}
