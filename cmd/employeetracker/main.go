package main

import (
	"os"

	"github.com/spf13/cobra"

	"employeetracker/internal/config"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:          "employeetracker",
		Short:        "Interactive menu for departments, roles and employees",
		SilenceUsage: true,
		RunE:         runSession,
	}
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")
	root.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Path to the project config")
	root.AddCommand(runCmd())
	root.AddCommand(actionCmd())
	root.AddCommand(initCmd())
	root.AddCommand(schemaCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(versionCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
