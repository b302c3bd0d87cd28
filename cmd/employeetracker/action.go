package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"employeetracker/internal/action"
	"employeetracker/internal/prompt"
	"employeetracker/internal/render"
	"employeetracker/internal/session"
)

func actionCmd() *cobra.Command {
	var answerPairs []string
	cmd := &cobra.Command{
		Use:   "action <name>",
		Short: "Run a single menu action without prompting",
		Long:  "Run a single menu action, e.g. `action \"Add Department\" --answer name=Engineering`.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			answers, err := parseAnswerPairs(answerPairs)
			if err != nil {
				return err
			}
			return runAction(cmd, name, answers)
		},
	}
	cmd.Flags().StringArrayVar(&answerPairs, "answer", nil, "Answer as field=value (repeatable)")
	return cmd
}

func runAction(cmd *cobra.Command, name string, answers map[string]string) error {
	ctx := context.Background()

	set := action.Default()
	a, ok := set.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown action %q (choose one of: %s)", name, strings.Join(set.Menu()[:len(set.Menu())-1], ", "))
	}

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

	controller := session.New(db,
		prompt.NewScript(answers),
		render.NewConsole(cmd.OutOrStdout()),
		session.WithActions(set),
		session.WithLogger(logger),
	)
	return controller.Perform(ctx, a)
}

func parseAnswerPairs(pairs []string) (map[string]string, error) {
	answers := make(map[string]string)
	for _, pair := range pairs {
		if pair == "" {
			continue
		}
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid answer %q: expected field=value", pair)
		}
		key := strings.TrimSpace(parts[0])
		if key == "" {
			return nil, fmt.Errorf("invalid answer %q: empty field", pair)
		}
		answers[key] = strings.TrimSpace(parts[1])
	}
	return answers, nil
}
