package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elenavoss/advisor/internal/cli/formatter"
	"github.com/elenavoss/advisor/internal/repository"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List archived blueprints, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			bps, err := app.Advisor.History(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("loading history: %w", err)
			}
			fmt.Fprintln(app.out(), formatter.FormatHistory(bps))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "maximum number of blueprints to list")
	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one archived blueprint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bp, err := app.Advisor.Show(cmd.Context(), args[0])
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("no blueprint with id %q", args[0])
			}
			if err != nil {
				return fmt.Errorf("loading blueprint: %w", err)
			}
			fmt.Fprintln(app.out(), formatter.FormatBlueprint(bp))
			return nil
		},
	}
}

func newForgetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "forget <id>",
		Short: "Delete one archived blueprint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.Advisor.Forget(cmd.Context(), args[0])
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("no blueprint with id %q", args[0])
			}
			if err != nil {
				return fmt.Errorf("deleting blueprint: %w", err)
			}
			fmt.Fprintln(app.out(), formatter.Dim("Deleted "+args[0]))
			return nil
		},
	}
}
