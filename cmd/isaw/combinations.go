package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/aretw0/isaw/internal/cli"
)

func newCombinationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "combinations <letters>",
		Aliases: []string{"comb", "c"},
		Short:   "Generate all combinations (order doesn't matter)",
		Long: `Generate every selection of letters where order does not matter.
Each result keeps the letters in the order they were given.
Use --length for a single size, or --min/--max for a range.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := generateOptions(cmd, args[0])
			return runApp(cmd, func(ctx context.Context, app *cli.App) error {
				return app.Combinations(ctx, opts)
			})
		},
	}

	cmd.Flags().IntP("length", "l", 2, "Length of combinations")
	cmd.Flags().IntP("min", "m", 0, "Minimum length (switches to a range)")
	cmd.Flags().IntP("max", "x", 0, "Maximum length (switches to a range)")
	addFilterFlags(cmd)
	return cmd
}
