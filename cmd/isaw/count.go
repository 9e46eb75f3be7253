package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/aretw0/isaw/internal/cli"
)

func newCountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count <letters>",
		Short: "Count total arrangements without generating them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			minLen, _ := cmd.Flags().GetInt("min")
			maxLen, _ := cmd.Flags().GetInt("max")
			combinations, _ := cmd.Flags().GetBool("combinations")

			opts := cli.CountOptions{
				Letters:      args[0],
				Min:          minLen,
				Max:          maxLen,
				Combinations: combinations,
			}
			return runApp(cmd, func(_ context.Context, app *cli.App) error {
				return app.Count(opts)
			})
		},
	}

	cmd.Flags().IntP("min", "m", 1, "Minimum length")
	cmd.Flags().IntP("max", "x", 0, "Maximum length (defaults to the letter count)")
	cmd.Flags().BoolP("combinations", "c", false, "Count combinations instead of permutations")
	return cmd
}
