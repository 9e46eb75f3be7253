package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/aretw0/isaw/internal/cli"
)

func newPermutationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "permutations <letters>",
		Aliases: []string{"perm", "p"},
		Short:   "Generate all permutations of the given letters",
		Example: `  isaw permutations abc
  isaw permutations abcdef -m 3 -x 4 -s ab -i`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := generateOptions(cmd, args[0])
			return runApp(cmd, func(ctx context.Context, app *cli.App) error {
				return app.Permutations(ctx, opts)
			})
		},
	}

	cmd.Flags().IntP("min", "m", 1, "Minimum length")
	cmd.Flags().IntP("max", "x", 0, "Maximum length (defaults to the letter count)")
	cmd.Flags().IntP("length", "l", 0, "Only show results of exactly this length")
	addFilterFlags(cmd)
	return cmd
}
