package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/aretw0/isaw/internal/cli"
)

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <pattern>",
		Short: "Search through every letter sequence of a given length",
		Long: `Enumerate every sequence of --length letters (repetition allowed) over the alphabet
and print those matching the pattern. The alphabet defaults to a-z.`,
		Example: `  isaw search zz -l 2
  isaw search '^q[aeiou]' -r -l 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := generateOptions(cmd, "")
			opts.Letters, _ = cmd.Flags().GetString("letters")
			return runApp(cmd, func(ctx context.Context, app *cli.App) error {
				return app.Search(ctx, args[0], opts)
			})
		},
	}

	cmd.Flags().StringP("letters", "a", "", "Alphabet to use (defaults to a-z)")
	cmd.Flags().IntP("length", "l", 3, "Length of the sequences to search")
	cmd.Flags().BoolP("ignore-case", "i", false, "Case insensitive search")
	cmd.Flags().BoolP("regex", "r", false, "Treat the pattern as a regular expression")
	cmd.Flags().BoolP("unique", "u", false, "Only show unique results")
	cmd.Flags().IntP("limit", "n", 0, "Stop after this many results (0 means no limit)")
	return cmd
}
