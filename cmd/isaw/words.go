package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/aretw0/isaw/internal/cli"
)

func newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "words <letters>",
		Aliases: []string{"w"},
		Short:   "Find dictionary words made from the letters (like Scrabble)",
		Long: `Generate permutations of the letters and keep those found in a word list.
The word list is read from --dict, the 'dictionary' config key, or ` + cli.DefaultDictionaryPath + `.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := generateOptions(cmd, args[0])
			return runApp(cmd, func(ctx context.Context, app *cli.App) error {
				return app.Words(ctx, opts)
			})
		},
	}

	cmd.Flags().IntP("min", "m", 2, "Minimum word length")
	cmd.Flags().IntP("max", "x", 0, "Maximum word length (defaults to the letter count)")
	cmd.Flags().IntP("length", "l", 0, "Only show words of exactly this length")
	cmd.Flags().StringP("dict", "d", "", "Word list file, one word per line")
	addFilterFlags(cmd)
	return cmd
}
