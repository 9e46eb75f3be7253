package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/isaw"
	"github.com/aretw0/isaw/internal/presentation/tui"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of isaw",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			if tui.IsTerminal(out) {
				color, _ := cmd.Flags().GetString("color")
				tui.PrintBanner(out, tui.Profile(color, out), isaw.Version)
				return
			}
			fmt.Fprintf(out, "isaw version %s\n", strings.TrimSpace(isaw.Version))
		},
	}
}
