package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/isaw/internal/cli"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "isaw",
		Short: "Generate letter combinations and search for words",
		Long: `isaw enumerates permutations, combinations and dictionary words drawn from a set of letters,
filters them by substring or regular expression, and counts them without generating them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags (available to all commands)
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Config file (default $XDG_CONFIG_HOME/isaw/config.yaml)")
	pf.Bool("debug", false, "Log debug information to stderr")
	pf.String("color", "auto", "Colorize output: auto, always or never")
	pf.String("metrics-file", "", "Write Prometheus counters to this file on exit")

	rootCmd.AddCommand(
		newPermutationsCmd(),
		newCombinationsCmd(),
		newWordsCmd(),
		newSearchCmd(),
		newCountCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute builds the command tree and runs it. Errors go to stderr with exit code 1.
func Execute() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func globalOptions(cmd *cobra.Command) cli.GlobalOptions {
	flags := cmd.Flags()

	configPath, _ := flags.GetString("config")
	debug, _ := flags.GetBool("debug")
	color, _ := flags.GetString("color")
	metricsFile, _ := flags.GetString("metrics-file")

	return cli.GlobalOptions{
		ConfigPath:     configPath,
		ConfigSet:      flags.Changed("config"),
		Debug:          debug,
		DebugSet:       flags.Changed("debug"),
		Color:          color,
		ColorSet:       flags.Changed("color"),
		MetricsFile:    metricsFile,
		MetricsFileSet: flags.Changed("metrics-file"),
	}
}

// runApp builds the App, runs fn under a context cancelled by SIGINT or SIGTERM
// and flushes metrics.
func runApp(cmd *cobra.Command, fn func(ctx context.Context, app *cli.App) error) error {
	app, err := cli.NewApp(globalOptions(cmd), cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	// The engine checks ctx between candidates, so an interrupt stops generation
	// even when the filter rejects everything.
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := fn(ctx, app)
	if err := app.Close(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

// addFilterFlags registers the flags shared by every generating command.
func addFilterFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("search", "s", "", "Only show results containing this pattern")
	f.BoolP("ignore-case", "i", false, "Case insensitive search")
	f.BoolP("regex", "r", false, "Treat the search pattern as a regular expression")
	f.BoolP("unique", "u", false, "Only show unique results")
	f.IntP("limit", "n", 0, "Stop after this many results (0 means no limit)")
}

// generateOptions reads every generating flag the command defines; missing ones stay zero.
func generateOptions(cmd *cobra.Command, letters string) cli.GenerateOptions {
	flags := cmd.Flags()

	minLen, _ := flags.GetInt("min")
	maxLen, _ := flags.GetInt("max")
	length, _ := flags.GetInt("length")
	search, _ := flags.GetString("search")
	ignoreCase, _ := flags.GetBool("ignore-case")
	regex, _ := flags.GetBool("regex")
	unique, _ := flags.GetBool("unique")
	limit, _ := flags.GetInt("limit")
	dict, _ := flags.GetString("dict")

	return cli.GenerateOptions{
		Letters:    letters,
		Min:        minLen,
		Max:        maxLen,
		RangeSet:   flags.Changed("min") || flags.Changed("max"),
		Length:     length,
		LengthSet:  flags.Changed("length"),
		Search:     search,
		Regex:      regex,
		IgnoreCase: ignoreCase,
		Unique:     unique,
		Limit:      limit,
		LimitSet:   flags.Changed("limit"),
		Dictionary: dict,
	}
}
