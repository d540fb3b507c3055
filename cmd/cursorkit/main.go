// Command cursorkit inspects the built-in cursor subjects against the
// capability catalogue: list the taxonomy, print gap reports, or run an
// expectation manifest for CI.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	cursorkit "github.com/cursorkit/cursorkit"
)

var (
	verbose bool
	checker *cursorkit.Checker
)

var rootCmd = &cobra.Command{
	Use:   "cursorkit",
	Short: "Verify cursor types against the capability taxonomy",
	Long: `cursorkit verifies that types structurally satisfy cursor capabilities,
from single-pass input cursors up to random-access cursors. Without a
subcommand it starts an interactive session.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
		checker = cursorkit.NewChecker(cursorkit.WithLogger(logger))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd.OutOrStdout())
	},
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(listCmd, reportCmd, checkCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
