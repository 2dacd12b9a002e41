// Package cmd implements the board CLI commands.
//
// The root command dispatches to subcommands (render, show). All
// commands read a board manifest and hand the resulting tree to a
// renderer; the CLI itself never manipulates block trees directly.
package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      "15:04:05.00",
	Level:           log.InfoLevel,
})

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "board",
		Short: "Board - declarative section-grouped lists for the terminal",
		Long: `Board reads declarative YAML manifests describing section-grouped
lists and renders them: top-level sections keep their structure,
nested sections dissolve into their parent's body.

Use "board <command> --help" for more information about a command.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.AddCommand(newRenderCmd())
	root.AddCommand(newShowCmd())
	return root
}
