package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sashite/stn-go/internal/logging"
)

var logger *slog.Logger

var rootCmd = &cobra.Command{
	Use:   "stn",
	Short: "stn inspects and composes game state transitions",
	Long: `stn reads state transition payloads (JSON or YAML), validates them against
the transition grammar, and applies the composition algebra: combine a
sequence of transitions into their net effect, or invert one for undo.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger = logging.New(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
}
