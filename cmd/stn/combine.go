package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	stn "github.com/sashite/stn-go"
)

var combineCmd = &cobra.Command{
	Use:   "combine [files...]",
	Short: "Fold payloads into their net transition",
	Long: `Parses each payload file in order, left-folds the composition operator over
them, and prints the net transition as canonical structural JSON on Stdout.
No arguments yields the empty transition.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runCombine(args, os.Stdout); err != nil {
			fmt.Printf("Combine failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(combineCmd)
}

func runCombine(args []string, out io.Writer) error {
	items := make([]any, 0, len(args))
	for _, path := range args {
		raw, err := readPayload(path)
		if err != nil {
			return err
		}
		items = append(items, raw)
	}

	net, err := stn.Combine(items...)
	if err != nil {
		return err
	}
	logger.Debug("combined payloads", "count", len(items), "net", net)

	return writeStructural(out, net)
}
