package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	stn "github.com/sashite/stn-go"
)

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Check payloads for well-formedness",
	Long: `Parses each payload file ("-" or no argument for Stdin) and reports the
first validation failure. Exits non-zero when any payload is malformed.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(args, os.Stdout); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(args []string, out io.Writer) error {
	if len(args) == 0 {
		args = []string{"-"}
	}

	for _, path := range args {
		raw, err := readPayload(path)
		if err != nil {
			return err
		}
		t, err := stn.Parse(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		logger.Debug("payload parsed", "path", path, "transition", t)
		fmt.Fprintf(out, "%s: ok\n", path)
	}
	return nil
}
