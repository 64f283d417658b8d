package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	stn "github.com/sashite/stn-go"
	"github.com/sashite/stn-go/pkg/transition"
)

var invertCmd = &cobra.Command{
	Use:   "invert [file]",
	Short: "Invert a transition for undo",
	Long: `Parses a payload ("-" or no argument for Stdin) and prints its inverse as
canonical structural JSON. Without --board only hand deltas negate and board
changes are carried as-is; with --board pointing at a snapshot of the prior
per-cell contents, board changes are restored from the snapshot.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		snapshot, _ := cmd.Flags().GetString("board")
		if err := runInvert(args, snapshot, os.Stdout); err != nil {
			fmt.Printf("Invert failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	invertCmd.Flags().String("board", "", "Snapshot file with the per-cell contents before the transition")
	rootCmd.AddCommand(invertCmd)
}

func runInvert(args []string, snapshot string, out io.Writer) error {
	path := "-"
	if len(args) > 0 {
		path = args[0]
	}

	raw, err := readPayload(path)
	if err != nil {
		return err
	}
	t, err := stn.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	inv := t.Inverse()
	if snapshot != "" {
		prev, err := readSnapshot(snapshot)
		if err != nil {
			return err
		}
		inv, err = t.InverseWithBoard(prev)
		if err != nil {
			return fmt.Errorf("%s: %w", snapshot, err)
		}
	}
	logger.Debug("inverted payload", "path", path, "inverse", inv)

	return writeStructural(out, inv)
}

// readSnapshot loads a coordinate-to-piece map; null entries mark cells that
// were empty before the transition.
func readSnapshot(path string) (map[string]string, error) {
	raw, err := readPayload(path)
	if err != nil {
		return nil, err
	}

	prev := make(map[string]string, len(raw))
	for coord, v := range raw {
		switch piece := v.(type) {
		case nil:
			prev[coord] = transition.Vacant
		case string:
			prev[coord] = piece
		default:
			return nil, fmt.Errorf("%s: cell %q: expected a piece identifier or null, got %T", path, coord, v)
		}
	}
	return prev, nil
}
