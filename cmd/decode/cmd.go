package decode

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sokosmv/sokosmv/internal/trace"
)

func NewDecodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <nuxmv.out>",
		Short: "Extracts a LURD move sequence from captured nuXmv output",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file (%s) not found", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return decode(args[0])
		},
	}
}

func decode(outputPath string) error {
	raw, err := os.ReadFile(outputPath)
	if err != nil {
		return fmt.Errorf("error reading nuXmv output (%s): %w", outputPath, err)
	}

	// A missing move sequence is ambiguous between a board proved
	// unsolvable and a report format the scrape does not recognize, so it
	// is reported, not treated as a failure.
	moves, ok := trace.Decode(string(raw))
	if !ok {
		fmt.Println("no solution found")
		return nil
	}
	fmt.Println(moves)
	return nil
}
