package encode

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sokosmv/sokosmv/internal/board"
	"github.com/sokosmv/sokosmv/internal/encoder"
)

func NewEncodeCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "encode <board.xsb>",
		Short: "Compiles an XSB board into a nuXmv model",
		Long: `Compiles an XSB board into a nuXmv model. For instance:

#####
#@$.#
#####

encodes a one-box board where the only winning opening is a push right.`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file (%s) not found", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return encode(args[0], output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the model to a file instead of stdout")
	return cmd
}

func encode(boardPath, output string) error {
	boardFile, err := os.Open(boardPath)
	if err != nil {
		return fmt.Errorf("error opening board file (%s): %w", boardPath, err)
	}
	defer boardFile.Close()

	b, err := board.Parse(boardFile)
	if err != nil {
		return fmt.Errorf("error parsing board file (%s): %w", boardPath, err)
	}

	model := encoder.Encode(b)
	if output == "" {
		fmt.Print(model)
		return nil
	}
	if err := os.WriteFile(output, []byte(model), 0o644); err != nil {
		return fmt.Errorf("error writing model file (%s): %w", output, err)
	}
	return nil
}
