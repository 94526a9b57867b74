package root

import (
	"github.com/spf13/cobra"

	"github.com/sokosmv/sokosmv/cmd/decode"
	"github.com/sokosmv/sokosmv/cmd/encode"
	"github.com/sokosmv/sokosmv/cmd/verify"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sokosmv",
		Short: "Compiles Sokoban boards into nuXmv models and decodes the resulting traces",
		Long: `sokosmv turns an XSB Sokoban board into a symbolic transition system for
the nuXmv model checker and reads the checker's counterexample back as a
LURD move sequence.`,
	}

	// add sub-commands
	rootCmd.AddCommand(encode.NewEncodeCommand())
	rootCmd.AddCommand(decode.NewDecodeCommand())
	rootCmd.AddCommand(verify.NewVerifyCommand())

	return rootCmd
}
