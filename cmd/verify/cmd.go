package verify

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/sokosmv/sokosmv/internal/board"
	"github.com/sokosmv/sokosmv/internal/encoder"
	"github.com/sokosmv/sokosmv/internal/nuxmv"
	"github.com/sokosmv/sokosmv/internal/trace"
)

func NewVerifyCommand() *cobra.Command {
	var binary string
	var engines []string

	cmd := &cobra.Command{
		Use:   "verify <board.xsb> <output-dir>",
		Short: "Runs the full pipeline: encode the board, check it with nuXmv, decode the trace",
		Long: `Runs the full pipeline: encode the board, check it with every requested
nuXmv engine, and decode the first engine's trace into a LURD move
sequence. The output directory collects the copied board, the generated
model, the per-engine command scripts and captured outputs, and
solution.txt with the move sequence and per-engine runtimes.`,
		Args: cobra.ExactArgs(2),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file (%s) not found", args[0])
			}
			if len(engines) == 0 {
				return fmt.Errorf("at least one engine is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return verify(cmd, args[0], args[1], nuxmv.Runner{Binary: binary}, engines)
		},
	}
	cmd.Flags().StringVar(&binary, "nuxmv", nuxmv.DefaultBinary, "path to the nuXmv executable")
	cmd.Flags().StringSliceVar(&engines, "engine", []string{"bdd", "sat"}, "nuXmv engines to run, in order; the first one's trace is decoded")
	return cmd
}

func verify(cmd *cobra.Command, boardPath, outDir string, runner nuxmv.Runner, engines []string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("error creating output directory (%s): %w", outDir, err)
	}
	if err := copyFile(boardPath, filepath.Join(outDir, filepath.Base(boardPath))); err != nil {
		return err
	}

	boardFile, err := os.Open(boardPath)
	if err != nil {
		return fmt.Errorf("error opening board file (%s): %w", boardPath, err)
	}
	b, err := board.Parse(boardFile)
	boardFile.Close()
	if err != nil {
		return fmt.Errorf("error parsing board file (%s): %w", boardPath, err)
	}

	modelPath := filepath.Join(outDir, "board.smv")
	if err := os.WriteFile(modelPath, []byte(encoder.Encode(b)), 0o644); err != nil {
		return fmt.Errorf("error writing model file (%s): %w", modelPath, err)
	}

	outputs := make(map[string]string, len(engines))
	runtimes := make(map[string]time.Duration, len(engines))
	for _, engine := range engines {
		outPath := filepath.Join(outDir, fmt.Sprintf("nuxmv_%s.out", engine))
		fmt.Printf("running nuXmv with engine %s...\n", engine)
		output, elapsed, err := runner.Run(cmd.Context(), modelPath, engine, outPath)
		if err != nil {
			return err
		}
		outputs[engine] = output
		runtimes[engine] = elapsed
		fmt.Printf("nuXmv (%s) finished in %.2f seconds, output saved to %s\n", engine, elapsed.Seconds(), outPath)
	}

	moves, ok := trace.Decode(outputs[engines[0]])
	solution := moves
	if !ok {
		solution = "There is no solution."
	}
	fmt.Printf("extracted solution: %q\n", solution)

	solutionPath := filepath.Join(outDir, "solution.txt")
	report := solution + "\n"
	for _, engine := range engines {
		report += fmt.Sprintf("%s engine runtime: %.2f seconds\n", engine, runtimes[engine].Seconds())
	}
	if err := os.WriteFile(solutionPath, []byte(report), 0o644); err != nil {
		return fmt.Errorf("error writing solution file (%s): %w", solutionPath, err)
	}
	fmt.Printf("solution file saved to %s\n", solutionPath)

	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("error opening board file (%s): %w", src, err)
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("error copying board file to (%s): %w", dst, err)
	}
	defer out.Close()
	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("error copying board file to (%s): %w", dst, err)
	}
	return nil
}
