// Package nuxmv drives the external nuXmv model checker. The checker is a
// blocking subprocess with unbounded runtime; the only discipline required
// here is that the process is reaped (via the caller's context) and that
// its combined output lands in the requested file whether the run succeeds
// or not.
package nuxmv

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// DefaultBinary is used when a Runner does not name an executable.
const DefaultBinary = "nuXmv"

// Runner invokes nuXmv in batch mode through a command script.
type Runner struct {
	// Binary is the nuXmv executable to invoke, looked up on PATH when
	// not absolute. Empty means DefaultBinary.
	Binary string
}

func (r Runner) binary() string {
	if r.Binary == "" {
		return DefaultBinary
	}
	return r.Binary
}

// WriteCommandFile writes the interactive-shell script that selects an
// engine, builds the model and checks the LTL obligation.
func WriteCommandFile(path, engine string) error {
	commands := []string{
		fmt.Sprintf("set engine %s", engine),
		"go",
		`check_ltlspec -p "F win"`,
		"quit",
	}
	script := strings.Join(commands, "\n") + "\n"
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		return fmt.Errorf("error writing nuXmv command file: %w", err)
	}
	return nil
}

// Run checks modelPath with the given engine, writing the checker's
// combined stdout and stderr to outPath and returning it along with the
// wall-clock duration of the run. nuXmv exits non-zero when it finds a
// counterexample, so a non-zero exit with captured output is not an error;
// only failure to start, a cancelled context, or an unwritable output file
// is.
func (r Runner) Run(ctx context.Context, modelPath, engine, outPath string) (string, time.Duration, error) {
	cmdPath := filepath.Join(filepath.Dir(outPath), fmt.Sprintf("nuxmv_%s.cmd", engine))
	if err := WriteCommandFile(cmdPath, engine); err != nil {
		return "", 0, err
	}

	cmd := exec.CommandContext(ctx, r.binary(), "-source", cmdPath, modelPath)
	start := time.Now()
	output, err := cmd.CombinedOutput()
	elapsed := time.Since(start)

	if werr := os.WriteFile(outPath, output, 0o644); werr != nil {
		return "", elapsed, fmt.Errorf("error writing nuXmv output: %w", werr)
	}

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return "", elapsed, fmt.Errorf("error running %s (engine %s): %w", r.binary(), engine, err)
	}
	if ctx.Err() != nil {
		return string(output), elapsed, fmt.Errorf("nuXmv run interrupted: %w", ctx.Err())
	}
	return string(output), elapsed, nil
}
