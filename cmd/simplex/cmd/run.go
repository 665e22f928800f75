package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/solidkit/simplex/internal/errors"
	"github.com/solidkit/simplex/internal/model"
)

var (
	outDir   string
	products []string
)

var runCmd = &cobra.Command{
	Use:   "run <file-or-glob>",
	Short: "Run one or more Simplex files and write their product artifacts",
	Long: `Bind and execute Simplex programs, writing one P-N.stl and/or
P-N.txt artifact pair per requested product.

The argument may be a single file or a glob pattern (e.g.
"models/**/*.simplex") matching several files, each run independently.

Examples:
  # Run a single file, writing artifacts to the current directory
  simplex run part.simplex

  # Run every fixture under a directory tree
  simplex run "testdata/**/*.simplex" --out build/

  # Only emit the named products
  simplex run part.simplex --product box --product lid`,
	Args: cobra.ExactArgs(1),
	RunE: runFiles,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&outDir, "out", "o", ".", "directory to write product artifacts into")
	runCmd.Flags().StringArrayVarP(&products, "product", "p", nil, "only run the named product (may be repeated; default: all products)")
}

func runFiles(_ *cobra.Command, args []string) error {
	pattern := args[0]

	var files []string
	if _, err := os.Stat(pattern); err == nil {
		files = []string{pattern}
	} else {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return fmt.Errorf("invalid glob pattern %s: %w", pattern, err)
		}
		files = matches
	}
	if len(files) == 0 {
		return fmt.Errorf("no files matched %s", pattern)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", outDir, err)
	}

	var failed int
	for _, file := range files {
		if err := runOneFile(file); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", file, err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed", failed, len(files))
	}
	return nil
}

func runOneFile(file string) error {
	content, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	m, list := model.Bind(string(content))
	if !list.Empty() {
		for _, e := range list.Errs {
			e.WithSource(file, string(content))
		}
		fmt.Fprint(os.Stderr, errors.FormatAll(list.Errs, wantColor()))
		return fmt.Errorf("bind failed with %d diagnostic(s)", len(list.Errs))
	}

	artifacts, list := m.Execute(products...)
	if !list.Empty() {
		for _, e := range list.Errs {
			e.WithSource(file, string(content))
		}
		fmt.Fprint(os.Stderr, errors.FormatAll(list.Errs, wantColor()))
		return fmt.Errorf("execution failed with %d diagnostic(s)", len(list.Errs))
	}

	prefix := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	if err := model.WriteArtifacts(outDir, prefix, artifacts); err != nil {
		return fmt.Errorf("failed to write artifacts: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "wrote %d product(s) from %s\n", len(artifacts), file)
	}
	return nil
}
