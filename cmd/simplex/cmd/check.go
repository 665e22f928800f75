package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/solidkit/simplex/internal/errors"
	"github.com/solidkit/simplex/internal/model"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Parse and type-check a Simplex file without running it",
	Long: `Parse a Simplex program and run semantic analysis over it,
reporting any diagnostics, without executing any product (top-level
values are still bound).`,
	Args: cobra.ExactArgs(1),
	RunE: checkFile,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func checkFile(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	_, list := model.Bind(string(content))
	if !list.Empty() {
		for _, e := range list.Errs {
			e.WithSource(filename, string(content))
		}
		fmt.Fprint(os.Stderr, errors.FormatAll(list.Errs, wantColor()))
		return fmt.Errorf("check failed with %d diagnostic(s)", len(list.Errs))
	}

	fmt.Println("OK")
	return nil
}
