package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oliverbestmann/erasure/internal/gen"
)

var generateCmd = &cobra.Command{
	Use:   "generate --contract <file>",
	Short: "Generate the container wrappers of a contract",
	Long: `Generate reads a contract definition and writes the contract interface
together with one wrapper per storage strategy.

The output file defaults to the name of the contract followed by _gen.go,
placed next to the contract definition.

Example:
  erasure generate --contract fooable.yaml
  erasure generate --contract printable.yaml --out printable_gen.go`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("contract", "", "contract definition (yaml, json or toml)")
	generateCmd.Flags().String("out", "", "output file")

	_ = generateCmd.MarkFlagRequired("contract")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("contract")
	out, _ := cmd.Flags().GetString("out")

	contract, err := gen.Load(path)
	if err != nil {
		return err
	}

	source, err := gen.Render(contract)
	if err != nil {
		return fmt.Errorf("generate %s: %w", contract.Name, err)
	}

	if out == "" {
		out = filepath.Join(filepath.Dir(path), strings.ToLower(contract.Name)+"_gen.go")
	}

	if err := os.WriteFile(out, source, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	slog.Info(
		"Generated contract wrappers",
		slog.String("contract", contract.Name),
		slog.String("out", out),
		slog.Int("methods", len(contract.Methods)),
	)

	return nil
}
