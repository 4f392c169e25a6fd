// Package main provides the erasure CLI. It generates the erased container
// wrappers of capability contracts and reports the allocations made by the
// storage strategies.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// config holds the settings shared by all commands. Every flag can also be
// set using an environment variable with the ERASURE_ prefix.
var config = viper.New()

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "erasure",
	Short: "Erasure generates and measures type erased containers",
	Long: `Erasure generates the type erased container wrappers of a capability
contract, one per storage strategy, and reports the heap allocations
the strategies make.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	_ = config.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))

	config.SetEnvPrefix("erasure")
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	config.AutomaticEnv()

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(reportCmd)
}

func setupLogging(cmd *cobra.Command, args []string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(config.GetString("log-level"))); err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}

	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))

	return nil
}
