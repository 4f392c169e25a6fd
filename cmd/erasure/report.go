package main

import (
	"fmt"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/oliverbestmann/erasure/alloc"
	"github.com/oliverbestmann/erasure/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Report the allocations of the storage strategies",
	Long: `Report runs construct, copy, write, move, assign and reset on containers
of every storage strategy holding a small, a pointer bearing and a large
payload, and prints the number of heap cells allocated and released by
each operation.`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().String("profile", "", "write a profile of the run (cpu or mem)")
	reportCmd.Flags().Int("rounds", 1, "number of times the operations are repeated")
	reportCmd.Flags().Bool("print", false, "print the payloads of every strategy")
}

func runReport(cmd *cobra.Command, args []string) error {
	mode, _ := cmd.Flags().GetString("profile")
	rounds, _ := cmd.Flags().GetInt("rounds")
	printPayloads, _ := cmd.Flags().GetBool("print")

	if rounds < 1 {
		return fmt.Errorf("rounds must be positive, got %d", rounds)
	}

	switch mode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.Quiet).Stop()
	default:
		return fmt.Errorf("unknown profile mode %q", mode)
	}

	tracker := alloc.NewTracker()

	var rows []report.Row
	for range rounds {
		rows = report.Run(tracker)
	}

	if printPayloads {
		report.Print(cmd.OutOrStdout())
	}

	return report.Write(cmd.OutOrStdout(), rows)
}
