package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/deepsearch-ai/deepsearch/internal/output"
)

// statsOptions holds CLI flags for stats.
type statsOptions struct {
	format string // "text", "json"
}

func newStatsCmd() *cobra.Command {
	var opts statsOptions

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show local search metrics",
		Long: `Show locally collected search metrics: query counts by type,
zero-result rate, and per-backend call health. Nothing leaves this
machine.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStats(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")

	return cmd
}

func runStats(cmd *cobra.Command, opts statsOptions) error {
	out := output.New(cmd.OutOrStdout())

	a, err := newApp()
	if err != nil {
		out.DSError(err)
		return err
	}
	defer a.close()

	snap := a.metrics.Snapshot()

	if opts.format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	}

	if snap.Queries == 0 {
		out.Status("", "No searches recorded yet.")
		return nil
	}

	out.Statusf("", "searches: %d  (zero results: %d, degraded: %d)",
		snap.Queries, snap.ZeroResults, snap.Degraded)
	for queryType, n := range snap.ByType {
		out.Statusf("", "  %s: %d", queryType, n)
	}
	for name, stats := range snap.Providers {
		out.Statusf("", "%s: %d call(s), %d failure(s)", name, stats.Calls, stats.Failures)
		for bucket, n := range stats.Latency {
			out.Statusf("", "  %s: %d", bucket, n)
		}
	}
	return nil
}
