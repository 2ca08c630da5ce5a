package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/deepsearch-ai/deepsearch/internal/output"
	"github.com/deepsearch-ai/deepsearch/internal/ui"
)

// usageOptions holds CLI flags for usage.
type usageOptions struct {
	format string // "text", "json"
}

func newUsageCmd() *cobra.Command {
	var opts usageOptions

	cmd := &cobra.Command{
		Use:   "usage",
		Short: "Show today's search quota",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUsage(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")

	cmd.AddCommand(newUsageResetCmd())

	return cmd
}

func runUsage(cmd *cobra.Command, opts usageOptions) error {
	out := output.New(cmd.OutOrStdout())

	a, err := newApp()
	if err != nil {
		out.DSError(err)
		return err
	}
	defer a.close()

	st := a.gate.Status()

	if opts.format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(st)
	}

	ui.NewRenderer(cmd.OutOrStdout(), noColor).Usage(st)
	return nil
}

func newUsageResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset today's search counter",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := output.New(cmd.OutOrStdout())

			a, err := newApp()
			if err != nil {
				out.DSError(err)
				return err
			}
			defer a.close()

			if err := a.gate.Reset(); err != nil {
				out.DSError(err)
				return err
			}
			out.Success("Usage counter reset")
			return nil
		},
	}
}
