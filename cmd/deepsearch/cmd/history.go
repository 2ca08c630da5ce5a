package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/deepsearch-ai/deepsearch/internal/history"
	"github.com/deepsearch-ai/deepsearch/internal/intent"
	"github.com/deepsearch-ai/deepsearch/internal/output"
	"github.com/deepsearch-ai/deepsearch/internal/ui"
)

// historyOptions holds CLI flags for history.
type historyOptions struct {
	queryType string
	limit     int
	format    string // "text", "json"
}

func newHistoryCmd() *cobra.Command {
	var opts historyOptions

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past searches",
		Long: `List past searches, newest first.

Examples:
  deepsearch history
  deepsearch history --type email
  deepsearch history --limit 10 --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHistory(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.queryType, "type", "t", "", "Filter by identifier type: name, email, phone, username")
	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 20, "Maximum entries to show")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")

	cmd.AddCommand(newHistoryClearCmd())
	cmd.AddCommand(newHistoryRemoveCmd())

	return cmd
}

func runHistory(cmd *cobra.Command, opts historyOptions) error {
	out := output.New(cmd.OutOrStdout())

	a, err := newApp()
	if err != nil {
		out.DSError(err)
		return err
	}
	defer a.close()

	var entries []history.Entry
	if opts.queryType != "" {
		queryType, err := intent.ParseType(opts.queryType)
		if err != nil {
			out.Error(err.Error())
			return err
		}
		entries = a.history.ListByType(queryType)
	} else {
		entries = a.history.List()
	}

	if opts.limit > 0 && len(entries) > opts.limit {
		entries = entries[:opts.limit]
	}

	if opts.format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	ui.NewRenderer(cmd.OutOrStdout(), noColor).History(entries)
	return nil
}

func newHistoryClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all search history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := output.New(cmd.OutOrStdout())

			a, err := newApp()
			if err != nil {
				out.DSError(err)
				return err
			}
			defer a.close()

			if err := a.history.Clear(); err != nil {
				out.DSError(err)
				return err
			}
			out.Success("Search history cleared")
			return nil
		},
	}
}

func newHistoryRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete one history entry by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.New(cmd.OutOrStdout())

			a, err := newApp()
			if err != nil {
				out.DSError(err)
				return err
			}
			defer a.close()

			if err := a.history.Remove(args[0]); err != nil {
				out.DSError(err)
				return err
			}
			out.Success("Entry removed")
			return nil
		},
	}
}
