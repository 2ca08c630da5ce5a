package cmd

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deepsearch-ai/deepsearch/internal/intent"
	"github.com/deepsearch-ai/deepsearch/internal/output"
	"github.com/deepsearch-ai/deepsearch/internal/ui"
)

// searchOptions holds CLI flags for search.
type searchOptions struct {
	queryType string
	details   string
	format    string // "text", "json"
}

func newSearchCmd() *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search a specific identifier",
		Long: `Run a direct search for a known identifier, skipping intent detection.

Examples:
  deepsearch search "Jane Roe"
  deepsearch search --type email jane@example.org
  deepsearch search --type username janeroe --details "berlin"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd.Context(), cmd, strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.queryType, "type", "t", "name", "Identifier type: name, email, phone, username")
	cmd.Flags().StringVarP(&opts.details, "details", "d", "", "Extra context (city, employer) to narrow the search")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")

	return cmd
}

func runSearch(ctx context.Context, cmd *cobra.Command, query string, opts searchOptions) error {
	out := output.New(cmd.OutOrStdout())

	queryType, err := intent.ParseType(opts.queryType)
	if err != nil {
		out.Error(err.Error())
		return err
	}

	a, err := newApp()
	if err != nil {
		out.DSError(err)
		return err
	}
	defer a.close()

	res, err := a.orch.Search(ctx, queryType, query, opts.details, premiumMode)
	if err != nil {
		out.DSError(err)
		return err
	}

	if opts.format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	r := ui.NewRenderer(cmd.OutOrStdout(), noColor)
	if res.TotalFound == 0 {
		if res.Degraded {
			r.Warningf("Search backends are unavailable right now. Try again shortly.")
		} else {
			out.Status("", "No results found.")
		}
		return nil
	}

	r.Results(res.Results)
	if hidden := res.TotalFound - len(res.Results); hidden > 0 {
		out.Statusf("ℹ️ ", "%d more result(s) available with premium", hidden)
	}
	if !premiumMode {
		out.Statusf("ℹ️ ", "%d free search(es) remaining today", res.Remaining)
	}
	return nil
}
