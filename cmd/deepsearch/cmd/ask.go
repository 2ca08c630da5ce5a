package cmd

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deepsearch-ai/deepsearch/internal/output"
	"github.com/deepsearch-ai/deepsearch/internal/ui"
)

// askOptions holds CLI flags for ask.
type askOptions struct {
	format string // "text", "json"
}

func newAskCmd() *cobra.Command {
	var opts askOptions

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask in plain language",
		Long: `Resolve a natural-language question. Person-search intent is detected
automatically; questions without it are answered directly and do not
consume the daily quota.

Examples:
  deepsearch ask "find Jane Roe"
  deepsearch ask "who is jane@example.org"
  deepsearch ask "search @janeroe"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(cmd.Context(), cmd, strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")

	return cmd
}

func runAsk(ctx context.Context, cmd *cobra.Command, question string, opts askOptions) error {
	out := output.New(cmd.OutOrStdout())

	a, err := newApp()
	if err != nil {
		out.DSError(err)
		return err
	}
	defer a.close()

	resp, err := a.orch.Resolve(ctx, question, premiumMode)
	if err != nil {
		out.DSError(err)
		return err
	}

	if opts.format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	r := ui.NewRenderer(cmd.OutOrStdout(), noColor)
	r.Summary(resp.Text)
	r.Results(resp.Results)
	r.Suggestions(resp.Suggestions)

	if resp.Intent.HasIntent && !premiumMode {
		out.Newline()
		out.Statusf("ℹ️ ", "%d free search(es) remaining today", resp.Remaining)
	}
	return nil
}
