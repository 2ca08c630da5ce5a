package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/deepsearch-ai/deepsearch/internal/mcp"
	"github.com/deepsearch-ai/deepsearch/internal/output"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server over stdio",
		Long: `Start the Model Context Protocol server so AI clients can run people
searches as tools. The server speaks JSON-RPC over stdin/stdout and
stops on SIGINT or SIGTERM.

Registered tools: people_search, resolve_query, search_history, usage_status.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), cmd)
		},
	}
}

func runServe(ctx context.Context, cmd *cobra.Command) error {
	out := output.New(cmd.ErrOrStderr())

	a, err := newApp()
	if err != nil {
		out.DSError(err)
		return err
	}
	defer a.close()

	srv, err := mcp.NewServer(a.orch, a.history, a.gate, nil)
	if err != nil {
		out.DSError(err)
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return srv.Serve(ctx)
}
