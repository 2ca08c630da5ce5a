// Package cmd provides the CLI commands for DeepSearch.
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	dserrors "github.com/deepsearch-ai/deepsearch/internal/errors"
	"github.com/deepsearch-ai/deepsearch/internal/logging"
	"github.com/deepsearch-ai/deepsearch/pkg/version"
)

// Persistent flags shared by all commands.
var (
	configPath     string
	debugMode      bool
	premiumMode    bool
	noColor        bool
	loggingCleanup func()
)

// NewRootCmd creates the root command for the deepsearch CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deepsearch",
		Short: "Find people across the public web",
		Long: `DeepSearch resolves natural-language queries about people into ranked
search results from people-search backends, with confidence scores and
an optional AI-written summary.

Ask in plain language:
  deepsearch ask "find Jane Roe"
  deepsearch ask "who is jane@example.org"

Or search a specific identifier:
  deepsearch search --type username janeroe`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetVersionTemplate("deepsearch version {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ~/.config/deepsearch/config.yaml)")
	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging to ~/.deepsearch/logs/")
	cmd.PersistentFlags().BoolVar(&premiumMode, "premium", false, "Bypass the free-tier quota and result cap")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	cmd.PersistentPreRunE = startLogging
	cmd.PersistentPostRunE = stopLogging

	cmd.AddCommand(newAskCmd())
	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newUsageCmd())
	cmd.AddCommand(newStatsCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// startLogging enables file logging, verbose when --debug is set.
func startLogging(_ *cobra.Command, _ []string) error {
	cfg := logging.DefaultConfig()
	if debugMode {
		cfg = logging.DebugConfig()
	}

	logger, cleanup, err := logging.Setup(cfg)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	loggingCleanup = cleanup
	slog.SetDefault(logger)

	if debugMode {
		slog.Info("Debug logging enabled",
			slog.String("log_file", logging.DefaultLogPath()),
			slog.String("version", version.Version))
	}
	return nil
}

// stopLogging flushes and closes the log file.
func stopLogging(_ *cobra.Command, _ []string) error {
	if loggingCleanup != nil {
		loggingCleanup()
		loggingCleanup = nil
	}
	return nil
}

// Execute runs the root command. Structured errors print with their
// suggestion; --debug adds cause and details.
func Execute() error {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), dserrors.FormatForUser(err, debugMode))
		return err
	}
	return nil
}
