package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/deepsearch-ai/deepsearch/configs"
	"github.com/deepsearch-ai/deepsearch/internal/config"
	"github.com/deepsearch-ai/deepsearch/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long: `Manage the DeepSearch configuration file.

Configuration precedence (lowest to highest):
  1. Built-in defaults
  2. Config file (~/.config/deepsearch/config.yaml)
  3. Environment variables (DEEPSEARCH_*, OPENAI_API_KEY)`,
		Example: `  # Create a config file with defaults
  deepsearch config init

  # Show the effective configuration
  deepsearch config show

  # Print the config file path
  deepsearch config path`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the configuration file",
		Long: `Write an annotated configuration file with the built-in defaults to
~/.config/deepsearch/config.yaml (or $XDG_CONFIG_HOME/deepsearch/config.yaml).

Provider and OpenAI API keys can then be filled in, or supplied via the
DEEPSEARCH_SERPAPI_KEY, DEEPSEARCH_SERPER_KEY, and OPENAI_API_KEY
environment variables.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := output.New(cmd.OutOrStdout())

			path := config.GetUserConfigPath()
			if _, err := os.Stat(path); err == nil && !force {
				out.Warningf("Config already exists at %s (use --force to overwrite)", path)
				return nil
			}

			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				out.DSError(err)
				return err
			}
			if err := os.WriteFile(path, []byte(configs.UserConfigTemplate), 0o600); err != nil {
				out.DSError(err)
				return err
			}
			out.Successf("Created %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				output.New(cmd.OutOrStdout()).DSError(err)
				return err
			}

			// API keys are redacted; show presence only.
			shown := *cfg
			shown.Providers.SerpAPI.APIKey = redact(cfg.Providers.SerpAPI.APIKey)
			shown.Providers.Serper.APIKey = redact(cfg.Providers.Serper.APIKey)
			shown.OpenAI.APIKey = redact(cfg.OpenAI.APIKey)

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			defer func() { _ = enc.Close() }()
			return enc.Encode(&shown)
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), config.GetUserConfigPath())
			return err
		},
	}
}

// redact hides a secret, keeping only whether it is set.
func redact(secret string) string {
	if secret == "" {
		return ""
	}
	return "<set>"
}
