package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective runner configuration",
	Long: `Print the configuration the runner would use, as YAML.

The config is looked up in this order:
  1. --config <path>
  2. ~/.runner/configs/runner.yaml
  3. ./configs/runner.yaml
  4. the built-in defaults

Examples:
  runner config
  runner config --config ./my-runner.yaml
  runner config > ~/.runner/configs/runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, source, err := config.LoadRunner(flagConfig)
	if err != nil {
		if errors.Is(err, config.ErrInvalid) {
			return fmt.Errorf("config %s is invalid: %w", flagConfig, err)
		}
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", source)
	_, err = out.Write(data)
	return err
}
