package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
)

var (
	flagConfigFormat string
	flagConfigLoad   string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the configuration",
	Long: `Print the default configuration, or the effective configuration loaded
from --load, as YAML or TOML.

Configs are looked up in this order when playing:
  1. --config <path>
  2. ~/.blockfall/configs/blockfall.yaml
  3. ~/.blockfall/configs/blockfall.toml
  4. ./configs/blockfall.yaml
  5. built-in defaults

Examples:
  blockfall config > ~/.blockfall/configs/blockfall.yaml
  blockfall config --format toml > ~/.blockfall/configs/blockfall.toml
  blockfall config --load ./my-blockfall.yaml --format toml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigFormat, "format", "yaml", "Output format: yaml or toml")
	configCmd.Flags().StringVar(&flagConfigLoad, "load", "", "Config file to load and print")
}

func runConfig(cmd *cobra.Command, args []string) {
	var format config.Format
	switch flagConfigFormat {
	case "yaml", "yml":
		format = config.FormatYAML
	case "toml":
		format = config.FormatTOML
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (want yaml or toml)\n", flagConfigFormat)
		os.Exit(1)
	}

	cfg := config.DefaultBlockfallConfig()
	if flagConfigLoad != "" {
		loaded, err := config.LoadBlockfall(flagConfigLoad)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	data, err := config.Encode(cfg, format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
