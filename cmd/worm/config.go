package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration the game would run with as YAML.

Configuration is searched in this order:
  1. --config <path>
  2. ~/.gravityworm/config.yaml
  3. ./configs/worm.yaml
  4. Built-in defaults

The output is a valid config file and can be edited and passed back
with --config.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	out, err := cfg.Marshal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(out))
}
