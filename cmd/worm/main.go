// worm is a terminal rendition of the gravity worm arcade game.
//
// Usage:
//
//	worm                - Play (same as worm play)
//	worm play           - Play in the terminal
//	worm config         - Print the effective configuration as YAML
//	worm sim            - Run a headless game with the autopilot
//
// Global flags:
//
//	--fps <rate>     - Set frame rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible prize placement
//	--config <path>  - Load configuration from a YAML file
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexchandel/gravity-worm/internal/config"
	"github.com/alexchandel/gravity-worm/internal/worm"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "worm",
	Short: "Gravity worm - steer a worm through a scrolling cave",
	Long: `Gravity worm is a one-button arcade game for the terminal.

Hold space to climb, release to fall. The cave scrolls left and drifts
up and down; touching a wall ends the run. Every tick survived scores a
point and prizes are worth a bonus.

Available commands:
  play     - Play in the terminal (default)
  config   - Print the effective configuration
  sim      - Headless autopilot run

Examples:
  worm
  worm play --log-file worm.log
  worm --config ./my-worm.yaml
  worm sim --seed 42 --ticks 10000`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write session log to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(simCmd)
}

// loadConfig loads the configuration selected by --config, exiting on failure.
func loadConfig() config.WormConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newGame creates a game seeded from --seed, or from the clock when it is zero.
func newGame(cfg config.WormConfig) (*worm.Game, int64) {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return worm.New(cfg, rand.New(rand.NewSource(seed))), seed
}
