package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/alexchandel/gravity-worm/internal/worm"
)

var (
	flagTicks   int
	flagRuns    int
	flagVerbose bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game with the autopilot",
	Long: `Plays the game without a terminal, one tick per step, steering the worm
toward the middle of the cave. Useful for checking configurations: a run
with a given --seed always produces the same result.

Examples:
  worm sim
  worm sim --seed 42 --ticks 10000
  worm sim --runs 3 --verbose
  worm sim --runs 5 --config ./narrow-cave.yaml`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 10000, "Maximum ticks per run")
	simCmd.Flags().IntVar(&flagRuns, "runs", 1, "Number of consecutive runs")
	simCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log each run to stderr")
}

// newSimLogger returns the sim logger; verbose enables per-run debug output.
func newSimLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "sim",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func runSim(cmd *cobra.Command, args []string) {
	if flagTicks <= 0 || flagRuns <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --ticks and --runs must be positive")
		os.Exit(1)
	}

	cfg := loadConfig()
	game, seed := newGame(cfg)

	logger := newSimLogger(os.Stderr, flagVerbose)
	logger.Debug("starting", "seed", seed, "ticks", flagTicks, "runs", flagRuns)

	start := time.Now()
	fmt.Printf("Seed: %d\n\n", seed)
	fmt.Printf("  %-4s  %8s  %8s  %6s  %s\n", "Run", "Ticks", "Score", "Prizes", "Result")
	fmt.Printf("  %-4s  %8s  %8s  %6s  %s\n", "---", "-----", "-----", "------", "------")

	best := 0
	for run := 1; run <= flagRuns; run++ {
		if run > 1 {
			game.Reset()
		}
		res := worm.RunAutopilot(game, flagTicks)
		outcome := "survived"
		if res.Died {
			outcome = "dead"
		}
		fmt.Printf("  %-4d  %8d  %8d  %6d  %s\n", run, res.Ticks, res.Score, res.Collected, outcome)
		logger.Debug("run finished", "run", run, "ticks", res.Ticks, "score", res.Score, "died", res.Died)
		best = max(best, res.Score)
	}

	fmt.Println()
	fmt.Printf("Best score: %d\n", best)
	logger.Info("finished", "runs", flagRuns, "best", best, "elapsed", time.Since(start).Round(time.Millisecond))
}
