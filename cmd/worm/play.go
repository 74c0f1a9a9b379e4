package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexchandel/gravity-worm/internal/core"
	"github.com/alexchandel/gravity-worm/internal/platform/tui"
	"github.com/alexchandel/gravity-worm/internal/worm"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Space      - Tap to start, hold to climb, release to fall
  Q/Esc      - Quit

The terminal reports only key presses, so a release is detected when the
key stops repeating for input.release_after_ms milliseconds.

Examples:
  worm play
  worm play --fps 30
  worm play --log-file worm.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write session log to this file")
}

func runPlay(cmd *cobra.Command, args []string) {
	if flagFPS <= 0 {
		fmt.Fprintf(os.Stderr, "Error: --fps must be positive, got %d\n", flagFPS)
		os.Exit(1)
	}
	cfg := loadConfig()

	logger, closeLog, err := openSessionLog(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.ScreenH = max(0, rc.ScreenH-1) // Leave a row for help
	rc.TickRate = flagFPS

	var game *worm.Game
	game, rc.Seed = newGame(cfg)
	logger.Info("session started", "seed", rc.Seed, "fps", rc.TickRate, "screen", fmt.Sprintf("%dx%d", rc.ScreenW, rc.ScreenH))

	if runErr := tui.Run(game, rc, cfg.Input, logger); runErr != nil {
		logger.Error("session failed", "err", runErr)
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

// openSessionLog returns a logger writing to path, or a discarding logger when
// path is empty. The alternate screen owns stdout while playing.
func openSessionLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "worm",
	})
	//nolint:errcheck // Best-effort close on exit
	return logger, func() { f.Close() }, nil
}
