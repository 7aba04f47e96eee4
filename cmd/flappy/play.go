package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal.

Controls:
  Space/Up/W/Enter/Click  - Flap (also starts and restarts a run)
  P/Esc                   - Pause
  B                       - Leave (when idle, paused or over)
  Ctrl+S                  - Save a screenshot
  Q/Ctrl+C                - Quit

Examples:
  flappy play
  flappy play --seed 42
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	params, err := loadParams()
	if err != nil {
		fail("%v", err)
	}

	store := openStore()

	game, err := flappy.New(params,
		flappy.WithLogger(logger),
		flappy.WithRunSink(tui.JournalSink(store, logger)),
	)
	if err != nil {
		fail("%v", err)
	}

	restoreLogs := redirectLogs(logger, flagLogFile)
	_, runErr := tui.Run(game, terminalConfig(), logger)
	restoreLogs()

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
