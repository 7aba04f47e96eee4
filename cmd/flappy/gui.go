package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/desktop"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Play in a desktop window",
	Long: `Open a desktop window sized to the playfield.

Controls:
  Space/Up/W/Enter/Click  - Flap
  P/Esc                   - Pause
  Q                       - Quit

Runs are journaled exactly like terminal runs.`,
	Args: cobra.NoArgs,
	Run:  runGUI,
}

func runGUI(_ *cobra.Command, _ []string) {
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

	cfg := core.DefaultConfig()
	cfg.ScreenW = int(params.ViewportWidth)
	cfg.ScreenH = int(params.ViewportHeight)
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	runErr := desktop.Run(game, cfg, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("%v", runErr)
	}
}
