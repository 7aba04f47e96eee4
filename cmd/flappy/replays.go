package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagListRuns bool
	flagLimit    int
	flagPrune    int
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "Browse and play back recorded runs",
	Long: `Open the replay journal. Runs are listed newest first.

In the browser, Enter plays the selected run back, D deletes it and Q quits.
During playback, P pauses, Space restarts a finished playback and B returns
to the browser.

Examples:
  flappy replays
  flappy replays --list --limit 20
  flappy replays --prune 100`,
	Args: cobra.NoArgs,
	Run:  runReplays,
}

func init() {
	replaysCmd.Flags().BoolVar(&flagListRuns, "list", false, "Print runs instead of opening the browser")
	replaysCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of runs to print with --list")
	replaysCmd.Flags().IntVar(&flagPrune, "prune", -1, "Keep only the newest N runs and exit")
}

func runReplays(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening replay journal: %v", err)
	}
	defer store.Close()

	switch {
	case flagPrune >= 0:
		removed, err := store.Prune(flagPrune)
		if err != nil {
			store.Close()
			fail("%v", err)
		}
		fmt.Printf("Removed %d runs.\n", removed)
	case flagListRuns:
		if err := printRuns(store, flagLimit); err != nil {
			store.Close()
			fail("%v", err)
		}
	default:
		if err := browseReplays(store); err != nil {
			store.Close()
			fail("%v", err)
		}
	}
}

// printRuns prints the newest runs as a plain table.
func printRuns(store *storage.Store, limit int) error {
	runs, err := store.RecentRuns(limit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flappy play' to record the first one!")
		return nil
	}

	fmt.Printf("  %-6s  %-6s  %-8s  %-6s  %s\n", "Run", "Score", "Ticks", "Flaps", "Date")
	fmt.Printf("  %-6s  %-6s  %-8s  %-6s  %s\n", "---", "-----", "-----", "-----", "----")
	for _, r := range runs {
		fmt.Printf("  %-6d  %-6d  %-8d  %-6d  %s\n",
			r.ID, r.Score, r.Ticks, r.Flaps, r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

// browseReplays alternates between the browser and playback until the user quits.
func browseReplays(store *storage.Store) error {
	defer redirectLogs(logger, flagLogFile)()

	for {
		cfg := terminalConfig()
		id, err := tui.RunReplayBrowser(store, cfg.ScreenW, cfg.ScreenH, cfg.TickRate)
		if err != nil {
			return err
		}
		if id == 0 {
			return nil
		}

		rec, err := store.Run(id)
		if errors.Is(err, storage.ErrNotFound) {
			logger.Warn("run disappeared", "id", id)
			continue
		}
		if err != nil {
			return err
		}

		game, err := flappy.NewReplay(rec)
		if err != nil {
			logger.Error("cannot play back run", "id", id, "error", err)
			continue
		}

		back, err := tui.Run(game, cfg, logger)
		if err != nil {
			return err
		}
		if !back {
			return nil
		}
	}
}
