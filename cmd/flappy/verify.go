package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/replay"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var flagVerifyAll bool

var verifyCmd = &cobra.Command{
	Use:   "verify [id]",
	Short: "Re-simulate recorded runs headlessly",
	Long: `Play a recorded run back without rendering and check that it ends
with the recorded score at the recorded tick. A mismatch means the engine
no longer reproduces the run.

Examples:
  flappy verify 12
  flappy verify --all`,
	Args: func(cmd *cobra.Command, args []string) error {
		if flagVerifyAll {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	Run: runVerify,
}

func init() {
	verifyCmd.Flags().BoolVar(&flagVerifyAll, "all", false, "Verify every run in the journal")
}

func runVerify(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening replay journal: %v", err)
	}
	defer store.Close()

	var ids []int64
	if flagVerifyAll {
		runs, err := store.RecentRuns(-1)
		if err != nil {
			store.Close()
			fail("%v", err)
		}
		for _, r := range runs {
			ids = append(ids, r.ID)
		}
	} else {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			store.Close()
			fail("invalid run id %q", args[0])
		}
		ids = append(ids, id)
	}

	diverged := 0
	for _, id := range ids {
		ok, err := verifyRun(store, id)
		if err != nil {
			store.Close()
			fail("%v", err)
		}
		if !ok {
			diverged++
		}
	}

	if diverged > 0 {
		store.Close()
		fail("%d of %d runs diverged", diverged, len(ids))
	}
}

// verifyRun reports whether a stored run still reproduces.
func verifyRun(store *storage.Store, id int64) (bool, error) {
	rec, err := store.Run(id)
	if err != nil {
		return false, err
	}

	v, err := replay.Verify(rec)
	switch {
	case errors.Is(err, replay.ErrDiverged):
		fmt.Printf("run #%d: DIVERGED (%v)\n", id, err)
		return false, nil
	case err != nil:
		return false, err
	}

	fmt.Printf("run #%d: ok  score %d in %d ticks (%s at %d fps)\n",
		id, v.Score, v.Tick, rec.Duration(flagFPS).Round(100*time.Millisecond), flagFPS)
	return true, nil
}
