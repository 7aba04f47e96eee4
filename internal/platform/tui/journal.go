package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/replay"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// maxJournalRuns bounds the journal; older runs are pruned after each save.
const maxJournalRuns = 500

// JournalSink returns a run sink that saves finished runs to the store.
// Runs that never scored and lasted under a second are not worth replaying
// and are dropped. A nil store yields a sink that only logs.
func JournalSink(store *storage.Store, logger *log.Logger) func(replay.Recording) {
	if logger == nil {
		logger = log.Default()
	}
	return func(rec replay.Recording) {
		if store == nil {
			logger.Debug("run not journaled, no store", "score", rec.Score)
			return
		}
		if rec.Score == 0 && rec.Ticks < 60 {
			return
		}

		id, err := store.SaveRun(rec)
		if err != nil {
			logger.Error("could not save run", "error", err)
			return
		}
		logger.Debug("run journaled", "id", id, "score", rec.Score, "ticks", rec.Ticks)

		if removed, err := store.Prune(maxJournalRuns); err != nil {
			logger.Warn("could not prune journal", "error", err)
		} else if removed > 0 {
			logger.Debug("journal pruned", "removed", removed)
		}
	}
}
