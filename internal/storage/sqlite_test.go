package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/engine"
	"github.com/vovakirdan/tui-flappy/internal/replay"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testRecording(seed int64, score int, at time.Time) replay.Recording {
	return replay.Recording{
		Seed:        seed,
		Params:      engine.DefaultParams(),
		Activations: []uint64{0, 20, 41, 63},
		Ticks:       140,
		Score:       score,
		CreatedAt:   at,
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}

	if err := store.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
}

func TestStoreSaveAndLoadRun(t *testing.T) {
	store := openTestStore(t)

	at := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	rec := testRecording(42, 3, at)
	rec.Params.Gravity = 0.4

	id, err := store.SaveRun(rec)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected positive ID, got %d", id)
	}

	got, err := store.Run(id)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if got.ID != id || got.Seed != 42 || got.Score != 3 || got.Ticks != 140 {
		t.Errorf("Run() = %+v, fields do not match saved recording", got)
	}
	if got.Params != rec.Params {
		t.Errorf("Params = %+v, expected %+v", got.Params, rec.Params)
	}
	if len(got.Activations) != len(rec.Activations) {
		t.Fatalf("Expected %d activations, got %d", len(rec.Activations), len(got.Activations))
	}
	for i, tick := range rec.Activations {
		if got.Activations[i] != tick {
			t.Errorf("Activation %d = %d, expected %d", i, got.Activations[i], tick)
		}
	}
	if !got.CreatedAt.Equal(at) {
		t.Errorf("CreatedAt = %v, expected %v", got.CreatedAt, at)
	}
}

func TestStoreSavedRunStillVerifies(t *testing.T) {
	store := openTestStore(t)

	e, err := engine.New(engine.DefaultParams(), engine.WithSource(replay.NewSeededSource(7)))
	if err != nil {
		t.Fatalf("engine.New() failed: %v", err)
	}

	var r replay.Recorder
	r.Begin(7, e.Params())
	r.Activate(0)
	v := e.Activate()
	for v.Phase != engine.PhaseEnded {
		v = e.Tick()
	}
	rec, ok := r.Finish(v)
	if !ok {
		t.Fatal("Finish() should complete a started run")
	}

	id, err := store.SaveRun(rec)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	loaded, err := store.Run(id)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if _, err := replay.Verify(loaded); err != nil {
		t.Errorf("Verify() of stored run failed: %v", err)
	}
}

func TestStoreRunNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Run(99)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store.SaveRun(testRecording(1, 9, base))
	store.SaveRun(testRecording(2, 0, base.Add(2*time.Minute)))
	store.SaveRun(testRecording(3, 4, base.Add(time.Minute)))

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	// Ordered by recency, not by score
	expectedSeeds := []int64{2, 3, 1}
	for i, seed := range expectedSeeds {
		if runs[i].Seed != seed {
			t.Errorf("Run %d: expected seed %d, got %d", i, seed, runs[i].Seed)
		}
	}

	if runs[0].Flaps != 4 {
		t.Errorf("Expected 4 flaps, got %d", runs[0].Flaps)
	}
}

func TestStoreRecentRunsLimit(t *testing.T) {
	store := openTestStore(t)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 20; i++ {
		store.SaveRun(testRecording(int64(i), i, base.Add(time.Duration(i)*time.Second)))
	}

	runs, err := store.RecentRuns(5)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 5 {
		t.Errorf("Expected 5 runs, got %d", len(runs))
	}
}

func TestStoreDeleteRun(t *testing.T) {
	store := openTestStore(t)

	id, _ := store.SaveRun(testRecording(1, 1, time.Now()))
	keep, _ := store.SaveRun(testRecording(2, 2, time.Now()))

	if err := store.DeleteRun(id); err != nil {
		t.Fatalf("DeleteRun() failed: %v", err)
	}
	if _, err := store.Run(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("Deleted run should be gone, got %v", err)
	}
	if _, err := store.Run(keep); err != nil {
		t.Errorf("Other run should not be affected: %v", err)
	}

	if err := store.DeleteRun(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("Deleting twice should return ErrNotFound, got %v", err)
	}
}

func TestStorePrune(t *testing.T) {
	store := openTestStore(t)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 6; i++ {
		store.SaveRun(testRecording(int64(i), 0, base.Add(time.Duration(i)*time.Minute)))
	}

	removed, err := store.Prune(2)
	if err != nil {
		t.Fatalf("Prune() failed: %v", err)
	}
	if removed != 4 {
		t.Errorf("Expected 4 removed runs, got %d", removed)
	}

	runs, _ := store.RecentRuns(10)
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs after prune, got %d", len(runs))
	}
	if runs[0].Seed != 5 || runs[1].Seed != 4 {
		t.Errorf("Prune should keep the newest runs, got seeds %d and %d", runs[0].Seed, runs[1].Seed)
	}

	var orphans int
	if err := store.db.QueryRow("SELECT COUNT(*) FROM run_activations WHERE run_id NOT IN (SELECT id FROM runs)").Scan(&orphans); err != nil {
		t.Fatalf("orphan query failed: %v", err)
	}
	if orphans != 0 {
		t.Errorf("Expected no orphaned activations, got %d", orphans)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreRecentRunsNoLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 60; i++ {
		store.SaveRun(testRecording(int64(i), 0, time.Now()))
	}

	runs, err := store.RecentRuns(0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 60 {
		t.Errorf("Expected all 60 runs, got %d", len(runs))
	}
}
