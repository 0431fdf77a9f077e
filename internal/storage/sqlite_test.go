package storage

import (
	"os"
	"path/filepath"
	"testing"
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

func saveScore(t *testing.T, store *Store, score uint64) {
	t.Helper()
	_, err := store.SaveScore(Result{RunID: NewRunID(), Player: "local", Score: score, MaxTile: 64, Moves: 10})
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	saveScore(t, store, 512)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 512 {
		t.Errorf("Expected high score 512 after reopen, got %d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	r := Result{
		RunID:   NewRunID(),
		Player:  "alice",
		Theme:   "bluered",
		Score:   2468,
		MaxTile: 256,
		Moves:   187,
	}
	id, err := store.SaveScore(r)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected positive ID, got %d", id)
	}

	entry, err := store.ScoreByRun(r.RunID)
	if err != nil {
		t.Fatalf("ScoreByRun() failed: %v", err)
	}
	if entry == nil {
		t.Fatal("ScoreByRun() returned nil for a saved run")
	}
	if entry.ID != id || entry.Player != "alice" || entry.Theme != "bluered" ||
		entry.Score != 2468 || entry.MaxTile != 256 || entry.Moves != 187 {
		t.Errorf("Stored entry mismatch: %+v", entry)
	}
	if entry.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	missing, err := store.ScoreByRun("no-such-run")
	if err != nil {
		t.Fatalf("ScoreByRun() failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for unknown run, got %+v", missing)
	}
}

func TestStoreSaveRejectsDuplicateRun(t *testing.T) {
	store := openTestStore(t)

	r := Result{RunID: NewRunID(), Score: 100}
	if _, err := store.SaveScore(r); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore(r); err == nil {
		t.Error("Saving the same run twice should fail")
	}
	if _, err := store.SaveScore(Result{Score: 5}); err == nil {
		t.Error("Saving without a run id should fail")
	}
}

func TestStoreTopScoresOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []uint64{100, 500, 300, 200, 400} {
		saveScore(t, store, s)
	}

	// Request only top 3
	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreTopScoresDefaultLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 15 {
		saveScore(t, store, uint64(i*4))
	}

	scores, err := store.TopScores(0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != DefaultLimit {
		t.Errorf("Expected %d scores, got %d", DefaultLimit, len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty store, got %d", high)
	}

	saveScore(t, store, 100)
	saveScore(t, store, 300)
	saveScore(t, store, 200)

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	saveScore(t, store, 100)
	saveScore(t, store, 200)

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, err := store.AllScores()
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	// Add many scores
	for i := range 20 {
		saveScore(t, store, uint64(i*10))
	}

	scores, err := store.AllScores()
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	results := []Result{
		{RunID: NewRunID(), Score: 100, MaxTile: 32, Moves: 40},
		{RunID: NewRunID(), Score: 300, MaxTile: 128, Moves: 90},
		{RunID: NewRunID(), Score: 200, MaxTile: 64, Moves: 70},
	}
	for _, r := range results {
		if _, err := store.SaveScore(r); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, want 3", stats.GamesCount)
	}
	if stats.HighScore != 300 || stats.TotalScore != 600 || stats.AvgScore != 200 {
		t.Errorf("score stats = %+v", stats)
	}
	if stats.BestTile != 128 || stats.TotalMoves != 200 {
		t.Errorf("tile/move stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
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

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestNewRunIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		id := NewRunID()
		if seen[id] {
			t.Fatalf("duplicate run id %s", id)
		}
		seen[id] = true
	}
}
