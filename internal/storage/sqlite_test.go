package storage

import (
	"context"
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

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

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

func TestStoreMigrations(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	version, err := store.SchemaVersion(context.Background())
	if err != nil {
		t.Fatalf("SchemaVersion() failed: %v", err)
	}
	if version != 2 {
		t.Errorf("SchemaVersion() = %d, expected 2", version)
	}
	if _, err := store.SaveScore("blockfall", 12); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	// Reopening must not re-run migrations or lose data.
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("blockfall")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 12 {
		t.Errorf("HighScore() after reopen = %d, expected 12", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("blockfall", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("other", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("blockfall", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %+v", scores)
	}
	if scores[0].Level != 1 {
		t.Errorf("Level = %d, expected default 1", scores[0].Level)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	other, err := store.TopScores("other", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 score for other game, got %d", len(other))
	}
}

func TestStoreSaveEntry(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveEntry(ScoreEntry{GameID: "blockfall", Score: 42, Level: 4, Frames: 3600, Seed: 77})
	if err != nil {
		t.Fatalf("SaveEntry() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("SaveEntry() id = %d, expected positive", id)
	}

	scores, err := store.AllScores("blockfall")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected 1 score, got %d", len(scores))
	}
	got := scores[0]
	if got.Score != 42 || got.Level != 4 || got.Frames != 3600 || got.Seed != 77 {
		t.Errorf("AllScores()[0] = %+v, expected the saved details", got)
	}

	if _, err := store.SaveEntry(ScoreEntry{Score: 1}); err == nil {
		t.Error("SaveEntry() without game id should fail")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("blockfall", (i+1)*10)
	}

	scores, err := store.TopScores("blockfall", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 50 || scores[1].Score != 40 || scores[2].Score != 30 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, err := store.TopScores("blockfall", 0)
	if err != nil {
		t.Fatalf("TopScores(0) failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("TopScores(0) should default to 10 rows, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("blockfall")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("blockfall", 10)
	store.SaveScore("blockfall", 30)
	store.SaveScore("blockfall", 20)

	high, err = store.HighScore("blockfall")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 30 {
		t.Errorf("Expected high score of 30, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("blockfall", 10)
	store.SaveScore("blockfall", 20)
	store.SaveScore("other", 30)

	if err := store.ClearScores("blockfall"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	cleared, _ := store.TopScores("blockfall", 10)
	if len(cleared) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(cleared))
	}
	other, _ := store.TopScores("other", 10)
	if len(other) != 1 {
		t.Errorf("Other game should not be affected by clearing blockfall")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("blockfall", i)
	}

	scores, err := store.AllScores("blockfall")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("blockfall")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("GetGameStats() on empty store = %+v", empty)
	}

	store.SaveEntry(ScoreEntry{GameID: "blockfall", Score: 10, Level: 2})
	store.SaveEntry(ScoreEntry{GameID: "blockfall", Score: 30, Level: 5})

	stats, err := store.GetGameStats("blockfall")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.BestLevel != 5 {
		t.Errorf("GetGameStats() = %+v", stats)
	}
	if stats.AvgScore != 20 || stats.TotalScore != 40 {
		t.Errorf("AvgScore = %v, TotalScore = %d, expected 20 and 40", stats.AvgScore, stats.TotalScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
