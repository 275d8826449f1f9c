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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
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

func TestLoadStarsEmpty(t *testing.T) {
	store := openTestStore(t)

	stars, err := store.LoadStars("alice")
	if err != nil {
		t.Fatalf("LoadStars() failed: %v", err)
	}
	if stars != (Stars{}) {
		t.Errorf("LoadStars() = %+v, expected no stars", stars)
	}
}

func TestStarsRoundTrip(t *testing.T) {
	store := openTestStore(t)

	want := Stars{Runner: true, Tower: true, Orbit: true}
	if err := store.SaveStars("alice", want); err != nil {
		t.Fatalf("SaveStars() failed: %v", err)
	}

	got, err := store.LoadStars("alice")
	if err != nil {
		t.Fatalf("LoadStars() failed: %v", err)
	}
	if got != want {
		t.Errorf("LoadStars() = %+v, expected %+v", got, want)
	}

	// Clearing one star removes its row
	want.Tower = false
	if err := store.SaveStars("alice", want); err != nil {
		t.Fatalf("SaveStars() failed: %v", err)
	}
	got, _ = store.LoadStars("alice")
	if got != want {
		t.Errorf("LoadStars() after clear = %+v, expected %+v", got, want)
	}
}

func TestStarsPerProfile(t *testing.T) {
	store := openTestStore(t)

	if err := store.AwardStar("alice", "mines"); err != nil {
		t.Fatalf("AwardStar() failed: %v", err)
	}
	if err := store.AwardStar("alice", "mines"); err != nil {
		t.Fatalf("AwardStar() twice failed: %v", err)
	}

	bob, _ := store.LoadStars("bob")
	if bob.Count() != 0 {
		t.Errorf("bob has %d stars, expected 0", bob.Count())
	}
	alice, _ := store.LoadStars("alice")
	if !alice.Mines || alice.Count() != 1 {
		t.Errorf("alice stars = %+v, expected only mines", alice)
	}
}

func TestAwardStarUnknownGame(t *testing.T) {
	store := openTestStore(t)

	if err := store.AwardStar("alice", "fireworks"); err == nil {
		t.Error("AwardStar() for a game without a star slot should fail")
	}
}

func TestResetStars(t *testing.T) {
	store := openTestStore(t)

	all := Stars{Runner: true, Memory: true, Mines: true, Tower: true, Orbit: true}
	store.SaveStars("alice", all)
	store.SaveStars("bob", all)

	if err := store.ResetStars("alice"); err != nil {
		t.Fatalf("ResetStars() failed: %v", err)
	}

	alice, _ := store.LoadStars("alice")
	if alice.Count() != 0 {
		t.Errorf("alice has %d stars after reset, expected 0", alice.Count())
	}
	bob, _ := store.LoadStars("bob")
	if !bob.Unlocked() {
		t.Error("resetting alice should not touch bob")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("alice", "orbit", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	store.SaveScore("bob", "orbit", 150)
	store.SaveScore("alice", "runner", 500)

	scores, err := store.TopScores("orbit", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 4 {
		t.Fatalf("Expected 4 scores, got %d", len(scores))
	}

	expected := []struct {
		profile string
		score   int
	}{
		{"alice", 200}, {"bob", 150}, {"alice", 100}, {"alice", 50},
	}
	for i, e := range expected {
		if scores[i].Score != e.score || scores[i].Profile != e.profile {
			t.Errorf("scores[%d] = %s/%d, expected %s/%d", i, scores[i].Profile, scores[i].Score, e.profile, e.score)
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("alice", "tower", (i+1)*100)
	}

	scores, err := store.TopScores("tower", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore("alice", "runner")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("BestScore() with no rounds = %d, expected 0", best)
	}

	store.SaveScore("alice", "runner", 100)
	store.SaveScore("alice", "runner", 300)
	store.SaveScore("alice", "runner", 200)
	store.SaveScore("bob", "runner", 900)

	best, err = store.BestScore("alice", "runner")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 300 {
		t.Errorf("BestScore() = %d, expected 300", best)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("alice", "orbit", 100)
	store.SaveScore("alice", "orbit", 200)
	store.SaveScore("alice", "mines", 7)

	if err := store.ClearScores("orbit"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	orbit, _ := store.TopScores("orbit", 10)
	if len(orbit) != 0 {
		t.Errorf("Expected 0 orbit scores after clear, got %d", len(orbit))
	}
	mines, _ := store.TopScores("mines", 10)
	if len(mines) != 1 {
		t.Errorf("Mines scores should not be affected by clearing orbit")
	}
}

func TestGetGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("alice", "memory", 4)
	store.SaveScore("bob", "memory", 8)
	store.AwardStar("alice", "memory")

	stats, err := store.GetGameStats("memory")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.HighScore != 8 {
		t.Errorf("HighScore = %d, expected 8", stats.HighScore)
	}
	if stats.AvgScore != 6 {
		t.Errorf("AvgScore = %v, expected 6", stats.AvgScore)
	}
	if stats.TotalScore != 12 {
		t.Errorf("TotalScore = %d, expected 12", stats.TotalScore)
	}
	if stats.Stars != 1 {
		t.Errorf("Stars = %d, expected 1", stats.Stars)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	empty, err := store.GetGameStats("tower")
	if err != nil {
		t.Fatalf("GetGameStats() on empty game failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v, expected zero values", empty)
	}
}
