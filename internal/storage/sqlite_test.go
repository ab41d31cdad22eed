package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func saveScores(t *testing.T, s *Store, gameID string, scores ...int) {
	t.Helper()
	for _, score := range scores {
		if _, err := s.SaveScore(gameID, score); err != nil {
			t.Fatalf("SaveScore(%q, %d) failed: %v", gameID, score, err)
		}
	}
}

func saveRuns(t *testing.T, s *Store, runs ...Run) {
	t.Helper()
	for _, r := range runs {
		if _, err := s.SaveRun(r); err != nil {
			t.Fatalf("SaveRun(%+v) failed: %v", r, err)
		}
	}
}

func TestOpenCreatesNestedDirectories(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "a", "b", "scores.db")

	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("database file missing: %v", err)
	}
}

func TestTopScores(t *testing.T) {
	s := newStore(t)
	saveScores(t, s, "breakout", 10, 5, 20, 5)
	saveScores(t, s, "breakout_demo", 35)

	tests := []struct {
		name  string
		limit int
		want  []int
	}{
		{"all", 10, []int{20, 10, 5, 5}},
		{"limited", 2, []int{20, 10}},
		{"default limit", 0, []int{20, 10, 5, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.TopScores("breakout", tt.limit)
			if err != nil {
				t.Fatalf("TopScores() failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("TopScores() returned %d entries, expected %d", len(got), len(tt.want))
			}
			for i, e := range got {
				if e.Score != tt.want[i] || e.GameID != "breakout" {
					t.Errorf("entry %d = %+v, expected score %d", i, e, tt.want[i])
				}
			}
		})
	}

	// Equal scores keep insertion order
	got, _ := s.TopScores("breakout", 10)
	if got[2].ID > got[3].ID {
		t.Errorf("tied scores out of insertion order: %d before %d", got[2].ID, got[3].ID)
	}
	if got[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not read back")
	}
}

func TestHighScore(t *testing.T) {
	s := newStore(t)

	if best, err := s.HighScore("breakout"); err != nil || best != 0 {
		t.Fatalf("HighScore() on empty store = %d, %v; expected 0", best, err)
	}

	saveScores(t, s, "breakout", 7, 35, 12)
	if best, err := s.HighScore("breakout"); err != nil || best != 35 {
		t.Errorf("HighScore() = %d, %v; expected 35", best, err)
	}
}

func TestRecentRuns(t *testing.T) {
	s := newStore(t)
	saveRuns(t, s,
		Run{GameID: "breakout", Score: 12, Outcome: OutcomeLost, Ticks: 4000},
		Run{GameID: "breakout", Score: 35, Lives: 2, Outcome: OutcomeWon, Ticks: 9000},
		Run{GameID: "breakout", Score: 20, Outcome: OutcomeLost, Ticks: 6000},
	)

	got, err := s.RecentRuns("breakout", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("RecentRuns() returned %d runs, expected 2", len(got))
	}
	if got[0].Score != 20 || got[1].Outcome != OutcomeWon || got[1].Lives != 2 || got[1].Ticks != 9000 {
		t.Errorf("runs not newest first: %+v", got)
	}

	if _, err := s.SaveRun(Run{GameID: "breakout", Outcome: "draw"}); err == nil {
		t.Error("SaveRun() accepted an unknown outcome")
	}
}

func TestGameStats(t *testing.T) {
	s := newStore(t)
	saveScores(t, s, "breakout", 35, 15)
	saveRuns(t, s,
		Run{GameID: "breakout", Score: 35, Lives: 1, Outcome: OutcomeWon},
		Run{GameID: "breakout", Score: 15, Outcome: OutcomeLost},
		Run{GameID: "breakout", Score: 3, Outcome: OutcomeLost},
	)

	stats, err := s.GetGameStats("breakout")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 35 || stats.AvgScore != 25 || stats.TotalScore != 50 {
		t.Errorf("score stats = %+v", stats)
	}
	if stats.Wins != 1 || stats.Losses != 2 {
		t.Errorf("Wins/Losses = %d/%d, expected 1/2", stats.Wins, stats.Losses)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}

	empty, err := s.GetGameStats("breakout_demo")
	if err != nil {
		t.Fatalf("GetGameStats() on an unplayed game failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.Wins != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unplayed game stats = %+v", empty)
	}
}

func TestClearScores(t *testing.T) {
	s := newStore(t)
	saveScores(t, s, "breakout", 10, 20)
	saveScores(t, s, "breakout_demo", 30)
	saveRuns(t, s, Run{GameID: "breakout", Score: 20, Outcome: OutcomeLost})

	if err := s.ClearScores("breakout"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := s.TopScores("breakout", 10); len(scores) != 0 {
		t.Errorf("%d scores left after clear", len(scores))
	}
	if runs, _ := s.RecentRuns("breakout", 10); len(runs) != 0 {
		t.Errorf("%d runs left after clear", len(runs))
	}
	if other, _ := s.TopScores("breakout_demo", 10); len(other) != 1 {
		t.Error("clearing one game touched another")
	}
}

func TestReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	saveScores(t, s, "breakout", 12)
	saveRuns(t, s, Run{GameID: "breakout", Score: 12, Outcome: OutcomeLost})
	s.Close()

	s, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer s.Close()

	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		t.Fatalf("user_version: %v", err)
	}
	if version != len(migrations) {
		t.Errorf("user_version = %d, expected %d", version, len(migrations))
	}
	if best, err := s.HighScore("breakout"); err != nil || best != 12 {
		t.Errorf("HighScore() = %d, %v; expected 12", best, err)
	}
	if runs, err := s.RecentRuns("breakout", 0); err != nil || len(runs) != 1 {
		t.Errorf("RecentRuns() = %d runs, %v; expected 1", len(runs), err)
	}
}
