package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/storage"
)

func TestScoreboardViews(t *testing.T) {
	store := openStore(t)
	for _, s := range []int{12, 35, 4} {
		if _, err := store.SaveScore("breakout", s); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := store.SaveRun(storage.Run{GameID: "breakout", Score: 35, Lives: 2, Outcome: storage.OutcomeWon, Ticks: 3600}); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveRun(storage.Run{GameID: "breakout", Score: 4, Outcome: storage.OutcomeLost, Ticks: 900}); err != nil {
		t.Fatal(err)
	}

	m := NewScoreboardModel(store, 100, 30)
	if m.gameID != "breakout" {
		t.Fatalf("gameID = %q, expected breakout", m.gameID)
	}
	if len(m.table.Rows()) != 3 {
		t.Errorf("score rows = %d, expected 3", len(m.table.Rows()))
	}
	if top := m.table.Rows()[0][1]; top != "35" {
		t.Errorf("top score = %q, expected 35", top)
	}
	if !strings.Contains(m.View(), "Top scores") {
		t.Error("scores tab missing")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.view != boardRuns {
		t.Fatalf("view = %v, expected runs", m.view)
	}
	rows := m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("run rows = %d, expected 2", len(rows))
	}
	// Newest first
	if rows[0][1] != storage.OutcomeLost || rows[0][4] != "0:15" {
		t.Errorf("first run row = %v", rows[0])
	}
	if rows[1][4] != "1:00" {
		t.Errorf("second run time = %q, expected 1:00", rows[1][4])
	}

	line := m.statsLine()
	if !strings.Contains(line, "Games 2") || !strings.Contains(line, "Best 35") {
		t.Errorf("statsLine() = %q", line)
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if !strings.Contains(m.View(), "No scores recorded yet.") {
		t.Error("expected empty message")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || cmd == nil {
		t.Error("esc should go back")
	}
}
