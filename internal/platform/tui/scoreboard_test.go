package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

func TestScoreboardShowsStats(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "snake.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	empty := NewScoreboardModel(store, "snake-20x20", 100, 30)
	if view := empty.View(); !strings.Contains(view, "No scores recorded yet.") || strings.Contains(view, "games") {
		t.Errorf("empty scoreboard:\n%s", view)
	}

	store.SaveScore(storage.ScoreEntry{GameID: "snake-20x20", SessionID: "a", Player: "ann", Score: 90, Level: 2, Length: 12})
	store.SaveScore(storage.ScoreEntry{GameID: "snake-20x20", SessionID: "b", Player: "bob", Score: 30, Level: 1, Length: 6})
	store.HighScoreSlot("snake-20x20").Save(90)

	m := NewScoreboardModel(store, "snake-20x20", 100, 30)
	view := m.View()
	for _, want := range []string{"Best: 90", "2 games  avg 60.0  best level 2  longest 12", "ann", "bob"} {
		if !strings.Contains(view, want) {
			t.Errorf("scoreboard missing %q:\n%s", want, view)
		}
	}
}

func TestScoreRows(t *testing.T) {
	rows := ScoreRows([]storage.ScoreEntry{{Score: 40, Level: 1, Length: 7}})
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0][0] != "#1" || rows[0][1] != "40" || rows[0][4] != "-" {
		t.Errorf("row = %v", rows[0])
	}
	if len(rows[0]) != len(ScoreColumns()) {
		t.Errorf("row has %d cells for %d columns", len(rows[0]), len(ScoreColumns()))
	}
}
