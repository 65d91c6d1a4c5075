package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

func TestScoreboardShowsBestCompletions(t *testing.T) {
	registerTestPacks(t)
	store := openTestStore(t)

	for _, c := range []storage.Completion{
		{Pack: "beta", Level: 2, LevelName: "Second", Moves: 12, Pushes: 3, Duration: 9 * time.Second},
		{Pack: "beta", Level: 2, LevelName: "Second", Moves: 10, Pushes: 4, Duration: 75 * time.Second},
	} {
		if _, err := store.SaveCompletion(c); err != nil {
			t.Fatalf("SaveCompletion() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("beta", 1); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	m := NewScoreboardModel(store, 100, 30)
	if !strings.Contains(m.View(), "No levels solved yet") {
		t.Error("alpha has no records")
	}

	m = send(t, m, keyMsg("tab"))
	if len(m.records) != 1 || m.records[0].Moves != 10 {
		t.Fatalf("records = %+v, want the 10-move completion", m.records)
	}

	view := m.View()
	for _, want := range []string{"RECORDS - Beta", "Second", "1:15", "Solved 1/3", "Runs 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m = send(t, m, keyMsg("left"))
	if m.packCursor != 0 {
		t.Errorf("packCursor = %d after left, want 0", m.packCursor)
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	registerTestPacks(t)

	m := NewScoreboardModel(nil, 60, 20)
	if m.showSidebar {
		t.Error("narrow screens use tabs instead of the sidebar")
	}

	back := send(t, m, keyMsg("esc"))
	if !back.IsGoingBack() || back.IsQuitting() {
		t.Error("esc should go back")
	}

	quit := send(t, m, keyMsg("q"))
	if !quit.IsQuitting() {
		t.Error("q should quit")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{1500 * time.Millisecond, "0:02"},
		{75 * time.Second, "1:15"},
		{11 * time.Minute, "11:00"},
	}
	for _, tc := range tests {
		if got := formatDuration(tc.d); got != tc.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}
