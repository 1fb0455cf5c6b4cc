package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/crossing/internal/games/crossing"
	"github.com/vovakirdan/crossing/internal/storage"
)

func TestScoreboardShowsVariantData(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveScore(crossing.IDPlain, "alice", 3); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if err := store.RecordRound(storage.RoundEntry{
		GameID: crossing.IDPlain, Player: "alice", Difficulty: "Hard", Outcome: storage.OutcomeWon, Ticks: 200,
	}); err != nil {
		t.Fatalf("RecordRound() failed: %v", err)
	}

	m := NewScoreboardModel(store, 100, 40)
	if m.Current() != crossing.IDPlain {
		t.Fatalf("first variant = %q, expected %q", m.Current(), crossing.IDPlain)
	}

	view := m.View()
	for _, want := range []string{"alice", "Hard", "200 ticks"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.Current() != crossing.IDAnimated {
		t.Fatalf("tab should switch to %q, got %q", crossing.IDAnimated, m.Current())
	}
	if !strings.Contains(m.View(), "No crossings recorded yet.") {
		t.Error("animated variant has no sessions and should say so")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if next.(ScoreboardModel).Current() != crossing.IDPlain {
		t.Error("tab should wrap around to the first variant")
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	tests := []struct {
		name     string
		key      tea.KeyMsg
		back     bool
		quitting bool
	}{
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, true, false},
		{"q quits", runeKey('q'), false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			next, cmd := NewScoreboardModel(nil, 80, 24).Update(tc.key)
			m := next.(ScoreboardModel)
			if m.IsGoingBack() != tc.back || m.IsQuitting() != tc.quitting {
				t.Errorf("back = %v, quitting = %v, expected %v, %v", m.IsGoingBack(), m.IsQuitting(), tc.back, tc.quitting)
			}
			if cmd == nil {
				t.Error("leaving the scoreboard should end its program")
			}
		})
	}
}
