package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func TestMenuShowsHighScore(t *testing.T) {
	isolate(t)
	store := openStore(t)
	store.SaveRun(storage.Run{GameID: runner.GameID, Score: 1234})

	m := NewMenuModel(store, testConfig())
	view := m.View()

	if !strings.Contains(view, "HI 01234") {
		t.Errorf("menu should show the stored high score:\n%s", view)
	}
	if !strings.Contains(view, "> Play") {
		t.Error("cursor should start on Play")
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(nil, testConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	if m.Chosen() != ChoiceScores {
		t.Errorf("Chosen() = %v, expected scores", m.Chosen())
	}
	if cmd == nil {
		t.Error("choosing should end the menu program")
	}
}

func TestSessionFlow(t *testing.T) {
	isolate(t)
	store := openStore(t)

	m := NewSessionModel(store, testConfig(), Player{Name: "bob"}, testLogger)

	// Menu -> game
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("screen = %v, expected game", m.screen)
	}
	if !strings.Contains(m.View(), "Press Space to start") {
		t.Error("game should open idle")
	}

	// Game -> menu
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, expected menu", m.screen)
	}

	// Menu -> scoreboard -> menu
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("screen = %v, expected scores", m.screen)
	}
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty scoreboard message missing")
	}

	m = updateSession(t, m, runeKey('b'))
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, expected menu", m.screen)
	}

	// Quit from the menu ends the session
	next, cmd := m.Update(runeKey('q'))
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("q should quit the session")
	}
}

func TestScoreboardViews(t *testing.T) {
	isolate(t)
	store := openStore(t)
	store.SaveRun(storage.Run{GameID: runner.GameID, Player: "alice", Score: 500, Speed: 420})
	store.SaveRun(storage.Run{GameID: runner.GameID, Player: "bob", Score: 300, Speed: 380})

	m := NewScoreboardModel(store, "bob", 100, 30)
	if len(m.runs) != 2 || m.runs[0].Player != "alice" {
		t.Fatalf("top view = %+v", m.runs)
	}
	if view := m.View(); !strings.Contains(view, "Runs: 2") || !strings.Contains(view, "00500") {
		t.Errorf("scoreboard view missing stats or scores:\n%s", view)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.view != viewMine || len(m.runs) != 1 || m.runs[0].Player != "bob" {
		t.Errorf("mine view = %+v", m.runs)
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "bob", 80, 24)
	if !strings.Contains(m.View(), "not available") {
		t.Error("expected a storage warning")
	}
}

func TestFormatDuration(t *testing.T) {
	if got := formatDuration(0); got != "0:00" {
		t.Errorf("formatDuration(0) = %q", got)
	}
	if got := formatDuration(83_600_000_000); got != "1:24" {
		t.Errorf("formatDuration(83.6s) = %q", got)
	}
}
