package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-baseball/internal/baseball"
	"github.com/vovakirdan/tui-baseball/internal/config"
	"github.com/vovakirdan/tui-baseball/internal/core"
	"github.com/vovakirdan/tui-baseball/internal/storage"
)

func newTestGame(t *testing.T, store *storage.Store) GameModel {
	t.Helper()
	rc := core.DefaultConfig()
	rc.Seed = 42
	m := NewGameModel(context.Background(), config.DefaultBaseballConfig(), store, rc, "tester")
	t.Cleanup(m.Stop)
	return m
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

func finished(m GameModel) gameDoneMsg {
	return gameDoneMsg{
		match: m.match.id,
		result: baseball.Result{
			Teams:     [2]string{"Yankees", "Red Sox"},
			Score:     [2]int{2, 1},
			LineScore: [][2]int{{2, 0}, {0, 1}, {0, 0}},
			Innings:   3,
			Winner:    baseball.Visitor,
			Complete:  true,
		},
	}
}

func TestSwingPressesPoller(t *testing.T) {
	m := newTestGame(t, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	if pressed, _ := m.match.poller.PollSwing(); !pressed {
		t.Error("space should queue a swing")
	}
}

func TestMachineEventsUpdateView(t *testing.T) {
	m := newTestGame(t, nil)

	snap := m.snap
	snap.Strikes = 2
	m, cmd := update(t, m, snapshotMsg{match: m.match.id, snap: snap})
	if m.snap.Strikes != 2 {
		t.Error("snapshot not applied")
	}
	if cmd == nil {
		t.Error("model should keep waiting for events")
	}

	m, _ = update(t, m, messageMsg{match: m.match.id, text: baseball.MsgSwingingStrike})
	if !strings.Contains(m.View(), baseball.MsgSwingingStrike) {
		t.Error("message missing from the view")
	}
}

func TestStaleMatchEventsIgnored(t *testing.T) {
	m := newTestGame(t, nil)

	m, _ = update(t, m, messageMsg{match: m.match.id + 1, text: "from another game"})
	if m.message != "" {
		t.Errorf("stale event applied: %q", m.message)
	}
}

func TestRestartOnlyAfterGameOver(t *testing.T) {
	m := newTestGame(t, nil)
	first := m.match.id

	m, _ = update(t, m, runeKey('r'))
	if m.match.id != first {
		t.Fatal("restart should be ignored while the game is running")
	}

	m, _ = update(t, m, finished(m))
	if m.Result() == nil {
		t.Fatal("game should be over")
	}

	m, cmd := update(t, m, runeKey('r'))
	t.Cleanup(m.Stop)
	if m.match.id != first+1 || m.Result() != nil || cmd == nil {
		t.Errorf("restart did not start a new game: id=%d result=%v", m.match.id, m.Result())
	}
}

func TestFinishedGameIsSaved(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "games.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestGame(t, store)
	_, _ = update(t, m, finished(m))

	games, err := store.RecentGames(10)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if len(games) != 1 || games[0].Player != "tester" || games[0].VisitorScore != 2 {
		t.Errorf("saved games = %+v", games)
	}
}

func TestInterruptedGameIsNotSaved(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "games.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestGame(t, store)
	done := finished(m)
	done.result.Complete = false
	_, _ = update(t, m, done)

	games, _ := store.RecentGames(10)
	if len(games) != 0 {
		t.Errorf("interrupted game was saved: %+v", games)
	}
}

func TestQuitCancelsGame(t *testing.T) {
	m := newTestGame(t, nil)

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit should send tea.QuitMsg")
	}
	if m.match.ctx.Err() == nil {
		t.Error("quit should cancel the game context")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestSessionSwitchesToScoreboard(t *testing.T) {
	rc := core.DefaultConfig()
	rc.Seed = 1
	s := NewSessionModel(context.Background(), config.DefaultBaseballConfig(), nil, rc, "tester")
	t.Cleanup(s.game.Stop)

	step := func(msg tea.Msg) tea.Cmd {
		next, cmd := s.Update(msg)
		s = next.(SessionModel)
		return cmd
	}

	// "s" does nothing while the game is on.
	if cmd := step(runeKey('s')); cmd != nil {
		t.Error("scores should wait for the game to end")
	}

	step(finished(s.game))
	cmd := step(runeKey('s'))
	if cmd == nil {
		t.Fatal("s after the game should ask for the scoreboard")
	}
	step(cmd())
	if s.scoreboard == nil {
		t.Fatal("scoreboard not shown")
	}
	if !strings.Contains(s.View(), "RESULTS") {
		t.Error("scoreboard view missing its title")
	}

	cmd = step(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("back should return a command")
	}
	step(cmd())
	if s.scoreboard != nil {
		t.Error("back should return to the game")
	}
}
