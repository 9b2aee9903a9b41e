package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-baseball/internal/config"
	"github.com/vovakirdan/tui-baseball/internal/core"
	"github.com/vovakirdan/tui-baseball/internal/storage"
)

// SessionModel is the top-level model for one player: the game, and the
// results table it can switch to after a game ends. Local play and SSH
// sessions both run it.
type SessionModel struct {
	store      *storage.Store
	config     core.RuntimeConfig
	game       GameModel
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(ctx context.Context, cfg config.BaseballConfig, store *storage.Store, rc core.RuntimeConfig, player string) SessionModel {
	return SessionModel{
		store:  store,
		config: rc,
		game:   NewGameModel(ctx, cfg, store, rc, player),
	}
}

// Init starts the first game.
func (m SessionModel) Init() tea.Cmd {
	return m.game.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		if m.scoreboard != nil {
			sb, _ := m.scoreboard.Update(msg)
			m.setScoreboard(sb)
		}

	case showScoresMsg:
		sb := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		sb.embedded = true
		m.scoreboard = &sb
		return m, nil

	case backMsg:
		m.scoreboard = nil
		return m, nil

	case tea.KeyMsg:
		if m.scoreboard != nil {
			return m.updateScoreboard(msg)
		}
	}

	return m.updateGame(msg)
}

func (m *SessionModel) setScoreboard(model tea.Model) {
	if sb, ok := model.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}
}

func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	m.setScoreboard(newModel)

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		m.game.Stop()
		return m, tea.Quit
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gm, ok := newModel.(GameModel); ok {
		m.game = gm
	}
	if m.game.quitting {
		m.quitting = true
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}
	return m.game.View()
}
