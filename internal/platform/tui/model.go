package tui

import (
	"context"
	"errors"
	"math/rand"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-baseball/internal/baseball"
	"github.com/vovakirdan/tui-baseball/internal/config"
	"github.com/vovakirdan/tui-baseball/internal/core"
	"github.com/vovakirdan/tui-baseball/internal/storage"
)

// The field is drawn at a fixed size and centered in larger terminals.
const (
	fieldW = 80
	fieldH = 24
)

// showScoresMsg asks the session to switch to the results table.
type showScoresMsg struct{}

// match is one game in progress: the machine goroutine and the channels
// that connect it to the model.
type match struct {
	id      int
	ctx     context.Context
	cancel  context.CancelFunc
	events  chan tea.Msg
	poller  *baseball.KeyPoller
	tracker *pitchTracker
	machine *baseball.Machine
}

func newMatch(parent context.Context, id int, cfg config.BaseballConfig, seed int64) *match {
	ctx, cancel := context.WithCancel(parent)
	g := &match{
		id:      id,
		ctx:     ctx,
		cancel:  cancel,
		events:  make(chan tea.Msg, 16),
		poller:  baseball.NewKeyPoller(),
		tracker: &pitchTracker{},
	}

	sampler := baseball.NewWindowSampler(g.poller, baseball.SystemClock{})
	sampler.Tick = cfg.Tick()
	sampler.OnTick = g.tracker.update

	sink := &chanSink{ctx: ctx, match: id, events: g.events, tracker: g.tracker}
	engine := baseball.NewAtBatEngine(rand.New(rand.NewSource(seed)))
	g.machine = baseball.NewMachine(cfg.MachineConfig(), engine, sampler, baseball.SystemClock{}, sink)
	return g
}

// run plays the game to the end and closes the event channel.
func (g *match) run() tea.Cmd {
	return func() tea.Msg {
		defer close(g.events)
		res, err := g.machine.Play(g.ctx)
		select {
		case g.events <- gameDoneMsg{match: g.id, result: res, err: err}:
		case <-g.ctx.Done():
		}
		return nil
	}
}

func (g *match) start() tea.Cmd {
	return tea.Batch(g.run(), waitForEvent(g.events))
}

// GameModel is the Bubble Tea model for one player at the plate.
type GameModel struct {
	parent context.Context
	cfg    config.BaseballConfig
	rc     core.RuntimeConfig
	store  *storage.Store
	player string

	match   *match
	screen  *core.Screen
	snap    baseball.Snapshot
	message string
	result  *baseball.Result
	err     error

	keys     GameKeyMap
	help     help.Model
	width    int
	height   int
	quitting bool
}

// NewGameModel creates a game model. The first pitch is thrown when the
// program calls Init. Cancelling ctx stops any game in progress.
func NewGameModel(ctx context.Context, cfg config.BaseballConfig, store *storage.Store, rc core.RuntimeConfig, player string) GameModel {
	cfg = cfg.Normalize()
	g := newMatch(ctx, 1, cfg, rc.ResolveSeed())

	return GameModel{
		parent: ctx,
		cfg:    cfg,
		rc:     rc,
		store:  store,
		player: player,
		match:  g,
		screen: core.NewScreen(fieldW, fieldH),
		snap:   g.machine.State().Snapshot(),
		keys:   DefaultGameKeyMap(),
		help:   help.New(),
		width:  rc.ScreenW,
		height: rc.ScreenH,
	}
}

// Init starts the game and the redraw loop.
func (m GameModel) Init() tea.Cmd {
	return tea.Batch(m.match.start(), tickCmd(m.rc.TickRate))
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if m.quitting {
			return m, nil
		}
		return m, tickCmd(m.rc.TickRate)

	case snapshotMsg:
		if msg.match != m.match.id {
			return m, nil
		}
		m.snap = msg.snap
		return m, waitForEvent(m.match.events)

	case messageMsg:
		if msg.match != m.match.id {
			return m, nil
		}
		m.message = msg.text
		return m, waitForEvent(m.match.events)

	case gameDoneMsg:
		if msg.match != m.match.id {
			return m, nil
		}
		return m.handleGameDone(msg), nil
	}

	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		m.match.cancel()
		return m, tea.Quit

	case core.ActionSwing:
		if m.result == nil {
			m.match.poller.Press()
		}

	case core.ActionRestart:
		if m.result != nil {
			return m.restart()
		}

	case core.ActionScores:
		if m.result != nil {
			return m, func() tea.Msg { return showScoresMsg{} }
		}

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m GameModel) handleGameDone(msg gameDoneMsg) GameModel {
	res := msg.result
	m.result = &res
	m.snap = m.match.machine.State().Snapshot()

	if msg.err != nil && !errors.Is(msg.err, context.Canceled) {
		m.err = msg.err
		m.message = msg.err.Error()
	}

	if res.Complete && m.store != nil {
		//nolint:errcheck // Best-effort save, the result stays on screen regardless
		m.store.SaveGame(m.player, res)
	}
	return m
}

// restart throws out the finished game and starts a fresh one with a
// new seed.
func (m GameModel) restart() (tea.Model, tea.Cmd) {
	m.match.cancel()

	rc := m.rc
	rc.Seed = 0
	m.match = newMatch(m.parent, m.match.id+1, m.cfg, rc.ResolveSeed())
	m.snap = m.match.machine.State().Snapshot()
	m.message = ""
	m.result = nil
	m.err = nil
	return m, m.match.start()
}

// Result returns the finished game, or nil while it is still being played.
func (m GameModel) Result() *baseball.Result {
	return m.result
}

// Stop cancels the game in progress.
func (m GameModel) Stop() {
	m.match.cancel()
}

// View renders the field with the help line below it.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	if m.width > 0 && m.height > 0 && (m.width < fieldW || m.height < fieldH) {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(lipgloss.Color("241")).
				Render("Terminal too small: need 80x24"))
	}

	inFlight, progress := m.match.tracker.get()
	DrawField(m.screen, FieldView{
		Snap:     m.snap,
		Message:  m.message,
		InFlight: inFlight && m.result == nil,
		Progress: progress,
	})

	view := RenderScreen(m.screen)
	if m.height == 0 || m.height > fieldH {
		helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
		view = lipgloss.JoinVertical(lipgloss.Left, view, helpStyle.Render(m.help.View(m.keys)))
	}

	if m.width > fieldW || m.height > fieldH+1 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

// Run plays games in the terminal until the player quits.
func Run(cfg config.BaseballConfig, store *storage.Store, rc core.RuntimeConfig, player string) error {
	model := NewSessionModel(context.Background(), cfg, store, rc, player)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
