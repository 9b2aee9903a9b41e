package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-baseball/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the team sidebar
	sidebarWidth       = 22  // Width of team sidebar
	maxGames           = 200 // Max games to load
	allTeams           = "All teams"
)

// backMsg tells the session that the results table was closed.
type backMsg struct{}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Back     key.Binding
	Quit     key.Binding
	NextTeam key.Binding
	PrevTeam key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.NextTeam, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.NextTeam, k.PrevTeam},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "box score"),
		),
		NextTeam: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next team"),
		),
		PrevTeam: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev team"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the results screen.
type ScoreboardModel struct {
	teams       []string // "All teams" followed by every team on record
	teamCursor  int
	store       *storage.Store
	games       []storage.GameRecord // games shown for the selected team
	record      *storage.TeamRecord  // nil for "All teams"
	detail      *boxScore            // open box score, if any
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	embedded    bool // Back returns to the game instead of quitting
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// boxScore is the detail view of one stored game.
type boxScore struct {
	game  storage.GameRecord
	plays []storage.PlayRecord
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		teams:       []string{allTeams},
		store:       store,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	if store != nil {
		if teams, err := store.Teams(); err == nil {
			m.teams = append(m.teams, teams...)
		}
	}

	m.table = m.createTable()
	m.loadGames()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	// Calculate available width for team names
	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	teamWidth := 14
	if w := (tableWidth - 40) / 2; w > teamWidth {
		teamWidth = min(w, 20)
	}

	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Visitor", Width: teamWidth},
		{Title: "Score", Width: 7},
		{Title: "Home", Width: teamWidth},
		{Title: "Inn", Width: 4},
		{Title: "Player", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Leave room for header, record, help
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (m *ScoreboardModel) selectedTeam() string {
	return m.teams[m.teamCursor]
}

// loadGames loads the games and record for the selected team.
func (m *ScoreboardModel) loadGames() {
	m.games = nil
	m.record = nil
	if m.store == nil {
		m.updateTableRows()
		return
	}

	games, err := m.store.RecentGames(maxGames)
	if err == nil {
		team := m.selectedTeam()
		for _, g := range games {
			if team == allTeams || g.Visitor == team || g.Home == team {
				m.games = append(m.games, g)
			}
		}
	}

	if team := m.selectedTeam(); team != allTeams {
		if rec, err := m.store.TeamRecord(team); err == nil {
			m.record = &rec
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the current games.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.games))
	for i, g := range m.games {
		score := fmt.Sprintf("%d-%d", g.VisitorScore, g.HomeScore)
		if !g.Complete {
			score += "*"
		}
		rows[i] = table.Row{
			g.CreatedAt.Format("Jan 02 15:04"),
			g.Visitor,
			score,
			g.Home,
			fmt.Sprintf("%d", g.Innings),
			g.Player,
		}
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// openDetail loads the box score for the highlighted game.
func (m *ScoreboardModel) openDetail() {
	if m.store == nil || len(m.games) == 0 {
		return
	}
	i := m.table.Cursor()
	if i < 0 || i >= len(m.games) {
		return
	}

	g, err := m.store.GameByID(m.games[i].ID)
	if err != nil || g == nil {
		return
	}
	plays, err := m.store.GamePlays(g.ID)
	if err != nil {
		plays = nil
	}
	m.detail = &boxScore{game: *g, plays: plays}
}

func (m *ScoreboardModel) moveTeam(delta int) {
	n := len(m.teams)
	m.teamCursor = ((m.teamCursor+delta)%n + n) % n
	m.detail = nil
	m.loadGames()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			if m.detail != nil {
				m.detail = nil
				return m, nil
			}
			m.goingBack = true
			if m.embedded {
				return m, func() tea.Msg { return backMsg{} }
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			m.openDetail()
			return m, nil

		case key.Matches(msg, m.keys.NextTeam):
			m.moveTeam(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevTeam):
			m.moveTeam(-1)
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			if m.detail != nil {
				return m, nil
			}
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || (m.goingBack && !m.embedded) {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "RESULTS"
	if team := m.selectedTeam(); team != allTeams {
		title = fmt.Sprintf("RESULTS - %s", team)
	}

	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the team sidebar next to the results.
func (m ScoreboardModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Teams\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, team := range m.teams {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.teamCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + truncate(team, sidebarWidth-6)))
		sidebar.WriteString("\n")
	}

	contentStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", contentStyle.Render(m.renderContent()))
}

// renderNarrowLayout shows the selected team above the results.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	b.WriteString(centerText(fmt.Sprintf("< %s >", m.selectedTeam()), m.width))
	b.WriteString("\n\n")

	contentStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(contentStyle.Render(m.renderContent()), m.width))
	return b.String()
}

// renderContent renders the box score, the table, or an empty message.
func (m ScoreboardModel) renderContent() string {
	if m.detail != nil {
		return renderBoxScore(*m.detail)
	}

	if len(m.games) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No games recorded yet.\nPlay nine... or three innings first!")
	}

	var b strings.Builder
	if m.record != nil {
		r := m.record
		fmt.Fprintf(&b, "Record %d-%d-%d   Runs %d for, %d against\n\n",
			r.Wins, r.Losses, r.Ties, r.RunsFor, r.RunsAgainst)
	}
	b.WriteString(m.table.View())
	return b.String()
}

func renderBoxScore(d boxScore) string {
	var b strings.Builder
	g := d.game

	b.WriteString(lipgloss.NewStyle().Bold(true).Render(
		fmt.Sprintf("%s at %s, %s", g.Visitor, g.Home, g.CreatedAt.Format("Jan 02 2006 15:04"))))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%-14s", ""))
	for i := range g.LineScore {
		fmt.Fprintf(&b, "%3d", i+1)
	}
	b.WriteString("    R\n")
	for side, name := range []string{g.Visitor, g.Home} {
		fmt.Fprintf(&b, "%-14.14s", name)
		for _, inn := range g.LineScore {
			fmt.Fprintf(&b, "%3d", inn[side])
		}
		fmt.Fprintf(&b, "  %3d\n", []int{g.VisitorScore, g.HomeScore}[side])
	}

	result := "Tie game"
	if w := g.WinnerName(); w != "" {
		result = w + " win"
	}
	if !g.Complete {
		result = "Not finished"
	}
	fmt.Fprintf(&b, "\n%s, %d pitches\n", result, g.Pitches)

	if len(d.plays) > 0 {
		b.WriteString("\n")
		dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
		for _, p := range d.plays {
			line := fmt.Sprintf("%-6s %d  %-14.14s %s", p.Half, p.Inning, p.Batting, p.Description)
			if p.Runs > 0 {
				line += fmt.Sprintf(" (+%d)", p.Runs)
			}
			b.WriteString(dim.Render(line))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	padding := (width - textWidth) / 2
	return strings.Repeat(" ", padding) + text
}

// IsGoingBack returns true if user wants to go back to the game.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the results screen on its own.
func RunScoreboard(store *storage.Store, width, height int) error {
	model := NewScoreboardModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
