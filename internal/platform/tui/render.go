package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-baseball/internal/core"
)

var (
	grassBG = lipgloss.Color("2")
	dirtBG  = lipgloss.Color("3")
)

// colorStyles maps core.Color roles to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorGrass:        lipgloss.NewStyle().Background(grassBG),
	core.ColorDirt:         lipgloss.NewStyle().Background(dirtBG),
	core.ColorMound:        lipgloss.NewStyle().Background(lipgloss.Color("11")),
	core.ColorTrack:        lipgloss.NewStyle().Background(lipgloss.Color("1")),
	core.ColorChalk:        lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(grassBG),
	core.ColorPath:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Background(dirtBG),
	core.ColorBase:         lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("15")),
	core.ColorBaseOccupied: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("9")).Bold(true),
	core.ColorBall:         lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(dirtBG).Bold(true),
	core.ColorPitcher:      lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")).Bold(true),
	core.ColorLabel:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorScore:        lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorRunner:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorMessage:      lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
	core.ColorBanner:       lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(true),
	core.ColorDim:          lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
