package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-baseball/internal/baseball"
	"github.com/vovakirdan/tui-baseball/internal/core"
)

// Field layout, in screen cells. The diamond is centered on the mound.
var (
	homePlate   = core.Point{X: 39, Y: 20}
	firstBase   = core.Point{X: 50, Y: 15}
	secondBase  = core.Point{X: 39, Y: 10}
	thirdBase   = core.Point{X: 28, Y: 15}
	moundCenter = core.Point{X: 39, Y: 15}
)

const (
	lineChar   = '█'
	maxLineInn = 9 // innings shown in the line score before it scrolls
)

// FieldView is everything drawn on one frame.
type FieldView struct {
	Snap     baseball.Snapshot
	Message  string
	InFlight bool
	Progress float64 // elapsed/travel of the pitch in flight
}

// DrawField lays out the whole frame on s.
func DrawField(s *core.Screen, v FieldView) {
	s.Clear()
	drawGrounds(s)
	drawBases(s, v.Snap.Bases)
	drawPitch(s, v)
	drawScoreboard(s, v.Snap)
	drawCountPanel(s, v.Snap)
	drawMessage(s, v.Message)

	if v.Snap.State == baseball.StateGameOver {
		drawGameOver(s, v.Snap)
	}
}

func drawGrounds(s *core.Screen) {
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			s.SetColored(x, y, ' ', core.ColorGrass)
		}
	}

	for x := 5; x < 75; x++ {
		s.SetColored(x, 2, ' ', core.ColorTrack)
		s.SetColored(x, 3, ' ', core.ColorTrack)
	}

	// Infield dirt is a diamond of radius 15 around the mound.
	for y := 10; y <= 20; y++ {
		for x := 10; x < 70; x++ {
			if abs(x-moundCenter.X)+abs(y-moundCenter.Y) <= 15 {
				s.SetColored(x, y, ' ', core.ColorDirt)
			}
		}
	}
	drawMound(s)

	// Foul lines run from home past the corners.
	for i := 0; i <= 15; i++ {
		s.SetColored(homePlate.X+(i*11)/15, homePlate.Y-i, lineChar, core.ColorChalk)
		s.SetColored(homePlate.X-(i*11)/15, homePlate.Y-i, lineChar, core.ColorChalk)
	}

	for _, leg := range [][2]core.Point{
		{homePlate, firstBase},
		{firstBase, secondBase},
		{secondBase, thirdBase},
		{thirdBase, homePlate},
	} {
		s.DrawLine(leg[0], leg[1], '.', core.ColorPath)
	}

	// Batter's boxes
	for i := 0; i < 4; i++ {
		for _, x := range []int{36, 37, 41, 42} {
			s.SetColored(x, 19+i, lineChar, core.ColorChalk)
		}
	}
}

func drawMound(s *core.Screen) {
	for y := moundCenter.Y - 1; y <= moundCenter.Y+1; y++ {
		for x := moundCenter.X - 2; x <= moundCenter.X+2; x++ {
			dx, dy := x-moundCenter.X, y-moundCenter.Y
			if dx*dx+dy*dy <= 4 {
				s.SetColored(x, y, ' ', core.ColorMound)
			}
		}
	}
}

func drawBases(s *core.Screen, bases baseball.Bases) {
	s.SetColored(homePlate.X, homePlate.Y, 'H', core.ColorBase)

	for i, p := range []core.Point{firstBase, secondBase, thirdBase} {
		color := core.ColorBase
		if bases[i] {
			color = core.ColorBaseOccupied
		}
		s.SetColored(p.X, p.Y, rune('1'+i), color)
	}
}

// drawPitch shows the pitcher on the mound, or the ball on its way from
// the mound to the plate.
func drawPitch(s *core.Screen, v FieldView) {
	if v.Snap.State == baseball.StateGameOver {
		return
	}
	if !v.InFlight {
		s.SetColored(moundCenter.X, moundCenter.Y, 'P', core.ColorPitcher)
		return
	}
	p := core.Lerp(moundCenter, core.Point{X: moundCenter.X, Y: homePlate.Y}, v.Progress)
	s.SetColored(p.X, p.Y, 'o', core.ColorBall)
}

func drawScoreboard(s *core.Screen, snap baseball.Snapshot) {
	s.DrawTextColored(2, 1, "Terminal League Baseball", core.ColorBanner)

	first := 1
	if n := len(snap.LineScore); n > maxLineInn {
		first = n - maxLineInn + 1
	}
	last := core.Clamp(max(len(snap.LineScore), snap.TotalInnings), first, first+maxLineInn-1)

	var header, rule strings.Builder
	header.WriteString("TEAM           ")
	rule.WriteString("---------------")
	for inn := first; inn <= last; inn++ {
		fmt.Fprintf(&header, " %d", inn%10)
		rule.WriteString(" -")
	}
	header.WriteString("   R")
	rule.WriteString("  --")
	s.DrawTextColored(2, 3, header.String(), core.ColorLabel)
	s.DrawTextColored(2, 4, rule.String(), core.ColorDim)

	for row, side := range []baseball.Side{baseball.Visitor, baseball.Home} {
		var line strings.Builder
		fmt.Fprintf(&line, "%-15.15s", snap.Teams[side])
		for inn := first; inn <= last; inn++ {
			if inn <= len(snap.LineScore) && played(snap, inn, side) {
				line.WriteString(" " + inningRuns(snap.LineScore[inn-1][side]))
			} else {
				line.WriteString("  ")
			}
		}
		y := 5 + row
		s.DrawTextColored(2, y, line.String(), core.ColorLabel)
		s.DrawTextColored(2+line.Len()+1, y, fmt.Sprintf("%3d", snap.Score[side]), core.ColorScore)
	}
}

// inningRuns fits an inning's runs in one column; ten or more shows as '+'.
func inningRuns(n int) string {
	if n >= 10 {
		return "+"
	}
	return fmt.Sprint(n)
}

// played reports whether side has batted (or is batting) in inning.
func played(snap baseball.Snapshot, inning int, side baseball.Side) bool {
	if inning < snap.Inning {
		return true
	}
	if inning > snap.Inning {
		return false
	}
	return side == baseball.Visitor || snap.Half == baseball.Bottom
}

func drawCountPanel(s *core.Screen, snap baseball.Snapshot) {
	s.DrawTextColored(60, 3, "INNING: "+snap.InningLabel(), core.ColorLabel)
	s.DrawTextColored(60, 5, fmt.Sprintf("Outs:   %d", snap.Outs), core.ColorLabel)
	s.DrawTextColored(60, 6, fmt.Sprintf("Strikes: %d", snap.Strikes), core.ColorLabel)
	s.DrawTextColored(60, 7, fmt.Sprintf("Balls:   %d", snap.Balls), core.ColorLabel)

	s.DrawTextColored(60, 9, "BASES:", core.ColorLabel)
	for i, label := range []struct {
		x, y int
		text string
	}{
		{71, 10, "1st"},
		{68, 8, "2nd"},
		{65, 10, "3rd"},
	} {
		color := core.ColorLabel
		if snap.Bases[i] {
			color = core.ColorRunner
		}
		s.DrawTextColored(label.x, label.y, label.text, color)
	}
}

func drawMessage(s *core.Screen, msg string) {
	s.DrawTextColored(25, 23, fmt.Sprintf("MSG: %-50.50s", msg), core.ColorMessage)
}

// gameOverBox frames the final banner in the middle of the field.
var gameOverBox = core.NewRect(24, 11, 32, 5)

func drawGameOver(s *core.Screen, snap baseball.Snapshot) {
	for y := gameOverBox.Y; y < gameOverBox.Bottom(); y++ {
		for x := gameOverBox.X; x < gameOverBox.Right(); x++ {
			s.SetColored(x, y, ' ', core.ColorBanner)
		}
	}
	s.DrawBox(gameOverBox, core.ColorBanner)

	line := baseball.MsgTie
	if side, ok := snap.Leader(); ok {
		line = snap.Teams[side] + " WIN!"
	}
	s.DrawTextCentered(12, baseball.MsgGameOver, core.ColorBanner)
	s.DrawTextCentered(14, line, core.ColorBanner)
}

// FieldText renders a frame as plain text, without colors.
func FieldText(v FieldView) string {
	s := core.NewScreen(80, 24)
	DrawField(s, v)
	return s.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
