package core

// Color is the role of a cell on the field. The platform layer maps roles
// to terminal colors.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGrass
	ColorDirt
	ColorMound
	ColorTrack // warning track
	ColorChalk // foul lines and batter's boxes
	ColorPath
	ColorBase
	ColorBaseOccupied
	ColorBall
	ColorPitcher
	ColorLabel
	ColorScore
	ColorRunner
	ColorMessage
	ColorBanner
	ColorDim
)
