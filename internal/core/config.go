package core

import "time"

// RuntimeConfig is what the platform layer needs to drive one game.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Redraws per second while a pitch is in flight
	Seed     int64 // RNG seed; 0 means seed from the current time
}

// DefaultConfig returns the classic 80x24 layout.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// ResolveSeed returns Seed, or a time-based seed when Seed is 0.
func (c RuntimeConfig) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
