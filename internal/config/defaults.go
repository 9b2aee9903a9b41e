package config

import (
	_ "embed"
)

//go:embed defaults/baseball.yaml
var defaultBaseballYAML []byte

// DefaultBaseballConfig returns the hardcoded defaults. The embedded
// defaults/baseball.yaml carries the same values.
func DefaultBaseballConfig() BaseballConfig {
	return BaseballConfig{
		Game: GameConfig{
			Innings: 3,
			Visitor: "New York Yankees",
			Home:    "Boston Red Sox",
		},
		Timing: TimingConfig{
			TickMS:   10,
			WindUpMS: 500,
			Pacing:   1.0,
		},
		CPU: CPUConfig{
			Skill:    0.5,
			TakeRate: 0.2,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBaseballYAML
}
