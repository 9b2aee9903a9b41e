// Package config loads the YAML game configuration and pace presets.
package config

import (
	"time"

	"github.com/vovakirdan/tui-baseball/internal/baseball"
)

// BaseballConfig contains all configuration for a game.
type BaseballConfig struct {
	Game   GameConfig   `yaml:"game"`
	Timing TimingConfig `yaml:"timing"`
	CPU    CPUConfig    `yaml:"cpu"`
}

// GameConfig defines the teams and regulation length.
type GameConfig struct {
	Innings int    `yaml:"innings" env:"BASEBALL_INNINGS"`
	Visitor string `yaml:"visitor" env:"BASEBALL_VISITOR"`
	Home    string `yaml:"home" env:"BASEBALL_HOME"`
}

// TimingConfig defines pitch window resolution and message pacing.
// Pitch travel time is part of the rules and is not configurable.
type TimingConfig struct {
	TickMS   int     `yaml:"tick_ms" env:"BASEBALL_TICK_MS"`
	WindUpMS int     `yaml:"wind_up_ms" env:"BASEBALL_WIND_UP_MS"`
	Pacing   float64 `yaml:"pacing" env:"BASEBALL_PACING"`
}

// CPUConfig defines the headless batter.
type CPUConfig struct {
	Skill    float64 `yaml:"skill" env:"BASEBALL_CPU_SKILL"`         // 0.0 = never aims at the window, 1.0 = always
	TakeRate float64 `yaml:"take_rate" env:"BASEBALL_CPU_TAKE_RATE"` // chance of not swinging at a pitch
}

// Normalize returns a copy with out-of-range values replaced or clamped.
func (c BaseballConfig) Normalize() BaseballConfig {
	def := DefaultBaseballConfig()

	if c.Game.Innings < 1 {
		c.Game.Innings = def.Game.Innings
	}
	if c.Game.Visitor == "" {
		c.Game.Visitor = def.Game.Visitor
	}
	if c.Game.Home == "" {
		c.Game.Home = def.Game.Home
	}
	if c.Timing.TickMS <= 0 {
		c.Timing.TickMS = def.Timing.TickMS
	}
	if c.Timing.WindUpMS < 0 {
		c.Timing.WindUpMS = 0
	}
	if c.Timing.Pacing < 0 {
		c.Timing.Pacing = 0
	}
	c.CPU.Skill = clampF(c.CPU.Skill, 0, 1)
	c.CPU.TakeRate = clampF(c.CPU.TakeRate, 0, 1)
	return c
}

// Tick returns the swing poll interval.
func (c BaseballConfig) Tick() time.Duration {
	return time.Duration(c.Timing.TickMS) * time.Millisecond
}

// MachineConfig converts the loaded configuration for the game machine.
func (c BaseballConfig) MachineConfig() baseball.MachineConfig {
	return baseball.MachineConfig{
		Innings: c.Game.Innings,
		Visitor: c.Game.Visitor,
		Home:    c.Game.Home,
		WindUp:  time.Duration(c.Timing.WindUpMS) * time.Millisecond,
		Pacing:  c.Timing.Pacing,
	}
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
