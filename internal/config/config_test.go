package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "baseball.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg BaseballConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultBaseballConfig()) {
		t.Errorf("embedded default = %+v\nhardcoded = %+v", cfg, DefaultBaseballConfig())
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadBaseball("")
	if err != nil {
		t.Fatalf("LoadBaseball: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultBaseballConfig()) {
		t.Errorf("LoadBaseball(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".baseball", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "baseball.yaml"), []byte("game:\n  innings: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBaseball("")
	if err != nil {
		t.Fatalf("LoadBaseball: %v", err)
	}
	if cfg.Game.Innings != 5 {
		t.Errorf("Innings = %d, want 5 from the user config", cfg.Game.Innings)
	}
}

func TestLoadCustomPartial(t *testing.T) {
	path := writeConfig(t, `
game:
  visitor: Chicago Cubs
timing:
  pacing: 0.25
`)

	cfg, err := LoadBaseball(path)
	if err != nil {
		t.Fatalf("LoadBaseball: %v", err)
	}
	if cfg.Game.Visitor != "Chicago Cubs" {
		t.Errorf("Visitor = %q, want Chicago Cubs", cfg.Game.Visitor)
	}
	if cfg.Game.Home != "Boston Red Sox" {
		t.Errorf("Home = %q, want the default", cfg.Game.Home)
	}
	if cfg.Timing.Pacing != 0.25 {
		t.Errorf("Pacing = %v, want 0.25", cfg.Timing.Pacing)
	}
	if cfg.Timing.WindUpMS != 500 {
		t.Errorf("WindUpMS = %d, want the default 500", cfg.Timing.WindUpMS)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	if _, err := LoadBaseball(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	path := writeConfig(t, "game: [not, a, map")
	if _, err := LoadBaseball(path); err == nil {
		t.Error("malformed custom config should be an error")
	}
}

func TestNormalize(t *testing.T) {
	cfg := BaseballConfig{
		Game:   GameConfig{Innings: 0},
		Timing: TimingConfig{TickMS: -5, WindUpMS: -1, Pacing: -2},
		CPU:    CPUConfig{Skill: 3, TakeRate: -1},
	}.Normalize()

	if cfg.Game.Innings != 3 {
		t.Errorf("Innings = %d, want 3", cfg.Game.Innings)
	}
	if cfg.Game.Visitor == "" || cfg.Game.Home == "" {
		t.Error("empty team names should get defaults")
	}
	if cfg.Timing.TickMS != 10 || cfg.Timing.WindUpMS != 0 || cfg.Timing.Pacing != 0 {
		t.Errorf("timing = %+v", cfg.Timing)
	}
	if cfg.CPU.Skill != 1 || cfg.CPU.TakeRate != 0 {
		t.Errorf("cpu = %+v", cfg.CPU)
	}
}

func TestMachineConfig(t *testing.T) {
	mc := DefaultBaseballConfig().MachineConfig()
	if mc.Innings != 3 || mc.WindUp != 500*time.Millisecond || mc.Pacing != 1.0 {
		t.Errorf("MachineConfig() = %+v", mc)
	}
	if DefaultBaseballConfig().Tick() != 10*time.Millisecond {
		t.Errorf("Tick() = %v, want 10ms", DefaultBaseballConfig().Tick())
	}
}

func TestPacePresets(t *testing.T) {
	want := map[PacePreset]float64{
		PaceSlow:    1.5,
		PaceNormal:  1.0,
		PaceFast:    0.5,
		PaceInstant: 0,
	}
	for _, p := range PacePresets {
		got, err := PacingForPreset(p)
		if err != nil {
			t.Errorf("PacingForPreset(%q): %v", p, err)
			continue
		}
		if got != want[p] {
			t.Errorf("PacingForPreset(%q) = %v, want %v", p, got, want[p])
		}
	}

	if !IsInstant(PaceInstant) || IsInstant(PaceFast) {
		t.Error("IsInstant misreports presets")
	}

	cfg := DefaultBaseballConfig()
	if err := ApplyPacePreset(&cfg, "fast"); err != nil || cfg.Timing.Pacing != 0.5 {
		t.Errorf("ApplyPacePreset(fast) pacing=%v err=%v", cfg.Timing.Pacing, err)
	}
	if err := ApplyPacePreset(&cfg, ""); err != nil || cfg.Timing.Pacing != 0.5 {
		t.Error("empty preset should leave pacing alone")
	}
	if err := ApplyPacePreset(&cfg, "ludicrous"); err == nil {
		t.Error("unknown preset should be an error")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("BASEBALL_INNINGS", "7")
	t.Setenv("BASEBALL_HOME", "Chicago Cubs")
	t.Setenv("BASEBALL_CPU_SKILL", "0.9")

	path := writeConfig(t, "game:\n  innings: 5\n  visitor: Expos\n")
	cfg, err := LoadBaseball(path)
	if err != nil {
		t.Fatalf("LoadBaseball: %v", err)
	}
	if cfg.Game.Innings != 7 {
		t.Errorf("Innings = %d, want 7 from the environment", cfg.Game.Innings)
	}
	if cfg.Game.Visitor != "Expos" || cfg.Game.Home != "Chicago Cubs" {
		t.Errorf("teams = %q vs %q", cfg.Game.Visitor, cfg.Game.Home)
	}
	if cfg.CPU.Skill != 0.9 {
		t.Errorf("Skill = %v, want 0.9", cfg.CPU.Skill)
	}
}

func TestLoadEnvInvalid(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("BASEBALL_PACING", "fast")

	if _, err := LoadBaseball(""); err == nil {
		t.Error("non-numeric BASEBALL_PACING should be an error")
	}
}
