package config

import "fmt"

// PacePreset is a named message pacing.
type PacePreset string

const (
	PaceSlow    PacePreset = "slow"
	PaceNormal  PacePreset = "normal"
	PaceFast    PacePreset = "fast"
	PaceInstant PacePreset = "instant"
)

// PacePresets lists the presets in display order.
var PacePresets = []PacePreset{PaceSlow, PaceNormal, PaceFast, PaceInstant}

// PacingForPreset returns the hold multiplier for a preset.
func PacingForPreset(preset PacePreset) (float64, error) {
	switch preset {
	case PaceSlow:
		return 1.5, nil
	case PaceNormal:
		return 1.0, nil
	case PaceFast:
		return 0.5, nil
	case PaceInstant:
		return 0, nil
	default:
		return 0, fmt.Errorf("unknown pace %q (want slow, normal, fast or instant)", preset)
	}
}

// IsInstant returns true if the preset skips every hold.
func IsInstant(preset PacePreset) bool {
	return preset == PaceInstant
}

// ApplyPacePreset sets cfg's pacing from a preset name. An empty name
// leaves cfg unchanged.
func ApplyPacePreset(cfg *BaseballConfig, name string) error {
	if name == "" {
		return nil
	}
	pacing, err := PacingForPreset(PacePreset(name))
	if err != nil {
		return err
	}
	cfg.Timing.Pacing = pacing
	return nil
}
