package config

// SpeedPreset represents a named animation speed.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
	SpeedTurbo  SpeedPreset = "turbo"
)

// CellsPerSecondForPreset returns the interpolation speed for a preset.
// Unknown presets report ok=false.
func CellsPerSecondForPreset(preset SpeedPreset) (float64, bool) {
	switch preset {
	case SpeedSlow:
		return 1.5, true
	case SpeedNormal:
		return 3.0, true
	case SpeedFast:
		return 6.0, true
	case SpeedTurbo:
		return 12.0, true
	default:
		return 0, false
	}
}

// ApplySpeedPreset modifies the config based on a speed preset.
// An unknown preset leaves the config untouched.
func ApplySpeedPreset(cfg *SokobanConfig, preset SpeedPreset) {
	if cps, ok := CellsPerSecondForPreset(preset); ok {
		cfg.Motion.Preset = preset
		cfg.Motion.CellsPerSecond = cps
	}
}
