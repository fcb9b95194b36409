package config

import "math"

// DifficultyManager calculates the row-insertion interval based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// ApplyPreset configures the manager from a named difficulty preset.
// Fixed disables progression; the others enable it and set the starting
// level.
func (d *DifficultyManager) ApplyPreset(preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		d.SetEnabled(false)
		return
	}
	d.SetEnabled(true)
	d.SetInitialLevel(InitialLevelForPreset(preset))
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	// Clamp progress to [0, 1]
	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// InsertInterval returns the current row-insertion interval in ticks.
// The interval shrinks from baseTicks toward minTicks as difficulty rises.
func (d *DifficultyManager) InsertInterval(baseTicks, minTicks int, score int, ticks int) int {
	level := d.Level(score, ticks)
	reduction := int(level * float64(d.cfg.Scaling.IntervalReduction))
	result := baseTicks - reduction
	if result < minTicks {
		result = minTicks
	}
	if result < 1 {
		result = 1
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
