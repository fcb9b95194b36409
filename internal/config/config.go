// Package config provides YAML-based game configuration loading and
// difficulty management for the clearcell platform.
package config

// ClearCellConfig contains all configuration for the clearcell game.
type ClearCellConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the board dimensions.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// TimingConfig defines the row-insertion cadence, in simulation ticks.
type TimingConfig struct {
	InsertEveryTicks int `yaml:"insert_every_ticks"` // Base interval between inserted rows
	MinInsertTicks   int `yaml:"min_insert_ticks"`   // Floor the interval can shrink to
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	IntervalReduction int `yaml:"interval_reduction"` // Ticks removed from the insert interval at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
