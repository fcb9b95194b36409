package config

import (
	_ "embed"
)

//go:embed defaults/clearcell.yaml
var defaultClearCellYAML []byte

// DefaultClearCellConfig returns the default clearcell configuration.
func DefaultClearCellConfig() ClearCellConfig {
	return ClearCellConfig{
		Board: BoardConfig{
			Rows: 12,
			Cols: 16,
		},
		Timing: TimingConfig{
			InsertEveryTicks: 240,
			MinInsertTicks:   60,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 200,
			},
			Scaling: ScalingConfig{
				IntervalReduction: 150,
			},
		},
	}
}
