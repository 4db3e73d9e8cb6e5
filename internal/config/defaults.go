package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default gameplay configuration: classic
// timing (500ms falling at level 1, 50ms faster per level, 100ms floor)
// and classic drop bonuses.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Timing: TimingConfig{
			BaseFallMs:        500,
			SpeedupPerLevelMs: 50,
			MinFallMs:         100,
		},
		Scoring: ScoringConfig{
			SoftDropPerCell: 1,
			HardDropPerCell: 2,
		},
		Gameplay: GameplayConfig{
			GhostPiece: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML, for documentation dumps.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
