// Package config provides YAML-based game configuration loading for the
// tetris platform.
package config

// TetrisConfig contains the tunable gameplay parameters.
// Board geometry (10x20) and the line-clear bonus table are fixed by the
// engine and intentionally not configurable.
type TetrisConfig struct {
	Timing   TimingConfig   `yaml:"timing"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// TimingConfig defines the level-driven gravity curve, in milliseconds.
type TimingConfig struct {
	BaseFallMs        int `yaml:"base_fall_ms"`         // Fall interval at level 1
	SpeedupPerLevelMs int `yaml:"speedup_per_level_ms"` // Interval reduction per level
	MinFallMs         int `yaml:"min_fall_ms"`          // Interval floor
}

// ScoringConfig defines the per-cell drop bonuses.
type ScoringConfig struct {
	SoftDropPerCell int `yaml:"soft_drop_per_cell"`
	HardDropPerCell int `yaml:"hard_drop_per_cell"`
}

// GameplayConfig defines presentation-affecting gameplay options.
type GameplayConfig struct {
	GhostPiece bool `yaml:"ghost_piece"` // Show the landing projection
}
