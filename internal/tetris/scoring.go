package tetris

import "time"

// DropMode distinguishes player-accelerated descent types for scoring.
type DropMode int

const (
	// SoftDropMode awards Rules.SoftDropPerCell per cell descended.
	SoftDropMode DropMode = iota
	// HardDropMode awards Rules.HardDropPerCell per cell descended.
	HardDropMode
)

// lineClearPoints is the classic per-level bonus for clearing 1-4 rows at
// once. Index is the number of rows cleared.
var lineClearPoints = [5]int{0, 100, 300, 500, 800}

// LinesPerLevel is how many cleared lines advance the level by one.
const LinesPerLevel = 10

// Rules holds the tunable scoring and gravity-timing parameters.
// Board geometry and the line-clear bonus table are engine constants.
type Rules struct {
	SoftDropPerCell int // Points per cell of soft drop
	HardDropPerCell int // Points per cell of hard drop

	BaseGravity time.Duration // Fall interval at level 1
	GravityStep time.Duration // Interval reduction per level gained
	MinGravity  time.Duration // Interval floor, never reached or crossed
}

// DefaultRules returns the classic parameters: 1/2 points per soft/hard
// drop cell, 500ms gravity shrinking 50ms per level down to 100ms.
func DefaultRules() Rules {
	return Rules{
		SoftDropPerCell: 1,
		HardDropPerCell: 2,
		BaseGravity:     500 * time.Millisecond,
		GravityStep:     50 * time.Millisecond,
		MinGravity:      100 * time.Millisecond,
	}
}

// Progress tracks score, total lines cleared, the derived level, and the
// current gravity interval.
type Progress struct {
	rules   Rules
	score   int
	lines   int
	level   int
	gravity time.Duration
}

// NewProgress creates a tracker at level 1 with zero score.
func NewProgress(rules Rules) *Progress {
	if rules.MinGravity <= 0 {
		// The interval floor must stay positive or gravity would spin.
		rules.MinGravity = time.Millisecond
	}
	p := &Progress{rules: rules, level: 1}
	p.gravity = p.gravityForLevel(1)
	return p
}

// AddDropScore awards points for cells descended under player control.
func (p *Progress) AddDropScore(cells int, mode DropMode) {
	if cells <= 0 {
		return
	}
	switch mode {
	case SoftDropMode:
		p.score += cells * p.rules.SoftDropPerCell
	case HardDropMode:
		p.score += cells * p.rules.HardDropPerCell
	}
}

// AddLineClear awards the line-clear bonus at the current level, then
// accumulates the lines and recomputes level and gravity interval.
func (p *Progress) AddLineClear(lines int) {
	if lines <= 0 {
		return
	}
	if lines >= len(lineClearPoints) {
		lines = len(lineClearPoints) - 1
	}
	p.score += lineClearPoints[lines] * p.level
	p.lines += lines
	p.level = 1 + p.lines/LinesPerLevel
	p.gravity = p.gravityForLevel(p.level)
}

// gravityForLevel computes the fall interval for a level: strictly
// non-increasing in level, clamped to the configured floor.
func (p *Progress) gravityForLevel(level int) time.Duration {
	g := p.rules.BaseGravity - time.Duration(level-1)*p.rules.GravityStep
	if g < p.rules.MinGravity {
		g = p.rules.MinGravity
	}
	return g
}

// Score returns the accumulated score.
func (p *Progress) Score() int { return p.score }

// Lines returns the total number of cleared lines.
func (p *Progress) Lines() int { return p.lines }

// Level returns the current level (starts at 1).
func (p *Progress) Level() int { return p.level }

// GravityInterval returns the current time between automatic falls.
func (p *Progress) GravityInterval() time.Duration { return p.gravity }
