package tetris

import (
	"math/rand"
	"time"
)

// Session is the complete state of one single-player game: board, active
// piece, sequencer, scoring, and gravity timing. It is a plain value owned
// by the caller and mutated only through its command methods, which are
// invoked serially by the platform layer. Movement or rotation into an
// invalid position is silently rejected; the only terminal condition is a
// spawn collision.
type Session struct {
	board    Board
	piece    Piece
	hasPiece bool
	seq      *Sequencer
	progress *Progress
	rules    Rules

	paused    bool
	gameOver  bool
	sinceFall time.Duration
}

// NewSession creates a running session and performs the initial spawn.
// The random source drives piece sequencing and is injected for
// deterministic tests.
func NewSession(rules Rules, rng *rand.Rand) *Session {
	s := &Session{
		seq:      NewSequencer(rng),
		progress: NewProgress(rules),
		rules:    rules,
	}
	s.spawn()
	return s
}

// Restart re-initializes the board, scoring, and sequencer, reusing the
// session's random source, and performs the initial spawn.
func (s *Session) Restart() {
	s.board.Reset()
	s.seq = NewSequencer(s.seq.rng)
	s.progress = NewProgress(s.rules)
	s.paused = false
	s.gameOver = false
	s.sinceFall = 0
	s.spawn()
}

// running reports whether game-logic commands are currently processed.
func (s *Session) running() bool {
	return !s.paused && !s.gameOver && s.hasPiece
}

// MoveLeft shifts the active piece one column left if the space is free.
func (s *Session) MoveLeft() {
	s.tryMove(0, -1)
}

// MoveRight shifts the active piece one column right if the space is free.
func (s *Session) MoveRight() {
	s.tryMove(0, 1)
}

// RotateCW turns the active piece clockwise at its current origin. A
// rotation that would collide is rejected, leaving orientation unchanged;
// there is no wall-kick fallback.
func (s *Session) RotateCW() {
	if !s.running() {
		return
	}
	rot := s.piece.NextRotation()
	if s.board.CanPlace(s.piece.CellsAt(s.piece.Row, s.piece.Col, rot)) {
		s.piece.Rotation = rot
	}
}

// SoftDrop moves the active piece down one row, awarding the soft-drop
// bonus. If the piece cannot descend it locks instead.
func (s *Session) SoftDrop() {
	if !s.running() {
		return
	}
	if s.tryMove(1, 0) {
		s.progress.AddDropScore(1, SoftDropMode)
		s.sinceFall = 0
		return
	}
	s.lockPiece()
}

// HardDrop moves the active piece straight down to its resting position,
// awarding the hard-drop bonus per cell descended, and locks it there.
func (s *Session) HardDrop() {
	if !s.running() {
		return
	}
	dist := s.dropDistance()
	s.piece.Row += dist
	s.progress.AddDropScore(dist, HardDropMode)
	s.lockPiece()
}

// Pause suspends command processing. No-op unless running.
func (s *Session) Pause() {
	if !s.gameOver {
		s.paused = true
	}
}

// Resume continues a paused session.
func (s *Session) Resume() {
	s.paused = false
}

// Advance accumulates elapsed wall-clock time and performs a gravity step
// whenever the current gravity interval has passed. The caller supplies
// elapsed time explicitly, so the engine stays independent of any
// particular frame cadence.
func (s *Session) Advance(elapsed time.Duration) {
	if !s.running() {
		return
	}
	s.sinceFall += elapsed
	for s.sinceFall >= s.progress.GravityInterval() {
		s.sinceFall -= s.progress.GravityInterval()
		s.gravityStep()
		if !s.running() {
			s.sinceFall = 0
			return
		}
	}
}

// gravityStep attempts one automatic downward move; a blocked piece locks.
func (s *Session) gravityStep() {
	if !s.tryMove(1, 0) {
		s.lockPiece()
	}
}

// tryMove shifts the piece origin if the target placement is free.
// Returns whether the move happened; a blocked move is not an error.
func (s *Session) tryMove(dRow, dCol int) bool {
	if !s.running() {
		return false
	}
	cells := s.piece.CellsAt(s.piece.Row+dRow, s.piece.Col+dCol, s.piece.Rotation)
	if !s.board.CanPlace(cells) {
		return false
	}
	s.piece.Row += dRow
	s.piece.Col += dCol
	return true
}

// dropDistance returns how many rows the piece can fall before resting.
func (s *Session) dropDistance() int {
	dist := 0
	for s.board.CanPlace(s.piece.CellsAt(s.piece.Row+dist+1, s.piece.Col, s.piece.Rotation)) {
		dist++
	}
	return dist
}

// lockPiece fixes the active piece into the board, clears full rows, feeds
// the scoring tracker, and immediately spawns the next piece.
func (s *Session) lockPiece() {
	s.board.Lock(s.piece.Cells(), s.piece.Kind)
	s.hasPiece = false

	if cleared := s.board.ClearFullRows(); cleared > 0 {
		s.progress.AddLineClear(cleared)
	}

	s.spawn()
}

// spawn creates the next piece at the top center. A spawn collision is the
// sole end condition and transitions the session to game over.
func (s *Session) spawn() {
	p := newPiece(s.seq.Next())
	if !s.board.CanPlace(p.Cells()) {
		s.gameOver = true
		return
	}
	s.piece = p
	s.hasPiece = true
	s.sinceFall = 0
}

// --- Read-only queries for rendering and tests ---

// Grid returns a copy of the locked-cell grid.
func (s *Session) Grid() [BoardHeight][BoardWidth]Cell {
	return s.board.Grid()
}

// ActivePiece returns the falling piece, if one exists.
func (s *Session) ActivePiece() (Piece, bool) {
	return s.piece, s.hasPiece
}

// PieceCells returns the board positions of the falling piece, if any.
func (s *Session) PieceCells() ([4]Point, bool) {
	if !s.hasPiece {
		return [4]Point{}, false
	}
	return s.piece.Cells(), true
}

// GhostCells returns where the piece would land if hard-dropped now.
// It is a pure projection: neither board nor piece is mutated.
func (s *Session) GhostCells() ([4]Point, bool) {
	if !s.hasPiece {
		return [4]Point{}, false
	}
	return s.piece.CellsAt(s.piece.Row+s.dropDistance(), s.piece.Col, s.piece.Rotation), true
}

// NextKind returns the preview piece kind.
func (s *Session) NextKind() Kind {
	return s.seq.PeekNext()
}

// Score returns the accumulated score.
func (s *Session) Score() int { return s.progress.Score() }

// Level returns the current level.
func (s *Session) Level() int { return s.progress.Level() }

// Lines returns the total number of cleared lines.
func (s *Session) Lines() int { return s.progress.Lines() }

// GravityInterval returns the current automatic fall interval.
func (s *Session) GravityInterval() time.Duration {
	return s.progress.GravityInterval()
}

// Paused reports whether the session is paused.
func (s *Session) Paused() bool { return s.paused }

// Over reports whether the session reached game over.
func (s *Session) Over() bool { return s.gameOver }
