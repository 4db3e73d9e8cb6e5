package tetris

// GameStateType identifies the high-level session phase in a snapshot.
type GameStateType string

const (
	StatePlaying           GameStateType = "playing"
	StatePaused            GameStateType = "paused"
	StateGameOver          GameStateType = "game_over"
	StatePausedSmallWindow GameStateType = "paused_small_window"
)

// Snapshot is a comparable capture of the full game state, used by
// determinism tests: two games stepped with the same seed and inputs must
// produce equal snapshots.
type Snapshot struct {
	Tick     uint64
	Score    int
	Level    int
	Lines    int
	Board    [BoardHeight][BoardWidth]Cell
	Piece    Piece
	HasPiece bool
	Next     Kind
	State    GameStateType
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:  g.tick,
		Score: g.session.Score(),
		Level: g.session.Level(),
		Lines: g.session.Lines(),
		Board: g.session.Grid(),
		Next:  g.session.NextKind(),
		State: StatePlaying,
	}

	if piece, ok := g.session.ActivePiece(); ok {
		snap.Piece = piece
		snap.HasPiece = true
	}

	switch {
	case g.tooSmall:
		snap.State = StatePausedSmallWindow
	case g.session.Over():
		snap.State = StateGameOver
	case g.session.Paused():
		snap.State = StatePaused
	}

	return snap
}
