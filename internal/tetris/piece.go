package tetris

// spawnRow and spawnCol place new pieces at the top center of the board.
const (
	spawnRow = 0
	spawnCol = BoardWidth/2 - 2
)

// Piece is a falling tetromino instance: shape, orientation, and the board
// position of its origin.
type Piece struct {
	Kind     Kind
	Rotation int
	Row, Col int
}

// newPiece creates a piece of the given kind at the spawn position.
func newPiece(k Kind) Piece {
	return Piece{Kind: k, Row: spawnRow, Col: spawnCol}
}

// Cells returns the absolute board positions the piece currently occupies.
func (p Piece) Cells() [4]Point {
	return p.CellsAt(p.Row, p.Col, p.Rotation)
}

// CellsAt returns the board positions the piece would occupy at a
// hypothetical origin and orientation.
func (p Piece) CellsAt(row, col, rot int) [4]Point {
	var cells [4]Point
	for i, off := range RotationCells(p.Kind, rot) {
		cells[i] = Point{Row: row + off.Row, Col: col + off.Col}
	}
	return cells
}

// NextRotation returns the orientation index after one clockwise turn.
func (p Piece) NextRotation() int {
	return (p.Rotation + 1) % RotationStates
}
