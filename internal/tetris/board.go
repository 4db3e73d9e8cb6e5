package tetris

import "fmt"

// Board dimensions in cells.
const (
	BoardWidth  = 10
	BoardHeight = 20
)

// Point is an absolute board position.
type Point struct {
	Row, Col int
}

// Cell is one board position. The zero value is empty; a filled cell
// remembers the kind of the piece that locked it, for theming only.
type Cell struct {
	Filled bool
	Kind   Kind
}

// Board is the grid of locked cells. Rows are indexed top to bottom.
// It is mutated only by Lock and ClearFullRows.
type Board struct {
	grid [BoardHeight][BoardWidth]Cell
}

// InBounds reports whether the point lies on the board.
func (b *Board) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < BoardHeight && p.Col >= 0 && p.Col < BoardWidth
}

// CanPlace reports whether every given cell is within bounds and empty.
// It has no side effects.
func (b *Board) CanPlace(cells [4]Point) bool {
	for _, p := range cells {
		if !b.InBounds(p) {
			return false
		}
		if b.grid[p.Row][p.Col].Filled {
			return false
		}
	}
	return true
}

// Lock marks the given cells as occupied by the given kind.
// The placement must have been validated with CanPlace; locking an
// unvalidated placement is an internal defect and panics.
func (b *Board) Lock(cells [4]Point, k Kind) {
	if !b.CanPlace(cells) {
		panic(fmt.Sprintf("tetris: Lock of unvalidated placement %v", cells))
	}
	for _, p := range cells {
		b.grid[p.Row][p.Col] = Cell{Filled: true, Kind: k}
	}
}

// ClearFullRows removes every fully occupied row, shifts the rows above
// down, and inserts empty rows at the top. Returns the number of rows
// removed (0-4). Relative order of the surviving rows is preserved.
func (b *Board) ClearFullRows() int {
	cleared := 0
	row := BoardHeight - 1

	for row >= 0 {
		if b.rowFull(row) {
			cleared++
			// Shift everything above down by one and blank the top row.
			for r := row; r > 0; r-- {
				b.grid[r] = b.grid[r-1]
			}
			b.grid[0] = [BoardWidth]Cell{}
			// Re-check the same row: the shifted-down row may be full too.
		} else {
			row--
		}
	}

	return cleared
}

func (b *Board) rowFull(row int) bool {
	for col := 0; col < BoardWidth; col++ {
		if !b.grid[row][col].Filled {
			return false
		}
	}
	return true
}

// Cell returns the cell at the given position.
// Out-of-bounds positions read as empty.
func (b *Board) Cell(row, col int) Cell {
	if !b.InBounds(Point{Row: row, Col: col}) {
		return Cell{}
	}
	return b.grid[row][col]
}

// Grid returns a copy of the full cell grid for rendering and snapshots.
func (b *Board) Grid() [BoardHeight][BoardWidth]Cell {
	return b.grid
}

// Reset returns the board to all-empty.
func (b *Board) Reset() {
	b.grid = [BoardHeight][BoardWidth]Cell{}
}
