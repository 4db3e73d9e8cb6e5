package tetris

import "testing"

// fillRow fills a whole row, optionally leaving gaps at the given columns.
func fillRow(b *Board, row int, gaps ...int) {
	skip := make(map[int]bool)
	for _, c := range gaps {
		skip[c] = true
	}
	for col := 0; col < BoardWidth; col++ {
		if !skip[col] {
			b.grid[row][col] = Cell{Filled: true, Kind: KindO}
		}
	}
}

func countFilled(b *Board) int {
	n := 0
	for row := 0; row < BoardHeight; row++ {
		for col := 0; col < BoardWidth; col++ {
			if b.grid[row][col].Filled {
				n++
			}
		}
	}
	return n
}

func TestCanPlaceBounds(t *testing.T) {
	var b Board

	tests := []struct {
		name  string
		cells [4]Point
		want  bool
	}{
		{"inside", [4]Point{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, true},
		{"bottom right corner", [4]Point{{18, 8}, {18, 9}, {19, 8}, {19, 9}}, true},
		{"left overflow", [4]Point{{0, -1}, {0, 0}, {1, -1}, {1, 0}}, false},
		{"right overflow", [4]Point{{0, 9}, {0, 10}, {1, 9}, {1, 10}}, false},
		{"above top", [4]Point{{-1, 0}, {0, 0}, {1, 0}, {2, 0}}, false},
		{"below bottom", [4]Point{{17, 0}, {18, 0}, {19, 0}, {20, 0}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.CanPlace(tt.cells); got != tt.want {
				t.Errorf("CanPlace(%v) = %v, want %v", tt.cells, got, tt.want)
			}
		})
	}
}

func TestCanPlaceCollision(t *testing.T) {
	var b Board
	b.grid[10][5] = Cell{Filled: true, Kind: KindT}

	blocked := [4]Point{{10, 4}, {10, 5}, {10, 6}, {10, 7}}
	if b.CanPlace(blocked) {
		t.Errorf("CanPlace should reject placement overlapping a filled cell")
	}

	free := [4]Point{{11, 4}, {11, 5}, {11, 6}, {11, 7}}
	if !b.CanPlace(free) {
		t.Errorf("CanPlace should accept placement adjacent to a filled cell")
	}
}

func TestCanPlaceHasNoSideEffects(t *testing.T) {
	var b Board
	b.CanPlace([4]Point{{0, 0}, {0, 1}, {1, 0}, {1, 1}})
	if countFilled(&b) != 0 {
		t.Errorf("CanPlace mutated the board")
	}
}

func TestLockFillsCells(t *testing.T) {
	var b Board
	cells := [4]Point{{19, 0}, {19, 1}, {18, 0}, {18, 1}}
	b.Lock(cells, KindS)

	for _, p := range cells {
		got := b.Cell(p.Row, p.Col)
		if !got.Filled || got.Kind != KindS {
			t.Errorf("cell %v = %+v, want filled S", p, got)
		}
	}
	if countFilled(&b) != 4 {
		t.Errorf("filled count = %d, want 4", countFilled(&b))
	}
}

func TestLockPanicsOnOccupiedCell(t *testing.T) {
	var b Board
	cells := [4]Point{{19, 0}, {19, 1}, {19, 2}, {19, 3}}
	b.Lock(cells, KindI)

	defer func() {
		if recover() == nil {
			t.Errorf("Lock over an occupied cell should panic")
		}
	}()
	b.Lock(cells, KindI)
}

func TestClearFullRowsSingle(t *testing.T) {
	var b Board
	fillRow(&b, 19)
	b.grid[18][3] = Cell{Filled: true, Kind: KindT}

	if got := b.ClearFullRows(); got != 1 {
		t.Fatalf("ClearFullRows() = %d, want 1", got)
	}
	// The survivor from row 18 shifts down to row 19.
	if !b.Cell(19, 3).Filled {
		t.Errorf("surviving cell should have shifted to the bottom row")
	}
	if countFilled(&b) != 1 {
		t.Errorf("filled count = %d, want 1", countFilled(&b))
	}
}

func TestClearFullRowsNonAdjacent(t *testing.T) {
	var b Board
	fillRow(&b, 19)
	fillRow(&b, 17)
	b.grid[18][0] = Cell{Filled: true, Kind: KindJ}
	b.grid[16][9] = Cell{Filled: true, Kind: KindL}

	if got := b.ClearFullRows(); got != 2 {
		t.Fatalf("ClearFullRows() = %d, want 2", got)
	}
	// Survivors keep their relative order: row 16 lands above row 18's cell.
	if !b.Cell(19, 0).Filled {
		t.Errorf("lower survivor should end on the bottom row")
	}
	if !b.Cell(18, 9).Filled {
		t.Errorf("upper survivor should end one row above")
	}
	if countFilled(&b) != 2 {
		t.Errorf("filled count = %d, want 2", countFilled(&b))
	}
}

func TestClearFullRowsTetris(t *testing.T) {
	var b Board
	for row := 16; row < 20; row++ {
		fillRow(&b, row)
	}

	if got := b.ClearFullRows(); got != 4 {
		t.Fatalf("ClearFullRows() = %d, want 4", got)
	}
	if countFilled(&b) != 0 {
		t.Errorf("board should be empty after clearing all filled rows")
	}
}

func TestClearFullRowsEmptyBoard(t *testing.T) {
	var b Board
	if got := b.ClearFullRows(); got != 0 {
		t.Errorf("ClearFullRows() on empty board = %d, want 0", got)
	}
}

func TestClearFullRowsIgnoresPartialRows(t *testing.T) {
	var b Board
	fillRow(&b, 19, 4) // one gap
	if got := b.ClearFullRows(); got != 0 {
		t.Errorf("ClearFullRows() = %d, want 0 for a row with a gap", got)
	}
	if countFilled(&b) != BoardWidth-1 {
		t.Errorf("partial row should be untouched")
	}
}

func TestCellOutOfBoundsReadsEmpty(t *testing.T) {
	var b Board
	fillRow(&b, 19)
	for _, p := range []Point{{-1, 0}, {20, 0}, {0, -1}, {0, 10}} {
		if b.Cell(p.Row, p.Col).Filled {
			t.Errorf("Cell(%d, %d) should read empty", p.Row, p.Col)
		}
	}
}

func TestBoardReset(t *testing.T) {
	var b Board
	fillRow(&b, 19)
	fillRow(&b, 0)
	b.Reset()
	if countFilled(&b) != 0 {
		t.Errorf("Reset should empty the board")
	}
}
