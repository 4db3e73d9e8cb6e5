package tetris

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/janeyip-gif/chiikawa-tetris/internal/config"
	"github.com/janeyip-gif/chiikawa-tetris/internal/core"
	"github.com/janeyip-gif/chiikawa-tetris/internal/registry"
)

// Rendering characters. Each board cell is two runes wide so the playfield
// looks square in a terminal.
const (
	cellRune  = '█'
	ghostRune = '░'
)

// kindColors maps piece kinds to terminal colors, following the soft
// per-character theme of the original (one color per shape).
var kindColors = [KindCount]core.Color{
	KindI: core.ColorBrightCyan,
	KindO: core.ColorBrightYellow,
	KindT: core.ColorBrightMagenta,
	KindS: core.ColorBrightGreen,
	KindZ: core.ColorBrightRed,
	KindJ: core.ColorBrightBlue,
	KindL: core.ColorOrange,
}

// Minimum screen size: board (22 wide with border) + sidebar, board height
// + border + title line.
const (
	minScreenW = 44
	minScreenH = 23
)

// configPath stores the custom config path set via CLI.
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts the Session command interface to the platform's fixed-tick
// Game interface: it maps input actions to session commands, converts ticks
// into elapsed wall-clock time for gravity, and renders the session state.
type Game struct {
	session *Session
	cfg     config.TetrisConfig
	tick    uint64
	frame   time.Duration // Wall-clock length of one simulation tick

	// Screen dimensions and layout
	screenW  int
	screenH  int
	boardX   int
	boardY   int
	tooSmall bool
}

// New creates a new tetris game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Chiikawa Tetris"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	g.cfg = cfg

	tickRate := rc.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.frame = time.Second / time.Duration(tickRate)

	g.tick = 0
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH

	// Center the playfield, sidebar to its right.
	boardBoxW := BoardWidth*2 + 2
	g.boardX = core.Max(1, (g.screenW-boardBoxW-sidebarWidth)/2)
	g.boardY = core.Max(1, (g.screenH-(BoardHeight+2))/2)

	g.session = NewSession(g.rules(), rand.New(rand.NewSource(rc.Seed)))
}

// rules converts the loaded configuration into engine rules.
func (g *Game) rules() Rules {
	return Rules{
		SoftDropPerCell: g.cfg.Scoring.SoftDropPerCell,
		HardDropPerCell: g.cfg.Scoring.HardDropPerCell,
		BaseGravity:     time.Duration(g.cfg.Timing.BaseFallMs) * time.Millisecond,
		GravityStep:     time.Duration(g.cfg.Timing.SpeedupPerLevelMs) * time.Millisecond,
		MinGravity:      time.Duration(g.cfg.Timing.MinFallMs) * time.Millisecond,
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.session.Over() {
		g.session.Restart()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		if g.session.Paused() {
			g.session.Resume()
		} else {
			g.session.Pause()
		}
	}

	switch {
	case in.Has(core.ActionLeft):
		g.session.MoveLeft()
	case in.Has(core.ActionRight):
		g.session.MoveRight()
	case in.Has(core.ActionRotate):
		g.session.RotateCW()
	case in.Has(core.ActionSoftDrop):
		g.session.SoftDrop()
	case in.Has(core.ActionHardDrop):
		g.session.HardDrop()
	}

	g.session.Advance(g.frame)

	return core.StepResult{State: g.State()}
}

// Progress returns the current level and total cleared lines, for score
// records.
func (g *Game) Progress() (level, lines int) {
	return g.session.Level(), g.session.Lines()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.Over(),
		Paused:   g.session.Paused() || g.tooSmall,
	}
}

// --- Rendering ---

const sidebarWidth = 18

// Render draws the playfield, sidebar, and overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)
	g.renderSidebar(dst)

	switch {
	case g.session.Over():
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.session.Paused():
		g.renderOverlay(dst, "Paused", "Press P to resume")
	}
}

// cellScreenPos converts a board position to the screen position of the
// left rune of that cell.
func (g *Game) cellScreenPos(p Point) (int, int) {
	return g.boardX + 1 + p.Col*2, g.boardY + 1 + p.Row
}

// renderBoard draws the border, locked cells, ghost projection, and the
// active piece.
func (g *Game) renderBoard(dst *core.Screen) {
	dst.DrawBox(core.NewRect(g.boardX, g.boardY, BoardWidth*2+2, BoardHeight+2))

	grid := g.session.Grid()
	for row := 0; row < BoardHeight; row++ {
		for col := 0; col < BoardWidth; col++ {
			cell := grid[row][col]
			if !cell.Filled {
				continue
			}
			g.drawCell(dst, Point{Row: row, Col: col}, cellRune, kindColors[cell.Kind])
		}
	}

	if g.cfg.Gameplay.GhostPiece && !g.session.Over() {
		if ghost, ok := g.session.GhostCells(); ok {
			for _, p := range ghost {
				g.drawCell(dst, p, ghostRune, core.ColorGray)
			}
		}
	}

	if !g.session.Over() {
		if piece, ok := g.session.ActivePiece(); ok {
			for _, p := range piece.Cells() {
				g.drawCell(dst, p, cellRune, kindColors[piece.Kind])
			}
		}
	}
}

// drawCell paints one double-width board cell.
func (g *Game) drawCell(dst *core.Screen, p Point, r rune, c core.Color) {
	x, y := g.cellScreenPos(p)
	dst.SetCell(x, y, r, c)
	dst.SetCell(x+1, y, r, c)
}

// renderSidebar draws score, level, lines, the next-piece preview, and the
// controls reference.
func (g *Game) renderSidebar(dst *core.Screen) {
	x := g.boardX + BoardWidth*2 + 4
	y := g.boardY

	dst.DrawTextColored(x, y, "Chiikawa Tetris", core.ColorBrightWhite)
	y += 2

	dst.DrawText(x, y, fmt.Sprintf("Score  %d", g.session.Score()))
	y++
	dst.DrawText(x, y, fmt.Sprintf("Level  %d", g.session.Level()))
	y++
	dst.DrawText(x, y, fmt.Sprintf("Lines  %d", g.session.Lines()))
	y += 2

	dst.DrawText(x, y, "Next")
	y++
	next := g.session.NextKind()
	for _, off := range RotationCells(next, 0) {
		px := x + off.Col*2
		py := y + off.Row
		dst.SetCell(px, py, cellRune, kindColors[next])
		dst.SetCell(px+1, py, cellRune, kindColors[next])
	}
	y += 5

	controls := []string{
		"←/→  move",
		"↑    rotate",
		"↓    soft drop",
		"spc  hard drop",
		"p    pause",
		"q    quit",
	}
	for _, line := range controls {
		dst.DrawTextColored(x, y, line, core.ColorGray)
		y++
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2), ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
