package tetris

import (
	"strings"
	"testing"

	"github.com/janeyip-gif/chiikawa-tetris/internal/core"
	"github.com/janeyip-gif/chiikawa-tetris/internal/registry"
)

func testRuntimeConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     42,
	}
}

// scriptedInput returns the input frame for a tick, cycling through a fixed
// command script so determinism runs exercise every action.
func scriptedInput(tick int) core.InputFrame {
	in := core.NewInputFrame()
	switch tick % 23 {
	case 3:
		in.Set(core.ActionLeft)
	case 7:
		in.Set(core.ActionRight)
	case 11:
		in.Set(core.ActionRotate)
	case 15:
		in.Set(core.ActionSoftDrop)
	case 19:
		in.Set(core.ActionHardDrop)
	}
	return in
}

func TestGameImplementsRegistryInterface(t *testing.T) {
	var _ registry.Game = New()
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists("tetris") {
		t.Fatalf("tetris should self-register")
	}
	g, err := registry.Create("tetris")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "tetris" {
		t.Errorf("ID = %q, want tetris", g.ID())
	}
}

func TestGameDeterministicBySeed(t *testing.T) {
	a := New()
	b := New()
	a.Reset(testRuntimeConfig())
	b.Reset(testRuntimeConfig())

	for tick := 0; tick < 2000; tick++ {
		a.Step(scriptedInput(tick))
		b.Step(scriptedInput(tick))

		if a.Snapshot() != b.Snapshot() {
			t.Fatalf("tick %d: snapshots diverged\n a: %+v\n b: %+v", tick, a.Snapshot(), b.Snapshot())
		}
	}
}

func TestGameResetRestoresInitialState(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig())

	for tick := 0; tick < 500; tick++ {
		g.Step(scriptedInput(tick))
	}

	g.Reset(testRuntimeConfig())

	fresh := New()
	fresh.Reset(testRuntimeConfig())
	if g.Snapshot() != fresh.Snapshot() {
		t.Errorf("reset game differs from a fresh game\n got: %+v\nwant: %+v", g.Snapshot(), fresh.Snapshot())
	}
}

func TestGamePauseToggle(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig())

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in)
	if !g.State().Paused {
		t.Fatalf("pause action should pause the game")
	}

	g.Step(in)
	if g.State().Paused {
		t.Errorf("second pause action should resume the game")
	}
}

func TestGameTooSmallScreen(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60, Seed: 1})

	if !g.State().Paused {
		t.Errorf("too-small screen should report paused")
	}
	if g.Snapshot().State != StatePausedSmallWindow {
		t.Errorf("snapshot state = %v, want %v", g.Snapshot().State, StatePausedSmallWindow)
	}

	// Steps on a too-small screen must not advance the simulation.
	before := g.Snapshot()
	in := core.NewInputFrame()
	in.Set(core.ActionHardDrop)
	g.Step(in)
	after := g.Snapshot()
	after.Tick = before.Tick
	if after != before {
		t.Errorf("too-small game advanced the simulation")
	}
}

func TestGameRenderSmoke(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// The playfield border must be on screen.
	found := false
	for y := 0; y < screen.Height() && !found; y++ {
		for x := 0; x < screen.Width(); x++ {
			if screen.Get(x, y) == '┌' {
				found = true
				break
			}
		}
	}
	if !found {
		t.Errorf("render should draw the playfield border")
	}
}

func TestGameRenderGameOverOverlay(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig())

	in := core.NewInputFrame()
	in.Set(core.ActionHardDrop)
	for i := 0; i < 400 && !g.State().GameOver; i++ {
		g.Step(in)
	}
	if !g.State().GameOver {
		t.Fatalf("constant hard drops should top out the board")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Game Over") {
		t.Errorf("game over overlay not rendered")
	}
}

func TestGameRestartAfterGameOver(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig())

	drop := core.NewInputFrame()
	drop.Set(core.ActionHardDrop)
	for i := 0; i < 400 && !g.State().GameOver; i++ {
		g.Step(drop)
	}
	if !g.State().GameOver {
		t.Fatalf("constant hard drops should top out the board")
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)

	if g.State().GameOver {
		t.Errorf("restart should clear game over")
	}
	if g.State().Score != 0 {
		t.Errorf("restart should reset the score, got %d", g.State().Score)
	}
}
