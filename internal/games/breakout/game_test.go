package breakout

import (
	"fmt"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"breakout", "breakout_demo"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
	}
}

func TestGameReset(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	for range 50 {
		g.Step(press(core.ActionRight))
	}

	g.Reset(testRuntime())
	st := g.State()
	if st.Score != 0 || st.Lives != 3 || st.GameOver || st.Paused {
		t.Errorf("State after Reset = %+v", st)
	}
	if g.Driver().State().Tick != 0 {
		t.Errorf("Tick = %d, expected 0", g.Driver().State().Tick)
	}
}

func TestGameHeldKeysMovePaddle(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	start := g.Driver().State().Paddle.X

	g.Step(press(core.ActionLeft))
	if x := g.Driver().State().Paddle.X; x != start-7 {
		t.Errorf("Paddle.X = %v, expected %v", x, start-7)
	}

	// Releasing the key stops the paddle
	g.Step(core.NewInputFrame())
	if x := g.Driver().State().Paddle.X; x != start-7 {
		t.Errorf("Paddle.X = %v, expected %v", x, start-7)
	}
}

func TestGamePause(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	g.Step(press(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	tick := g.Driver().State().Tick
	for range 10 {
		g.Step(core.NewInputFrame())
	}
	if g.Driver().State().Tick != tick {
		t.Error("paused game advanced")
	}

	g.Step(press(core.ActionPause))
	if g.State().Paused {
		t.Error("expected unpaused")
	}
}

func TestGameRestartAfterLoss(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	d := g.Driver()
	d.State().Lives = 1
	sendToBottomCorner(d)
	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver || res.State.Won {
		t.Fatalf("State = %+v, expected lost", res.State)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), LoseMessage) {
		t.Error("loss modal not rendered")
	}

	// Other input is ignored on the modal
	g.Step(press(core.ActionLeft))
	if !g.State().GameOver {
		t.Fatal("modal dismissed without confirm")
	}

	g.Step(press(core.ActionConfirm))
	st := g.State()
	if st.GameOver || st.Lives != 3 {
		t.Errorf("State after confirm = %+v", st)
	}
}

func TestGameRenderHUD(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if row := screen.Row(0); !strings.Contains(row, "Score: 0") || !strings.Contains(row, "Lives: 3") {
		t.Errorf("HUD row = %q", row)
	}
	if screen.GetCell(40, 22).Rune != core.CircleGlyph {
		t.Errorf("ball not drawn at (40, 22): %q", screen.GetCell(40, 22).Rune)
	}
	if screen.GetCell(4, 2).Rune != core.RectGlyph {
		t.Error("first brick not drawn")
	}
}

func TestGameScreenTooSmall(t *testing.T) {
	g := New()
	rt := testRuntime()
	rt.ScreenW, rt.ScreenH = 20, 8
	g.Reset(rt)

	g.Step(press(core.ActionRight))
	if g.Driver().State().Tick != 0 {
		t.Error("game advanced on a too-small screen")
	}

	screen := core.NewScreen(20, 8)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("expected too-small message")
	}
}

func TestGameDifficultyPreset(t *testing.T) {
	rt := testRuntime()
	rt.Difficulty = string(config.DifficultyEasy)

	g := New()
	g.Reset(rt)
	if st := g.State(); st.Lives != 5 {
		t.Errorf("Lives = %d, expected 5", st.Lives)
	}
	if w := g.Driver().State().Paddle.Width; w != 100 {
		t.Errorf("Paddle.Width = %v, expected 100", w)
	}
}

func TestDemoNeverLosesALife(t *testing.T) {
	g := NewDemo()
	g.Reset(testRuntime())

	for i := range 20000 {
		res := g.Step(core.NewInputFrame())
		if res.State.Lives != 3 {
			t.Fatalf("tick %d: demo lost a life", i)
		}
		if res.State.GameOver {
			break
		}
	}
	if g.State().Score == 0 {
		t.Error("demo never hit a brick")
	}
}

func TestDemoDeterminism(t *testing.T) {
	run := func() uint64 {
		g := NewDemo()
		g.Reset(testRuntime())
		for range 5000 {
			g.Step(core.NewInputFrame())
		}
		snap := g.Driver().Snapshot()
		return snap.Hash()
	}
	if h1, h2 := run(), run(); h1 != h2 {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", h1, h2)
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhasePlaying, "playing"},
		{PhaseWon, "won"},
		{PhaseLost, "lost"},
		{Phase(9), "unknown"},
	}
	for _, tt := range tests {
		if got := fmt.Sprint(tt.phase); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, expected %q", tt.phase, got, tt.want)
		}
	}
}
