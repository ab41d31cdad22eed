package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Outcome messages shown when a game ends.
const (
	WinMessage  = "YOU WIN, CONGRATS!"
	LoseMessage = "GAME OVER"
)

// demoSkill keeps the attract-mode pilot slightly imperfect.
const demoSkill = 0.9

// demoRestartTicks is how long the demo shows its outcome before replaying.
const demoRestartTicks = 180

// Game adapts a Driver to the platform's registry.Game interface.
type Game struct {
	demo bool

	runtime core.RuntimeConfig
	driver  *Driver
	pilot   *Autopilot
	paused  bool
	idle    int // Ticks spent on a terminal screen (demo only)

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a player-controlled Breakout game.
func New() *Game {
	return &Game{}
}

// NewDemo creates a Breakout game steered by the autopilot.
func NewDemo() *Game {
	return &Game{demo: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.demo {
		return "breakout_demo"
	}
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.demo {
		return "Breakout (Demo)"
	}
	return "Breakout"
}

// Demo reports whether the autopilot is playing.
func (g *Game) Demo() bool { return g.demo }

// LoadConfig resolves the game config for a runtime: the config search
// order first, then the difficulty preset on top.
func LoadConfig(runtime core.RuntimeConfig) (config.BreakoutConfig, error) {
	cfg, err := config.LoadBreakout(runtime.ConfigPath)
	if err != nil {
		return config.DefaultBreakoutConfig(), err
	}
	if preset, ok := config.ParsePreset(runtime.Difficulty); ok {
		config.ApplyBreakoutPreset(&cfg, preset)
	}
	return cfg, nil
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// A broken config file falls back to defaults; the CLI reports it up front.
	cfg, _ := LoadConfig(runtime)
	g.driver = NewDriver(cfg)

	if g.demo {
		g.pilot = NewAutopilot(runtime.Seed, demoSkill)
	}

	g.paused = false
	g.idle = 0

	g.minScreenW = 30
	g.minScreenH = 12
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH
}

// Resize adapts to a new screen size. The canvas scales, so play continues.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW, g.runtime.ScreenH = screenW, screenH
	g.screenTooSmall = screenW < g.minScreenW || screenH < g.minScreenH
}

// Driver exposes the underlying simulation.
func (g *Game) Driver() *Driver {
	return g.driver
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	phase := g.driver.Phase()
	if phase.Terminal() {
		g.idle++
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) || (g.demo && g.idle >= demoRestartTicks) {
			g.driver.Reinitialize()
			g.idle = 0
			g.paused = false
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	latch := g.driver.Latch()
	if g.pilot != nil {
		g.pilot.Steer(g.driver.State(), latch)
	} else {
		latch.SetLeft(in.Has(core.ActionLeft))
		latch.SetRight(in.Has(core.ActionRight))
	}

	events := g.driver.Advance()
	return core.StepResult{State: g.State(), Events: events}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	cfg := g.driver.Config()
	g.driver.Render(core.NewCanvasSurface(dst, cfg.Canvas.Width, cfg.Canvas.Height))

	switch {
	case g.driver.Phase() == PhaseWon:
		drawCenteredBox(dst, WinMessage, g.restartHint())
	case g.driver.Phase() == PhaseLost:
		drawCenteredBox(dst, LoseMessage, g.restartHint())
	case g.paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case g.demo:
		dst.DrawTextCentered(dst.Height()-1, "DEMO")
	}
}

func (g *Game) restartHint() string {
	if g.demo {
		return fmt.Sprintf("Score: %d", g.driver.State().Score)
	}
	return "Press ENTER to play again"
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	phase := g.driver.Phase()
	s := g.driver.State()
	return core.GameState{
		Score:    s.Score,
		Lives:    s.Lives,
		GameOver: phase.Terminal(),
		Won:      phase == PhaseWon,
		Paused:   g.paused,
	}
}

// Register the games with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
	registry.Register("breakout_demo", func() registry.Game {
		return NewDemo()
	})
}
