package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Driver owns one simulation and advances it one frame at a time.
// Frame, Advance, Render and Reinitialize must be called from a single
// goroutine; only the latch is safe for concurrent use.
type Driver struct {
	cfg        config.BreakoutConfig
	difficulty *config.DifficultyManager
	state      *State
	latch      Latch
}

// NewDriver creates a driver with a fresh simulation.
func NewDriver(cfg config.BreakoutConfig) *Driver {
	d := &Driver{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	d.Reinitialize()
	return d
}

// Config returns the constants the driver was built with.
func (d *Driver) Config() config.BreakoutConfig { return d.cfg }

// State returns the live simulation state. Callers must treat it as read-only.
func (d *Driver) State() *State { return d.state }

// Latch returns the input latch that steers the paddle.
func (d *Driver) Latch() *Latch { return &d.latch }

// Phase returns the current phase.
func (d *Driver) Phase() Phase { return d.state.Phase }

// Reinitialize throws the current simulation away and starts over.
// Hosts call it after showing a terminal outcome.
func (d *Driver) Reinitialize() {
	d.state = NewState(d.cfg)
	d.serve()
	d.latch.Release()
}

// Frame renders the current state, then advances it by one step.
func (d *Driver) Frame(dst core.Surface) []core.Event {
	d.Render(dst)
	return d.Advance()
}

// Render draws the current state without advancing it.
func (d *Driver) Render(dst core.Surface) {
	Render(d.state, d.cfg, dst)
}

// Advance resolves collisions, then moves the ball and the paddle.
// It does nothing once the game has been won or lost. On the frame a life
// is lost the ball and paddle are re-served and nothing else moves, so the
// next frame starts from the exact serve position. The browser version kept
// going after the miss and moved both once more in the same frame.
func (d *Driver) Advance() []core.Event {
	s := d.state
	if s.Phase.Terminal() {
		return nil
	}
	s.Tick++

	events, missed := Resolve(s, d.cfg)
	if s.Phase.Terminal() {
		return events
	}
	if missed {
		d.serve()
		return events
	}

	moveBall(s)
	left, right := d.latch.Held()
	movePaddle(s, d.cfg, left, right)
	return events
}

// serve resets ball and paddle, scaling the serve speed by difficulty.
func (d *Driver) serve() {
	speed := d.difficulty.Speed(1, d.state.Score, d.state.Tick)
	d.state.ResetServe(d.cfg, speed)
}
