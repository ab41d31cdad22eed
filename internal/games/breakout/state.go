// Package breakout implements a classic single-screen Breakout: one ball,
// one paddle and a fixed brick wall, simulated in canvas pixel space.
package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
)

// Phase is the top-level state of a simulation.
type Phase uint8

const (
	PhasePlaying Phase = iota // Ball in play
	PhaseWon                  // Every brick destroyed
	PhaseLost                 // No lives left
)

// String returns the phase name used in logs and run records.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase ends the game.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// Ball is the ball's centre and per-tick velocity in canvas pixels.
type Ball struct {
	X, Y   float64
	DX, DY float64
	Radius float64
}

// Paddle sits on the bottom edge of the canvas; only X changes.
type Paddle struct {
	X      float64
	Width  float64
	Height float64
}

// State is the complete mutable simulation record.
type State struct {
	Ball   Ball
	Paddle Paddle
	Bricks *Grid
	Score  int
	Lives  int
	Phase  Phase
	Tick   int
}

// NewState builds a fresh simulation: full brick wall, full lives, ball served.
func NewState(cfg config.BreakoutConfig) *State {
	s := &State{
		Bricks: NewGrid(cfg.Bricks),
		Lives:  cfg.Gameplay.Lives,
		Phase:  PhasePlaying,
	}
	s.ResetServe(cfg, 1)
	return s
}

// ResetServe puts the ball and paddle back at their starting positions.
// speed scales the configured serve velocity.
func (s *State) ResetServe(cfg config.BreakoutConfig, speed float64) {
	s.Ball = Ball{
		X:      cfg.Canvas.Width / 2,
		Y:      cfg.Canvas.Height - cfg.Ball.StartOffset,
		DX:     cfg.Ball.DX * speed,
		DY:     cfg.Ball.DY * speed,
		Radius: cfg.Ball.Radius,
	}
	s.Paddle = Paddle{
		X:      (cfg.Canvas.Width - cfg.Paddle.Width) / 2,
		Width:  cfg.Paddle.Width,
		Height: cfg.Paddle.Height,
	}
}
