package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Resolve runs one frame of collision checks in order: bricks, walls,
// bottom edge, win. Wall and bottom checks look at where the ball will be
// after this frame's move.
//
// missed is true when the ball left the bottom edge with lives to spare;
// the caller is expected to serve again before moving anything.
func Resolve(s *State, cfg config.BreakoutConfig) (events []core.Event, missed bool) {
	if s.Phase.Terminal() {
		return nil, false
	}

	if hitBrick(s) {
		events = append(events, core.EventBrickHit)
	}

	b := &s.Ball
	w, h := cfg.Canvas.Width, cfg.Canvas.Height

	if b.X+b.DX > w-b.Radius || b.X+b.DX < b.Radius {
		b.DX = -b.DX
		events = append(events, core.EventWallBounce)
	}

	if b.Y+b.DY < b.Radius {
		b.DY = -b.DY
		events = append(events, core.EventWallBounce)
	} else if b.Y+b.DY > h-b.Radius {
		if b.X > s.Paddle.X && b.X < s.Paddle.X+s.Paddle.Width {
			b.DY = -b.DY
			events = append(events, core.EventPaddleBounce)
		} else {
			s.Lives--
			if s.Lives <= 0 {
				s.Lives = 0
				s.Phase = PhaseLost
				return append(events, core.EventLost), false
			}
			events = append(events, core.EventLifeLost)
			missed = true
		}
	}

	if s.Score == s.Bricks.Total() {
		s.Phase = PhaseWon
		events = append(events, core.EventWon)
	}

	return events, missed
}

// hitBrick destroys the first alive brick containing the ball's centre,
// scanning column by column. At most one brick is hit per frame.
func hitBrick(s *State) bool {
	g := s.Bricks
	for c := range g.Columns() {
		for r := range g.Rows() {
			if !g.Alive(c, r) {
				continue
			}
			if g.Rect(c, r).ContainsStrict(s.Ball.X, s.Ball.Y) {
				s.Ball.DY = -s.Ball.DY
				g.Kill(c, r)
				s.Score++
				return true
			}
		}
	}
	return false
}

// moveBall advances the ball by its velocity.
func moveBall(s *State) {
	s.Ball.X += s.Ball.DX
	s.Ball.Y += s.Ball.DY
}

// movePaddle steps the paddle from the held directions. Right wins when
// both are held. The paddle never leaves [0, width-paddleWidth].
func movePaddle(s *State, cfg config.BreakoutConfig, left, right bool) {
	maxX := cfg.Canvas.Width - s.Paddle.Width
	switch {
	case right && s.Paddle.X < maxX:
		s.Paddle.X += cfg.Paddle.Step
	case left && s.Paddle.X > 0:
		s.Paddle.X -= cfg.Paddle.Step
	}
	s.Paddle.X = core.ClampF(s.Paddle.X, 0, maxX)
}
