package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Colors used when drawing.
const (
	ColorInk       = core.ColorBrightBlue
	ColorBrickEven = core.ColorBrightBlue
	ColorBrickOdd  = core.ColorBlue
)

// HUD text positions, canvas pixels from the top-left and top-right.
const (
	hudScoreX     = 8
	hudBaseline   = 20
	hudLivesInset = 65
)

// Render clears the surface and draws bricks, ball, paddle, score and lives,
// in that order. It only reads s.
func Render(s *State, cfg config.BreakoutConfig, dst core.Surface) {
	w, h := cfg.Canvas.Width, cfg.Canvas.Height
	dst.ClearRect(0, 0, w, h)

	g := s.Bricks
	for c := range g.Columns() {
		col := ColorBrickEven
		if c%2 == 1 {
			col = ColorBrickOdd
		}
		for r := range g.Rows() {
			if !g.Alive(c, r) {
				continue
			}
			rect := g.Rect(c, r)
			dst.FillRect(rect.X, rect.Y, rect.W, rect.H, col)
		}
	}

	dst.FillCircle(s.Ball.X, s.Ball.Y, s.Ball.Radius, ColorInk)

	p := s.Paddle
	dst.FillRect(p.X, h-p.Height, p.Width, p.Height, ColorInk)

	dst.FillText(hudScoreX, hudBaseline, fmt.Sprintf("Score: %d", s.Score), ColorInk)
	dst.FillText(w-hudLivesInset, hudBaseline, fmt.Sprintf("Lives: %d", s.Lives), ColorInk)
}
