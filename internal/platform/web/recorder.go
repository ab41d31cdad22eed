package web

import "github.com/vovakirdan/tui-breakout/internal/core"

// Recorder is a core.Surface that records draw calls for the browser.
type Recorder struct {
	ops []DrawOp
}

// Reset drops the recorded ops, keeping the buffer.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}

// Ops returns a copy of the recorded ops.
func (r *Recorder) Ops() []DrawOp {
	out := make([]DrawOp, len(r.ops))
	copy(out, r.ops)
	return out
}

func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.ops = append(r.ops, DrawOp{Op: OpClear, X: x, Y: y, W: w, H: h})
}

func (r *Recorder) FillRect(x, y, w, h float64, c core.Color) {
	r.ops = append(r.ops, DrawOp{Op: OpRect, X: x, Y: y, W: w, H: h, Color: c.Hex()})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c core.Color) {
	r.ops = append(r.ops, DrawOp{Op: OpCircle, X: cx, Y: cy, R: radius, Color: c.Hex()})
}

func (r *Recorder) FillText(x, y float64, text string, c core.Color) {
	r.ops = append(r.ops, DrawOp{Op: OpText, X: x, Y: y, Text: text, Color: c.Hex()})
}
