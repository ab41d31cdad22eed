package core

import "math"

// Surface is a 2D drawing target addressed in canvas pixels.
// Games draw through it without knowing whether the pixels end up in a
// terminal cell grid or a browser canvas.
type Surface interface {
	// ClearRect erases the given area.
	ClearRect(x, y, w, h float64)

	// FillRect paints a solid rectangle.
	FillRect(x, y, w, h float64, c Color)

	// FillCircle paints a solid circle centred on (cx, cy).
	FillCircle(cx, cy, r float64, c Color)

	// FillText draws text whose baseline starts at (x, y).
	FillText(x, y float64, text string, c Color)
}

// Glyphs used when rasterising canvas primitives into cells.
const (
	RectGlyph   = '█'
	CircleGlyph = '●'
)

// CanvasSurface rasterises a canvasW x canvasH pixel canvas onto a Screen,
// scaling each axis independently to fill the whole screen.
type CanvasSurface struct {
	screen  *Screen
	canvasW float64
	canvasH float64
}

// NewCanvasSurface creates a surface that maps canvas pixels onto dst.
func NewCanvasSurface(dst *Screen, canvasW, canvasH float64) *CanvasSurface {
	return &CanvasSurface{screen: dst, canvasW: canvasW, canvasH: canvasH}
}

// scale returns the cells-per-pixel factors for each axis.
func (c *CanvasSurface) scale() (sx, sy float64) {
	if c.canvasW <= 0 || c.canvasH <= 0 {
		return 0, 0
	}
	return float64(c.screen.Width()) / c.canvasW, float64(c.screen.Height()) / c.canvasH
}

// span maps the pixel interval [a, b) onto a non-empty cell interval.
// Intervals touching the far edge are pulled back inside [0, limit).
func span(a, b, scale float64, limit int) (int, int) {
	start := int(math.Round(a * scale))
	end := int(math.Round(b * scale))
	if end <= start {
		end = start + 1
	}
	if end > limit && start >= limit-1 {
		end = limit
		start = limit - 1
	}
	return start, end
}

// ClearRect erases every cell the area covers.
func (c *CanvasSurface) ClearRect(x, y, w, h float64) {
	sx, sy := c.scale()
	x0, x1 := span(x, x+w, sx, c.screen.Width())
	y0, y1 := span(y, y+h, sy, c.screen.Height())
	c.screen.DrawRectColor(NewRect(x0, y0, x1-x0, y1-y0), ' ', ColorDefault)
}

// FillRect fills every cell the rectangle covers.
func (c *CanvasSurface) FillRect(x, y, w, h float64, col Color) {
	sx, sy := c.scale()
	x0, x1 := span(x, x+w, sx, c.screen.Width())
	y0, y1 := span(y, y+h, sy, c.screen.Height())
	c.screen.DrawRectColor(NewRect(x0, y0, x1-x0, y1-y0), RectGlyph, col)
}

// FillCircle fills the cells whose centres fall inside the circle.
// The cell holding the centre is always painted so small circles stay visible.
func (c *CanvasSurface) FillCircle(cx, cy, r float64, col Color) {
	sx, sy := c.scale()
	if sx == 0 || sy == 0 {
		return
	}
	x0, x1 := span(cx-r, cx+r, sx, c.screen.Width())
	y0, y1 := span(cy-r, cy+r, sy, c.screen.Height())
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			px := (float64(x) + 0.5) / sx
			py := (float64(y) + 0.5) / sy
			if (px-cx)*(px-cx)+(py-cy)*(py-cy) <= r*r {
				c.screen.SetCell(x, y, CircleGlyph, col)
			}
		}
	}
	c.screen.SetCell(int(cx*sx), int(cy*sy), CircleGlyph, col)
}

// FillText draws text on the cell row just above the baseline.
func (c *CanvasSurface) FillText(x, y float64, text string, col Color) {
	sx, sy := c.scale()
	row := int(math.Ceil(y*sy)) - 1
	if row < 0 {
		row = 0
	}
	c.screen.DrawTextColor(int(math.Round(x*sx)), row, text, col)
}
