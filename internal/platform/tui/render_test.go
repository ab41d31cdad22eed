package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestRenderScreenKeepsLayout(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawRectColor(core.NewRect(1, 0, 3, 1), core.RectGlyph, core.ColorBrightBlue)
	s.DrawTextColor(0, 1, "Hi", core.ColorDefault)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, expected 2", len(lines))
	}
	if !strings.Contains(lines[0], "███") {
		t.Errorf("first line %q lacks the rect", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Hi") {
		t.Errorf("second line = %q", lines[1])
	}
}

func TestTickInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / 60},
		{-5, time.Second / 60},
	}
	for _, tt := range tests {
		if got := tickInterval(tt.rate); got != tt.want {
			t.Errorf("tickInterval(%d) = %v, expected %v", tt.rate, got, tt.want)
		}
	}
}
