package breakout

import "sync/atomic"

// Latch holds the left/right key-hold flags. Input handlers may write it
// from any goroutine; the driver reads it once per frame.
type Latch struct {
	left  atomic.Bool
	right atomic.Bool
}

// SetLeft records whether the left key is held.
func (l *Latch) SetLeft(held bool) { l.left.Store(held) }

// SetRight records whether the right key is held.
func (l *Latch) SetRight(held bool) { l.right.Store(held) }

// Held returns the current flags.
func (l *Latch) Held() (left, right bool) {
	return l.left.Load(), l.right.Load()
}

// Release drops both flags.
func (l *Latch) Release() {
	l.left.Store(false)
	l.right.Store(false)
}
