package breakout

import (
	"errors"
	"fmt"
	"math"
)

// ErrSnapshotLayout is returned when a snapshot was taken with a different brick grid.
var ErrSnapshotLayout = errors.New("snapshot brick layout does not match")

// Snapshot captures the simulation state in primitive fields for
// replays and determinism checks.
type Snapshot struct {
	Tick    int
	BallX   float64
	BallY   float64
	BallDX  float64
	BallDY  float64
	PaddleX float64
	Score   int
	Lives   int
	Phase   Phase

	// Bricks is indexed column-major like the grid: c*rows + r
	Bricks []bool
}

// Snapshot returns the current state.
func (d *Driver) Snapshot() Snapshot {
	s := d.state
	bricks := make([]bool, len(s.Bricks.alive))
	copy(bricks, s.Bricks.alive)

	return Snapshot{
		Tick:    s.Tick,
		BallX:   s.Ball.X,
		BallY:   s.Ball.Y,
		BallDX:  s.Ball.DX,
		BallDY:  s.Ball.DY,
		PaddleX: s.Paddle.X,
		Score:   s.Score,
		Lives:   s.Lives,
		Phase:   s.Phase,
		Bricks:  bricks,
	}
}

// ApplySnapshot restores state captured by Snapshot. A snapshot taken with
// a different brick layout is rejected and the driver is left untouched.
func (d *Driver) ApplySnapshot(snap Snapshot) error {
	s := d.state
	if len(snap.Bricks) != len(s.Bricks.alive) {
		return fmt.Errorf("%w: %d bricks, grid has %d", ErrSnapshotLayout, len(snap.Bricks), len(s.Bricks.alive))
	}

	s.Tick = snap.Tick
	s.Ball.X, s.Ball.Y = snap.BallX, snap.BallY
	s.Ball.DX, s.Ball.DY = snap.BallDX, snap.BallDY
	s.Paddle.X = snap.PaddleX
	s.Score = snap.Score
	s.Lives = snap.Lives
	s.Phase = snap.Phase
	copy(s.Bricks.alive, snap.Bricks)
	return nil
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallDX)
	h = h*31 + math.Float64bits(snap.BallDY)
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)

	for _, alive := range snap.Bricks {
		h *= 31
		if alive {
			h++
		}
	}

	return h
}
