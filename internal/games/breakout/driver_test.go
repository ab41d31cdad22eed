package breakout

import (
	"errors"
	"slices"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

func newTestDriver() *Driver {
	return NewDriver(config.DefaultBreakoutConfig())
}

// checkInvariants verifies the properties that must hold after every frame.
func checkInvariants(t *testing.T, d *Driver) {
	t.Helper()
	s := d.State()
	if got := s.Bricks.AliveCount() + s.Score; got != s.Bricks.Total() {
		t.Fatalf("alive + score = %d, expected %d", got, s.Bricks.Total())
	}
	if s.Score < 0 || s.Score > s.Bricks.Total() {
		t.Fatalf("score = %d out of range", s.Score)
	}
	if s.Lives < 0 {
		t.Fatalf("lives = %d, expected >= 0", s.Lives)
	}
	switch s.Phase {
	case PhasePlaying, PhaseWon, PhaseLost:
	default:
		t.Fatalf("unknown phase %v", s.Phase)
	}
}

func TestNewDriverInitialState(t *testing.T) {
	d := newTestDriver()
	s := d.State()

	if s.Phase != PhasePlaying {
		t.Errorf("Phase = %v, expected playing", s.Phase)
	}
	if s.Lives != 3 || s.Score != 0 {
		t.Errorf("Lives/Score = %d/%d, expected 3/0", s.Lives, s.Score)
	}
	want := Ball{X: 320, Y: 450, DX: 2, DY: -2, Radius: 10}
	if s.Ball != want {
		t.Errorf("Ball = %+v, expected %+v", s.Ball, want)
	}
	if s.Paddle.X != 282.5 {
		t.Errorf("Paddle.X = %v, expected 282.5", s.Paddle.X)
	}
	if s.Bricks.Total() != 35 || s.Bricks.AliveCount() != 35 {
		t.Errorf("bricks = %d/%d, expected 35/35", s.Bricks.AliveCount(), s.Bricks.Total())
	}
}

func TestAdvanceMovesBall(t *testing.T) {
	d := newTestDriver()
	d.Advance()
	s := d.State()
	if s.Ball.X != 322 || s.Ball.Y != 448 {
		t.Errorf("Ball = (%v, %v), expected (322, 448)", s.Ball.X, s.Ball.Y)
	}
	if s.Tick != 1 {
		t.Errorf("Tick = %d, expected 1", s.Tick)
	}
}

func TestPaddleClampedAtLeftEdge(t *testing.T) {
	d := newTestDriver()
	d.State().Paddle.X = 0
	d.Latch().SetLeft(true)

	for range 10 {
		d.Advance()
		if x := d.State().Paddle.X; x != 0 {
			t.Fatalf("Paddle.X = %v, expected 0", x)
		}
	}
}

func TestPaddleClampedAtRightEdge(t *testing.T) {
	d := newTestDriver()
	d.Latch().SetRight(true)

	for range 100 {
		d.Advance()
	}
	if x := d.State().Paddle.X; x != 640-75 {
		t.Errorf("Paddle.X = %v, expected %v", x, 640-75)
	}
}

func TestPaddleRightWinsOverLeft(t *testing.T) {
	d := newTestDriver()
	start := d.State().Paddle.X
	d.Latch().SetLeft(true)
	d.Latch().SetRight(true)
	d.Advance()
	if x := d.State().Paddle.X; x != start+7 {
		t.Errorf("Paddle.X = %v, expected %v", x, start+7)
	}
}

func TestLeftWallFlipsDX(t *testing.T) {
	d := newTestDriver()
	s := d.State()
	s.Ball.X = 10
	s.Ball.Y = 300
	s.Ball.DX = -2

	events := d.Advance()
	if s.Ball.DX != 2 {
		t.Errorf("DX = %v, expected 2", s.Ball.DX)
	}
	if s.Ball.X != 12 {
		t.Errorf("X = %v, expected 12", s.Ball.X)
	}
	if !slices.Contains(events, core.EventWallBounce) {
		t.Errorf("events = %v, expected wall bounce", events)
	}
}

func TestTopWallFlipsDY(t *testing.T) {
	d := newTestDriver()
	s := d.State()
	s.Ball.X = 620 // right of the brick wall
	s.Ball.Y = 11
	s.Ball.DX = 0
	s.Ball.DY = -2

	d.Advance()
	if s.Ball.DY != 2 {
		t.Errorf("DY = %v, expected 2", s.Ball.DY)
	}
}

func TestPaddleBounce(t *testing.T) {
	d := newTestDriver()
	s := d.State()
	s.Ball.X = 320
	s.Ball.Y = 470
	s.Ball.DY = 2

	events := d.Advance()
	if s.Ball.DY != -2 {
		t.Errorf("DY = %v, expected -2", s.Ball.DY)
	}
	if s.Lives != 3 {
		t.Errorf("Lives = %d, expected 3", s.Lives)
	}
	if !slices.Contains(events, core.EventPaddleBounce) {
		t.Errorf("events = %v, expected paddle bounce", events)
	}
}

// sendToBottomCorner puts the ball just above the lower-left corner with
// the paddle far away on the right.
func sendToBottomCorner(d *Driver) {
	s := d.State()
	s.Ball.X = 20
	s.Ball.Y = 470
	s.Ball.DX = -2
	s.Ball.DY = 2
	s.Paddle.X = 640 - 75
}

func TestMissResetsServe(t *testing.T) {
	d := newTestDriver()
	sendToBottomCorner(d)
	d.Latch().SetRight(true)

	events := d.Advance()
	s := d.State()

	if s.Lives != 2 {
		t.Errorf("Lives = %d, expected 2", s.Lives)
	}
	if s.Phase != PhasePlaying {
		t.Errorf("Phase = %v, expected playing", s.Phase)
	}
	want := Ball{X: 320, Y: 450, DX: 2, DY: -2, Radius: 10}
	if s.Ball != want {
		t.Errorf("Ball = %+v, expected %+v", s.Ball, want)
	}
	if s.Paddle.X != 282.5 {
		t.Errorf("Paddle.X = %v, expected 282.5", s.Paddle.X)
	}
	if !slices.Contains(events, core.EventLifeLost) {
		t.Errorf("events = %v, expected life lost", events)
	}
}

func TestThreeMissesLose(t *testing.T) {
	d := newTestDriver()

	for miss := 1; miss <= 3; miss++ {
		sendToBottomCorner(d)
		events := d.Advance()
		checkInvariants(t, d)

		if got := d.State().Lives; got != 3-miss {
			t.Fatalf("after miss %d: Lives = %d, expected %d", miss, got, 3-miss)
		}
		if miss < 3 && d.Phase() != PhasePlaying {
			t.Fatalf("after miss %d: Phase = %v, expected playing", miss, d.Phase())
		}
		if miss == 3 {
			if d.Phase() != PhaseLost {
				t.Fatalf("after miss 3: Phase = %v, expected lost", d.Phase())
			}
			if !slices.Contains(events, core.EventLost) {
				t.Errorf("events = %v, expected lost", events)
			}
		}
	}

	// Terminal phases do not advance
	before := d.Snapshot()
	if events := d.Advance(); events != nil {
		t.Errorf("Advance after loss returned %v", events)
	}
	after := d.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("Advance changed state after loss")
	}
}

func TestLastLifeDoesNotReset(t *testing.T) {
	d := newTestDriver()
	d.State().Lives = 1
	sendToBottomCorner(d)
	d.Advance()

	s := d.State()
	if s.Phase != PhaseLost || s.Lives != 0 {
		t.Errorf("Phase/Lives = %v/%d, expected lost/0", s.Phase, s.Lives)
	}
	// The ball is left where it was, not re-served
	if s.Ball.X != 20 || s.Ball.Y != 470 {
		t.Errorf("Ball = (%v, %v), expected (20, 470)", s.Ball.X, s.Ball.Y)
	}
}

func TestBrickHit(t *testing.T) {
	d := newTestDriver()
	s := d.State()
	// Centre of brick (0, 0): x 30..105, y 30..50
	s.Ball.X = 60
	s.Ball.Y = 40
	s.Ball.DY = -2

	events := d.Advance()
	if s.Score != 1 {
		t.Errorf("Score = %d, expected 1", s.Score)
	}
	if s.Bricks.Alive(0, 0) {
		t.Error("brick (0, 0) still alive")
	}
	if s.Ball.DY != 2 {
		t.Errorf("DY = %v, expected 2", s.Ball.DY)
	}
	if !slices.Contains(events, core.EventBrickHit) {
		t.Errorf("events = %v, expected brick hit", events)
	}
	checkInvariants(t, d)
}

func TestBrickEdgeIsNotHit(t *testing.T) {
	d := newTestDriver()
	s := d.State()
	s.Ball.X = 30 // exactly on the left edge of brick (0, 0)
	s.Ball.Y = 40
	d.Advance()
	if s.Score != 0 {
		t.Errorf("Score = %d, expected 0", s.Score)
	}
}

func TestOneBrickPerFrame(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	// Zero padding with negative offset makes neighbouring bricks overlap
	cfg.Bricks.Padding = -10
	d := NewDriver(cfg)
	s := d.State()

	// (0,0) spans x 30..105 and (0,1) spans x 95..170; x=100 is inside both
	s.Ball.X = 100
	s.Ball.Y = 40

	d.Advance()
	if s.Score != 1 {
		t.Fatalf("Score = %d, expected 1", s.Score)
	}
	if s.Bricks.Alive(0, 0) {
		t.Error("first brick in scan order should be hit")
	}
	if !s.Bricks.Alive(0, 1) {
		t.Error("second overlapping brick should survive the frame")
	}
}

func TestWinOnLastBrick(t *testing.T) {
	d := newTestDriver()
	s := d.State()

	// Destroy everything but the last brick in scan order
	for c := range s.Bricks.Columns() {
		for r := range s.Bricks.Rows() {
			if c == s.Bricks.Columns()-1 && r == s.Bricks.Rows()-1 {
				continue
			}
			s.Bricks.Kill(c, r)
			s.Score++
		}
	}
	checkInvariants(t, d)

	rect := s.Bricks.Rect(s.Bricks.Columns()-1, s.Bricks.Rows()-1)
	s.Ball.X = rect.X + rect.W/2
	s.Ball.Y = rect.Y + rect.H/2

	events := d.Advance()
	if s.Score != 35 {
		t.Errorf("Score = %d, expected 35", s.Score)
	}
	if d.Phase() != PhaseWon {
		t.Errorf("Phase = %v, expected won", d.Phase())
	}
	if !slices.Contains(events, core.EventWon) {
		t.Errorf("events = %v, expected won", events)
	}
	checkInvariants(t, d)
}

func TestReinitialize(t *testing.T) {
	d := newTestDriver()
	d.State().Lives = 1
	sendToBottomCorner(d)
	d.Advance()
	if d.Phase() != PhaseLost {
		t.Fatalf("Phase = %v, expected lost", d.Phase())
	}
	d.Latch().SetLeft(true)

	d.Reinitialize()
	s := d.State()
	if s.Phase != PhasePlaying || s.Lives != 3 || s.Score != 0 || s.Tick != 0 {
		t.Errorf("Reinitialize left %+v", s)
	}
	if s.Bricks.AliveCount() != 35 {
		t.Errorf("AliveCount = %d, expected 35", s.Bricks.AliveCount())
	}
	if left, right := d.Latch().Held(); left || right {
		t.Error("Reinitialize should release the latch")
	}
}

func TestInvariantsHoldDuringPlay(t *testing.T) {
	d := newTestDriver()
	prevScore, prevLives := 0, 3

	for i := range 20000 {
		// Wiggle the paddle so the run mixes catches and misses
		d.Latch().SetLeft(i%90 < 40)
		d.Latch().SetRight(i%90 >= 50)
		d.Advance()
		checkInvariants(t, d)

		s := d.State()
		if s.Score < prevScore {
			t.Fatalf("score decreased from %d to %d", prevScore, s.Score)
		}
		if s.Lives > prevLives {
			t.Fatalf("lives increased from %d to %d", prevLives, s.Lives)
		}
		prevScore, prevLives = s.Score, s.Lives
		if d.Phase().Terminal() {
			break
		}
	}
}

func TestDifficultyScalesServe(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = 1
	cfg.Difficulty.Scaling.SpeedMultiplier = 0.5
	d := NewDriver(cfg)

	s := d.State()
	if s.Ball.DX != 3 || s.Ball.DY != -3 {
		t.Errorf("serve velocity = (%v, %v), expected (3, -3)", s.Ball.DX, s.Ball.DY)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		d := newTestDriver()
		for i := range 3000 {
			d.Latch().SetLeft(i%7 < 3)
			d.Latch().SetRight(i%11 < 4)
			d.Advance()
		}
		return d.Snapshot()
	}

	snap1 := run()
	snap2 := run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	d := newTestDriver()
	for range 500 {
		d.Advance()
	}
	snap := d.Snapshot()

	other := newTestDriver()
	if err := other.ApplySnapshot(snap); err != nil {
		t.Fatalf("ApplySnapshot() failed: %v", err)
	}

	for range 500 {
		d.Advance()
		other.Advance()
	}
	a, b := d.Snapshot(), other.Snapshot()
	if a.Hash() != b.Hash() {
		t.Error("restored driver diverged from the snapshotted one")
	}
}

func TestApplySnapshotRejectsOtherLayout(t *testing.T) {
	d := newTestDriver()
	for range 2000 {
		d.Advance()
	}
	snap := d.Snapshot()

	cfg := config.DefaultBreakoutConfig()
	cfg.Bricks.Columns = 3
	small := NewDriver(cfg)
	before := small.Snapshot()

	if err := small.ApplySnapshot(snap); !errors.Is(err, ErrSnapshotLayout) {
		t.Fatalf("ApplySnapshot() = %v, expected ErrSnapshotLayout", err)
	}
	after := small.Snapshot()
	if after.Hash() != before.Hash() {
		t.Error("rejected snapshot still changed the driver")
	}
	checkInvariants(t, small)
}
