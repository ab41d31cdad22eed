package breakout

import "math/rand"

// Autopilot steers the paddle toward the ball through the latch, the same
// way a player's keys would.
type Autopilot struct {
	rng      *rand.Rand
	skill    float64
	deadzone float64
}

// NewAutopilot creates a pilot. skill is the chance per frame that it
// reacts at all; 1 reacts every frame.
func NewAutopilot(seed int64, skill float64) *Autopilot {
	if skill <= 0 || skill > 1 {
		skill = 1
	}
	return &Autopilot{
		rng:      rand.New(rand.NewSource(seed)), //#nosec G404 -- gameplay randomness, not security
		skill:    skill,
		deadzone: 4,
	}
}

// Steer reads the ball and paddle from s and writes the latch.
func (a *Autopilot) Steer(s *State, l *Latch) {
	if a.rng.Float64() >= a.skill {
		l.Release()
		return
	}

	center := s.Paddle.X + s.Paddle.Width/2
	switch {
	case s.Ball.X > center+a.deadzone:
		l.SetLeft(false)
		l.SetRight(true)
	case s.Ball.X < center-a.deadzone:
		l.SetRight(false)
		l.SetLeft(true)
	default:
		l.Release()
	}
}
