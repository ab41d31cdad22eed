package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Canvas: BreakoutCanvas{
			Width:  640,
			Height: 480,
		},
		Ball: BreakoutBall{
			Radius:      10,
			DX:          2,
			DY:          -2,
			StartOffset: 30,
		},
		Paddle: BreakoutPaddle{
			Width:  75,
			Height: 10,
			Step:   7,
		},
		Bricks: BreakoutBricks{
			Rows:       7,
			Columns:    5,
			Width:      75,
			Height:     20,
			Padding:    10,
			OffsetTop:  30,
			OffsetLeft: 30,
		},
		Gameplay: BreakoutGameplay{
			Lives: 3,
		},
		Input: BreakoutInput{
			HoldTicks: 30,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 35,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "breakout", "breakout_demo":
		return defaultBreakoutYAML
	default:
		return nil
	}
}
