// Package config provides YAML-based game configuration loading and
// difficulty management for the breakout game.
package config

// BreakoutConfig contains all configuration for the Breakout game.
// Distances are canvas pixels, speeds are pixels per tick.
type BreakoutConfig struct {
	Canvas     BreakoutCanvas   `yaml:"canvas"`
	Ball       BreakoutBall     `yaml:"ball"`
	Paddle     BreakoutPaddle   `yaml:"paddle"`
	Bricks     BreakoutBricks   `yaml:"bricks"`
	Gameplay   BreakoutGameplay `yaml:"gameplay"`
	Input      BreakoutInput    `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BreakoutCanvas defines the playfield size.
type BreakoutCanvas struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BreakoutBall defines the ball and its serve.
type BreakoutBall struct {
	Radius      float64 `yaml:"radius"`
	DX          float64 `yaml:"dx"`           // Serve velocity, x
	DY          float64 `yaml:"dy"`           // Serve velocity, y (negative = up)
	StartOffset float64 `yaml:"start_offset"` // Serve height above the bottom edge
}

// BreakoutPaddle defines the paddle.
type BreakoutPaddle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Step   float64 `yaml:"step"` // Distance moved per tick while a direction is held
}

// BreakoutBricks defines the brick grid geometry.
// Row index advances along x, column index along y.
type BreakoutBricks struct {
	Rows       int     `yaml:"rows"`
	Columns    int     `yaml:"columns"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Padding    float64 `yaml:"padding"`
	OffsetTop  float64 `yaml:"offset_top"`
	OffsetLeft float64 `yaml:"offset_left"`
}

// BreakoutGameplay defines rules.
type BreakoutGameplay struct {
	Lives int `yaml:"lives"`
}

// BreakoutInput defines terminal input handling.
type BreakoutInput struct {
	// HoldTicks is how long a direction stays held after its last key
	// repeat. Terminals report presses only, never releases.
	HoldTicks int `yaml:"hold_ticks"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to serve speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the selectable presets in menu order.
var Presets = []DifficultyPreset{DifficultyFixed, DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset converts a preset name into a DifficultyPreset.
// Unknown or empty names return "" and false.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(name), true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// TotalBricks returns the number of bricks in the grid.
func (c BreakoutConfig) TotalBricks() int {
	return c.Bricks.Rows * c.Bricks.Columns
}
