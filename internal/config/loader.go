package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a loaded config cannot produce a playable game.
var ErrInvalidConfig = errors.New("invalid config")

// LoadBreakout loads Breakout configuration.
// Search order: customPath -> ~/.breakout/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	// Start from defaults so partial files only override what they name
	cfg := DefaultBreakoutConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("breakout.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
			cfg = DefaultBreakoutConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/breakout.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
		cfg = DefaultBreakoutConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBreakoutYAML, &cfg); err != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakout", "configs", filename)
}

// Validate checks that the config describes a playable game.
func (c BreakoutConfig) Validate() error {
	switch {
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return fmt.Errorf("%w: canvas must be positive, got %vx%v", ErrInvalidConfig, c.Canvas.Width, c.Canvas.Height)
	case c.Ball.Radius <= 0:
		return fmt.Errorf("%w: ball radius must be positive", ErrInvalidConfig)
	case c.Ball.StartOffset < c.Ball.Radius || c.Ball.StartOffset > c.Canvas.Height-c.Ball.Radius:
		return fmt.Errorf("%w: ball start offset %v must keep the ball on the canvas", ErrInvalidConfig, c.Ball.StartOffset)
	case c.Ball.DX == 0 && c.Ball.DY == 0:
		return fmt.Errorf("%w: ball serve velocity is zero", ErrInvalidConfig)
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return fmt.Errorf("%w: paddle must be positive", ErrInvalidConfig)
	case c.Paddle.Width > c.Canvas.Width:
		return fmt.Errorf("%w: paddle wider than canvas", ErrInvalidConfig)
	case c.Paddle.Step <= 0:
		return fmt.Errorf("%w: paddle step must be positive", ErrInvalidConfig)
	case c.Bricks.Rows < 1 || c.Bricks.Columns < 1:
		return fmt.Errorf("%w: brick grid must have at least one row and column", ErrInvalidConfig)
	case c.Bricks.Width <= 0 || c.Bricks.Height <= 0 || c.Bricks.Padding < 0:
		return fmt.Errorf("%w: brick size must be positive", ErrInvalidConfig)
	case c.Gameplay.Lives < 1:
		return fmt.Errorf("%w: lives must be at least 1", ErrInvalidConfig)
	}

	gridRight := c.Bricks.OffsetLeft + float64(c.Bricks.Rows)*(c.Bricks.Width+c.Bricks.Padding) - c.Bricks.Padding
	gridBottom := c.Bricks.OffsetTop + float64(c.Bricks.Columns)*(c.Bricks.Height+c.Bricks.Padding) - c.Bricks.Padding
	if gridRight > c.Canvas.Width || gridBottom > c.Canvas.Height-c.Ball.StartOffset {
		return fmt.Errorf("%w: brick grid %vx%v does not fit the canvas", ErrInvalidConfig, gridRight, gridBottom)
	}

	return nil
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 100
		cfg.Ball.DX, cfg.Ball.DY = 1.5, -1.5
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 60
		cfg.Ball.DX, cfg.Ball.DY = 3, -3
	}
}
