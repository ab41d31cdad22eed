package config

// DifficultyManager maps progress through a game onto a serve-speed level.
type DifficultyManager struct {
	cfg   DifficultyConfig
	floor float64
}

// NewDifficultyManager creates a manager for cfg. InitialLevel is clamped to [0, 1].
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, floor: clampF(cfg.InitialLevel, 0, 1)}
}

// IsEnabled reports whether the level moves with score or time.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns a value in [InitialLevel, 1]. Progress is measured in bricks
// for "score" and in ticks for "time", reaching 1 at Progression.MaxAt.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.floor
	}

	var done int
	switch d.cfg.Progression.Type {
	case "score":
		done = score
	case "time":
		done = ticks
	default:
		return d.floor
	}

	span := max(d.cfg.Progression.MaxAt, 1)
	frac := clampF(float64(done)/float64(span), 0, 1)
	return d.floor + (1-d.floor)*frac
}

// Speed scales a serve speed. At level 1 it is base*(1+SpeedMultiplier);
// a disabled config returns base untouched.
func (d *DifficultyManager) Speed(base float64, score int, ticks int) float64 {
	if !d.cfg.Enabled {
		return base
	}
	return base + base*d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier
}

func clampF(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
