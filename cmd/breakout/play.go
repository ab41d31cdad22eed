package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/audio"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var (
	flagSound   bool
	flagLogFile string
	flagDemo    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Breakout",
	Long: `Start playing Breakout in this terminal.

Controls:
  Left/Right, A/D, H/L - Move the paddle
  P/Esc                - Pause
  Enter/R              - Play again (after game over)
  Ctrl+S               - Save a screenshot
  Q/Ctrl+C             - Quit

Difficulty options:
  fixed  - Classic: the serve never speeds up
  easy   - Wider paddle, slower ball, five lives
  normal - Serve speeds up as you score
  hard   - Narrow paddle, fast ball, two lives

Examples:
  breakout play
  breakout play --difficulty easy
  breakout play --sound
  breakout play --demo
  breakout play --config ./my-breakout.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the game owns the terminal)")
	playCmd.Flags().BoolVar(&flagDemo, "demo", false, "Watch the computer play")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg := runtimeConfig()

	gameCfg, err := loadGameConfig(cfg)
	if err != nil {
		return err
	}

	logger, closeLog, err := fileLogger(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	gameID := "breakout"
	if flagDemo {
		gameID = "breakout_demo"
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{
		Store:     store,
		Logger:    logger,
		HoldTicks: gameCfg.Input.HoldTicks,
	}
	if flagSound {
		if sound := startSound(logger); sound != nil {
			defer sound.Cleanup()
			opts.Sound = sound
		}
	}

	if err := tui.Run(game, cfg, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// fileLogger logs to path, or nowhere when path is empty.
func fileLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return newLogger(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return newLogger(f), func() { f.Close() }, nil
}

// startSound opens the audio device. Games run silently when it fails.
func startSound(logger *log.Logger) *audio.SoundManager {
	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		logger.Warn("sound disabled", "error", err)
		return nil
	}
	return sound
}
