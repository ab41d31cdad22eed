package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the interactive menu",
	Long: `Start in interactive menu mode.

Pick Breakout or the demo, choose a difficulty and play. Esc on a paused or
finished game returns to the menu. Tab opens the scoreboard.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Scoreboard
  Q            - Quit

Examples:
  breakout menu
  breakout menu --fps 30
  breakout menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	menuCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runMenu(_ *cobra.Command, _ []string) error {
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

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{
		Store:     store,
		Logger:    logger,
		HoldTicks: gameCfg.Input.HoldTicks,
		AllowBack: true,
	}
	if flagSound {
		if sound := startSound(logger); sound != nil {
			defer sound.Cleanup()
			opts.Sound = sound
		}
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}

		// Keep any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue
			}
			return nil
		}

		gameID := menuResult.GameID
		if gameID == "" {
			return nil
		}

		// The demo plays at the configured difficulty
		if gameID == "breakout" {
			picked, ok, pickErr := tui.RunBreakoutMenu(cfg)
			if pickErr != nil {
				return pickErr
			}
			if !ok {
				continue
			}
			cfg = picked
		}

		game, err := registry.Create(gameID)
		if err != nil {
			return fmt.Errorf("creating game: %w", err)
		}

		// Fresh seed for each game unless pinned
		runCfg := cfg
		if flagSeed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, runCfg, opts); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
	}
}
