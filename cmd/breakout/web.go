package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/platform/web"
)

var flagWebAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the game to browsers",
	Long: `Start an HTTP server with a canvas version of the game.

Every browser tab plays its own game over a websocket. Arrow keys move the
paddle, P pauses. Finished games are saved to the scores database.

Examples:
  breakout web
  breakout web --addr :9000
  breakout web --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", ":8080", "HTTP listen address (host:port)")
}

func runWeb(_ *cobra.Command, _ []string) error {
	logger := newLogger(os.Stderr)

	gameCfg, err := loadGameConfig(runtimeConfig())
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	server := web.NewServer(web.ServerConfig{
		Addr:     flagWebAddr,
		TickRate: flagFPS,
		Game:     gameCfg,
		Store:    store,
	}, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.ListenAndServe(ctx)
}
