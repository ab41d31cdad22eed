// Package web serves Breakout to browsers: an embedded canvas page plus a
// websocket per game streaming draw ops.
package web

import (
	"context"
	_ "embed"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/net/websocket"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

//go:embed static/index.html
var indexHTML []byte

// ServerConfig holds web server settings.
type ServerConfig struct {
	Addr     string
	TickRate int
	Game     config.BreakoutConfig
	Store    *storage.Store // Optional
}

// DefaultServerConfig returns defaults for local play.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:     ":8080",
		TickRate: 60,
		Game:     config.DefaultBreakoutConfig(),
	}
}

// Server serves the page and game sockets.
type Server struct {
	cfg    ServerConfig
	logger *log.Logger
}

// NewServer creates a web server. A nil logger discards output.
func NewServer(cfg ServerConfig, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Server{cfg: cfg, logger: logger.WithPrefix("breakout-web")}
}

// Handler routes "/" to the page and "/ws" to a game session.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.Handle("/ws", websocket.Handler(s.handleSocket))
	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML) //nolint:errcheck
}

func (s *Server) handleSocket(ws *websocket.Conn) {
	defer ws.Close()

	addr := ws.Request().RemoteAddr
	logger := s.logger.With("remote", addr)
	logger.Info("session started")

	sess := newSession(ws, s.cfg.Game, s.cfg.TickRate, s.cfg.Store, logger)
	if err := sess.run(ws.Request().Context()); err != nil {
		logger.Warn("session ended", "error", err)
		return
	}
	logger.Info("session ended")
}

// ListenAndServe serves until ctx is cancelled, then shuts down.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting web server", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("Stopping web server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
