package web

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/net/websocket"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// gameID is the storage key for browser games.
const gameID = "breakout"

// session runs one browser game. The frame loop owns the driver; the
// read loop only touches the latch and hands restart/pause to the loop.
type session struct {
	conn     *websocket.Conn
	driver   *breakout.Driver
	store    *storage.Store
	logger   *log.Logger
	tickRate int
	rec      Recorder
	controls chan string
	done     chan struct{}
	paused   bool
	alerted  bool
}

func newSession(conn *websocket.Conn, cfg config.BreakoutConfig, tickRate int, store *storage.Store, logger *log.Logger) *session {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &session{
		conn:     conn,
		driver:   breakout.NewDriver(cfg),
		store:    store,
		logger:   logger,
		tickRate: tickRate,
		controls: make(chan string, 8),
		done:     make(chan struct{}),
	}
}

// run drives frames until ctx ends or the client goes away.
func (s *session) run(ctx context.Context) error {
	defer close(s.done)

	readErr := make(chan error, 1)
	go func() { readErr <- s.readLoop() }()

	ticker := time.NewTicker(time.Second / time.Duration(s.tickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-readErr:
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		case c := <-s.controls:
			s.control(c)
		case <-ticker.C:
			if err := s.frame(); err != nil {
				return err
			}
		}
	}
}

// readLoop decodes client messages until the connection fails.
func (s *session) readLoop() error {
	latch := s.driver.Latch()
	for {
		var msg ClientMessage
		if err := websocket.JSON.Receive(s.conn, &msg); err != nil {
			return err
		}

		switch msg.Type {
		case MsgKey:
			switch msg.Key {
			case KeyLeft:
				latch.SetLeft(msg.Down)
			case KeyRight:
				latch.SetRight(msg.Down)
			}
		case MsgRestart, MsgPause:
			select {
			case s.controls <- msg.Type:
			case <-s.done:
				return nil
			}
		default:
			s.logger.Debug("unknown message", "type", msg.Type)
		}
	}
}

func (s *session) control(c string) {
	switch c {
	case MsgRestart:
		s.driver.Reinitialize()
		s.alerted = false
		s.paused = false
		s.logger.Debug("game restarted")
	case MsgPause:
		if !s.driver.Phase().Terminal() {
			s.paused = !s.paused
		}
	}
}

// frame renders and advances one tick, then raises the alert once the
// game is over. Nothing is sent while the alert is up.
func (s *session) frame() error {
	if s.alerted {
		return nil
	}

	s.rec.Reset()
	if s.paused {
		s.driver.Render(&s.rec)
	} else {
		for _, e := range s.driver.Frame(&s.rec) {
			s.logger.Debug("event", "event", e)
		}
	}

	st := s.driver.State()
	msg := ServerMessage{Type: MsgFrame, Ops: s.rec.Ops(), Score: st.Score, Lives: st.Lives}
	if err := websocket.JSON.Send(s.conn, msg); err != nil {
		return err
	}

	phase := s.driver.Phase()
	if !phase.Terminal() {
		return nil
	}

	s.alerted = true
	s.record()

	text := breakout.LoseMessage
	if phase == breakout.PhaseWon {
		text = breakout.WinMessage
	}
	return websocket.JSON.Send(s.conn, ServerMessage{Type: MsgAlert, Message: text, Score: st.Score, Lives: st.Lives})
}

// record stores the finished game. Storage failures are logged only.
func (s *session) record() {
	st := s.driver.State()
	outcome := storage.OutcomeLost
	if st.Phase == breakout.PhaseWon {
		outcome = storage.OutcomeWon
	}
	s.logger.Info("game over", "outcome", outcome, "score", st.Score, "ticks", st.Tick)

	if s.store == nil {
		return
	}
	if st.Score > 0 {
		if _, err := s.store.SaveScore(gameID, st.Score); err != nil {
			s.logger.Warn("could not save score", "error", err)
		}
	}
	run := storage.Run{GameID: gameID, Score: st.Score, Lives: st.Lives, Outcome: outcome, Ticks: st.Tick}
	if _, err := s.store.SaveRun(run); err != nil {
		s.logger.Warn("could not save run", "error", err)
	}
}
