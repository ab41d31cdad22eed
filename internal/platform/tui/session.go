package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

type sessionView int

const (
	viewMenu sessionView = iota
	viewDifficulty
	viewGame
	viewScoreboard
)

// SessionModel chains the menu, difficulty picker, game and scoreboard inside
// one Bubble Tea program, which is what an SSH connection needs. The sub-models
// quit when they are done; the session swallows that and switches views.
type SessionModel struct {
	opts     Options
	config   core.RuntimeConfig
	view     sessionView
	quitting bool

	menu       MenuModel
	difficulty BreakoutMenuModel
	scoreboard ScoreboardModel
	gameID     string
	game       Model
}

// NewSessionModel starts a session on the main menu.
func NewSessionModel(cfg core.RuntimeConfig, opts Options) SessionModel {
	opts.AllowBack = true
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return SessionModel{
		opts:   opts,
		config: cfg,
		menu:   NewMenuModel(opts.Store, cfg),
	}
}

func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = size.Width, size.Height
	}

	switch m.view {
	case viewDifficulty:
		return m.updateDifficulty(msg)
	case viewGame:
		return m.updateGame(msg)
	case viewScoreboard:
		return m.updateScoreboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	if m.menu.IsQuitting() {
		return m.quit()
	}
	if m.menu.WantsScoreboard() {
		m.scoreboard = NewScoreboardModel(m.opts.Store, m.config.ScreenW, m.config.ScreenH)
		m.view = viewScoreboard
		return m, m.scoreboard.Init()
	}

	item := m.menu.Selected()
	if item == nil {
		return m, cmd
	}
	m.gameID = item.GameID
	m.config = m.menu.Config()
	if registry.IsDemo(m.gameID) {
		return m.startGame()
	}
	m.difficulty = NewBreakoutMenuModel(m.config.ScreenW, m.config.ScreenH, m.config.Difficulty)
	m.view = viewDifficulty
	return m, m.difficulty.Init()
}

func (m SessionModel) updateDifficulty(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.difficulty.Update(msg)
	m.difficulty = next.(BreakoutMenuModel)

	switch {
	case m.difficulty.IsQuitting():
		return m.quit()
	case m.difficulty.WantsBack():
		return m.backToMenu()
	case m.difficulty.Selected() != "":
		m.config.Difficulty = string(m.difficulty.Selected())
		return m.startGame()
	}
	return m, cmd
}

func (m SessionModel) startGame() (tea.Model, tea.Cmd) {
	game, err := registry.Create(m.gameID)
	if err != nil {
		m.opts.Logger.Error("cannot create game", "game", m.gameID, "error", err)
		return m.backToMenu()
	}

	m.config.Seed = time.Now().UnixNano()
	m.game = NewModel(game, m.config, m.opts)
	m.view = viewGame
	return m, m.game.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	m.game = next.(Model)

	switch {
	case m.game.BackToMenu():
		return m.backToMenu()
	case m.game.IsQuitting():
		return m.quit()
	}
	return m, cmd
}

func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	m.scoreboard = next.(ScoreboardModel)

	switch {
	case m.scoreboard.IsQuitting():
		return m.quit()
	case m.scoreboard.IsGoingBack():
		return m.backToMenu()
	}
	return m, cmd
}

// backToMenu rebuilds the menu so best scores and records are current.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.view = viewMenu
	m.gameID = ""
	m.menu = NewMenuModel(m.opts.Store, m.config)
	return m, m.menu.Init()
}

func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.view {
	case viewDifficulty:
		return m.difficulty.View()
	case viewGame:
		return m.game.View()
	case viewScoreboard:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}
