package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

type difficultyOption struct {
	preset config.DifficultyPreset
	label  string
	hint   string
}

var difficultyOptions = []difficultyOption{
	{config.DifficultyFixed, "Classic", "3 lives, constant speed"},
	{config.DifficultyEasy, "Easy", "5 lives, wide paddle, slow ball"},
	{config.DifficultyNormal, "Normal", "3 lives, ball speeds up as bricks fall"},
	{config.DifficultyHard, "Hard", "2 lives, narrow paddle, fast ball"},
}

var pickerHintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)

// BreakoutMenuModel picks a difficulty preset before a game starts.
type BreakoutMenuModel struct {
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  config.DifficultyPreset
	quitting  bool
	back      bool
}

// NewBreakoutMenuModel starts on the preset named current, or on Classic.
func NewBreakoutMenuModel(width, height int, current string) BreakoutMenuModel {
	m := BreakoutMenuModel{width: width, height: height, keyMapper: NewKeyMapper()}
	for i, opt := range difficultyOptions {
		if string(opt.preset) == current {
			m.cursor = i
		}
	}
	return m
}

func (m BreakoutMenuModel) Init() tea.Cmd {
	return nil
}

func (m BreakoutMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionUp:
			m.cursor = max(m.cursor-1, 0)
		case MenuActionDown:
			m.cursor = min(m.cursor+1, len(difficultyOptions)-1)
		case MenuActionSelect:
			m.selected = difficultyOptions[m.cursor].preset
			return m, tea.Quit
		case MenuActionBack:
			m.back = true
			return m, tea.Quit
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m BreakoutMenuModel) View() string {
	if m.quitting {
		return ""
	}

	rows := make([]string, len(difficultyOptions))
	for i, opt := range difficultyOptions {
		label := fmt.Sprintf("%-8s", opt.label)
		if i == m.cursor {
			rows[i] = menuSelectedStyle.Render("> "+label) + " " + pickerHintStyle.Render(opt.hint)
		} else {
			rows[i] = menuItemStyle.Render(label)
		}
	}

	place := func(s string) string { return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s) }

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(place(menuTitleStyle.Render("B R E A K O U T")))
	b.WriteString("\n\n")
	b.WriteString(place("Select difficulty"))
	b.WriteString("\n\n")
	b.WriteString(place(lipgloss.JoinVertical(lipgloss.Left, rows...)))
	b.WriteString("\n\n")
	b.WriteString(place(menuNoteStyle.Render("Enter: Play  |  Esc: Back  |  Q: Quit")))
	return b.String()
}

// Selected returns the chosen preset, or "" while the picker is open.
func (m BreakoutMenuModel) Selected() config.DifficultyPreset {
	return m.selected
}

func (m BreakoutMenuModel) IsQuitting() bool { return m.quitting }
func (m BreakoutMenuModel) WantsBack() bool { return m.back }

// RunBreakoutMenu shows the picker and returns cfg with the chosen preset.
// ok is false when the user backed out or quit.
func RunBreakoutMenu(cfg core.RuntimeConfig) (out core.RuntimeConfig, ok bool, err error) {
	final, err := tea.NewProgram(NewBreakoutMenuModel(cfg.ScreenW, cfg.ScreenH, cfg.Difficulty), tea.WithAltScreen()).Run()
	if err != nil {
		return cfg, false, err
	}

	m, _ := final.(BreakoutMenuModel)
	if m.Selected() == "" {
		return cfg, false, nil
	}
	cfg.Difficulty = string(m.Selected())
	return cfg, true, nil
}
