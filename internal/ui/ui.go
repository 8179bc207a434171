package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/haryoiro/playingicon/internal/config"
	"github.com/haryoiro/playingicon/internal/constants"
	"github.com/haryoiro/playingicon/internal/logger"
	"github.com/haryoiro/playingicon/internal/player"
	"github.com/haryoiro/playingicon/internal/structures"
	"github.com/haryoiro/playingicon/internal/systems"
	"github.com/haryoiro/playingicon/internal/version"
	"github.com/haryoiro/playingicon/pkg/playingicon"
	"github.com/mattn/go-runewidth"
)

func init() {
	runewidth.DefaultCondition.EastAsianWidth = false
}

type Model struct {
	systems      *systems.Systems
	config       *structures.Config
	themeManager *ThemeManager
	icon         *playingicon.Icon
	scheduler    *TickScheduler
	canvas       *CellCanvas
	width        int
	height       int
	paletteIndex int
	redraws      int
	playerState  player.State
}

type playerStateMsg player.State

// NewModel wires the icon to a tea.Tick scheduler and a cell canvas
func NewModel(sys *systems.Systems, cfg *structures.Config, options ...playingicon.Option) *Model {
	opts := config.IconOptions(cfg)
	if err := opts.Validate(); err != nil {
		logger.Warn("Invalid icon configuration, using defaults where needed: %v", err)
	}

	m := &Model{
		systems:      sys,
		config:       cfg,
		themeManager: NewThemeManager(cfg.Theme),
		scheduler:    NewTickScheduler(),
		canvas:       NewCellCanvas(0, 0),
	}
	m.icon = playingicon.New(opts, playingicon.HostFunc(m.invalidate), m.scheduler, options...)
	return m
}

// RunSimple runs the UI until the user quits
func RunSimple(sys *systems.Systems, cfg *structures.Config) error {
	m := NewModel(sys, cfg)

	var opts []tea.ProgramOption
	if !cfg.DisableAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(m, opts...)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// invalidate is the icon's redraw request. Bubble Tea repaints after every
// Update, so only the count is kept.
func (m *Model) invalidate() {
	m.redraws++
}

func (m *Model) Init() tea.Cmd {
	if m.systems.HasPlayer() {
		m.playerState = m.systems.Player.State()
	}
	m.syncAnimation()
	return tea.Batch(m.scheduler.Cmd(), m.listenToPlayer())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutIcon()

	case FrameMsg:
		m.scheduler.Fire(msg.ID)

	case playerStateMsg:
		m.playerState = player.State(msg)
		logger.Debug("Player state changed: %s", m.playerState)
		m.syncAnimation()
		return m, tea.Batch(m.scheduler.Cmd(), m.listenToPlayer())

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, m.scheduler.Cmd()
}

// syncAnimation attaches the icon while audio plays. Without a player the
// icon is attached as soon as the UI starts.
func (m *Model) syncAnimation() {
	if !m.systems.HasPlayer() || m.playerState == player.Playing {
		m.icon.Attach()
		return
	}
	m.icon.Detach()
}

// layoutIcon sizes the icon box to the configured size, clamped to the window
func (m *Model) layoutIcon() {
	availW := m.width - constants.BorderSize
	availH := m.height - constants.BorderSize - constants.TitleHeight - constants.StatusHeight

	w := max(min(m.config.Icon.Width, availW), constants.MinIconWidth)
	h := max(min(m.config.Icon.Height, availH), constants.MinIconHeight)

	m.canvas.Resize(w, h)
	m.icon.SetGeometry(playingicon.Geometry{
		Width:   float64(w),
		Height:  float64(h),
		Padding: config.IconPadding(m.config),
	})
	logger.Debug("Icon laid out at %dx%d cells for window %dx%d", w, h, m.width, m.height)
}

func (m *Model) listenToPlayer() tea.Cmd {
	if !m.systems.HasPlayer() {
		return nil
	}
	events := m.systems.Player.Events()
	return func() tea.Msg {
		state, ok := <-events
		if !ok {
			return nil
		}
		return playerStateMsg(state)
	}
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	m.canvas.Clear()
	m.icon.Paint(m.canvas)

	title := m.themeManager.TitleStyle().Render(version.Short())
	box := m.themeManager.BorderStyle().Render(m.canvas.Render())
	status := m.renderStatus(m.width)

	content := lipgloss.JoinVertical(lipgloss.Center, title, box, status)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
