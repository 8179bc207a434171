package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/haryoiro/playingicon/internal/constants"
	"github.com/haryoiro/playingicon/internal/logger"
)

// isKey checks if the pressed key matches the configured keybinding
func isKey(msg tea.KeyMsg, key string) bool {
	if key == "" {
		return false
	}

	switch key {
	case "ctrl+c":
		return msg.Type == tea.KeyCtrlC
	case "ctrl+d":
		return msg.Type == tea.KeyCtrlD
	case "space":
		return msg.Type == tea.KeySpace
	case "enter":
		return msg.Type == tea.KeyEnter
	case "esc":
		return msg.Type == tea.KeyEsc
	case "tab":
		return msg.Type == tea.KeyTab
	case "up":
		return msg.Type == tea.KeyUp
	case "down":
		return msg.Type == tea.KeyDown
	case "left":
		return msg.Type == tea.KeyLeft
	case "right":
		return msg.Type == tea.KeyRight
	default:
		return msg.Type == tea.KeyRunes && msg.String() == key
	}
}

// isKeyInList checks if the pressed key matches any of the configured keybindings
func isKeyInList(msg tea.KeyMsg, bindings []string) bool {
	for _, binding := range bindings {
		if isKey(msg, binding) {
			return true
		}
	}
	return false
}

// handleKeyPress processes keyboard input for the demo host
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	kb := m.config.KeyBindings

	switch {
	case isKeyInList(msg, kb.Quit):
		m.icon.Detach()
		return m, tea.Quit

	case isKey(msg, kb.Toggle):
		m.toggle()

	case isKey(msg, kb.NextColor):
		m.nextColor()

	case isKeyInList(msg, kb.MoreBars):
		m.setBarCount(m.icon.Options().BarCount + 1)

	case isKeyInList(msg, kb.FewerBars):
		m.setBarCount(m.icon.Options().BarCount - 1)
	}

	return m, m.scheduler.Cmd()
}

// toggle pauses the audio when there is some, otherwise it shows or hides
// the animation directly.
func (m *Model) toggle() {
	if m.systems.HasPlayer() {
		if err := m.systems.Player.Toggle(); err != nil {
			logger.Warn("Failed to toggle playback: %v", err)
		}
		return
	}

	if m.icon.Running() {
		m.icon.Detach()
		logger.Debug("Animation detached after %d frames", m.icon.Frames())
	} else {
		m.icon.Attach()
		logger.Debug("Animation attached")
	}
}

func (m *Model) nextColor() {
	palette := m.config.Icon.Palette
	if len(palette) == 0 {
		return
	}
	m.paletteIndex = (m.paletteIndex + 1) % len(palette)
	m.icon.SetColor(palette[m.paletteIndex])
}

func (m *Model) setBarCount(n int) {
	n = min(max(n, 1), constants.MaxBarCount)
	m.icon.SetBarCount(n)
}
