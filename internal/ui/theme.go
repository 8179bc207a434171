package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/haryoiro/playingicon/internal/structures"
)

// ThemeManager manages UI styles based on the configured theme
type ThemeManager struct {
	theme structures.Theme

	// Cached styles
	baseStyle    lipgloss.Style
	borderStyle  lipgloss.Style
	titleStyle   lipgloss.Style
	playingStyle lipgloss.Style
	stoppedStyle lipgloss.Style
	helpStyle    lipgloss.Style
}

// NewThemeManager creates a new theme manager with the given theme
func NewThemeManager(theme structures.Theme) *ThemeManager {
	tm := &ThemeManager{theme: theme}
	tm.initStyles()
	return tm
}

// initStyles initializes all the cached styles
func (tm *ThemeManager) initStyles() {
	tm.baseStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(tm.theme.Foreground))

	tm.borderStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(tm.theme.Border))

	tm.titleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(tm.theme.Title)).
		Bold(true)

	tm.playingStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(tm.theme.Playing)).
		Bold(true)

	tm.stoppedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(tm.theme.Stopped))

	tm.helpStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(tm.theme.Foreground)).
		Faint(true).
		Italic(true)
}

func (tm *ThemeManager) BaseStyle() lipgloss.Style {
	return tm.baseStyle
}

func (tm *ThemeManager) BorderStyle() lipgloss.Style {
	return tm.borderStyle
}

func (tm *ThemeManager) TitleStyle() lipgloss.Style {
	return tm.titleStyle
}

// StatusStyle returns the style for the run state indicator
func (tm *ThemeManager) StatusStyle(running bool) lipgloss.Style {
	if running {
		return tm.playingStyle
	}
	return tm.stoppedStyle
}

func (tm *ThemeManager) RenderHelp(text string) string {
	return tm.helpStyle.Render(text)
}
