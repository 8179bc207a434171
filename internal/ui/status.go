package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/haryoiro/playingicon/internal/constants"
	"github.com/mattn/go-runewidth"
)

// renderStatus builds the line under the icon: run state, settings, and a
// key hint when there is room.
func (m *Model) renderStatus(availableWidth int) string {
	opts := m.icon.Options()

	state := "⏸ stopped"
	if m.icon.Running() {
		state = "▶ animating"
	}

	parts := []string{
		m.themeManager.StatusStyle(m.icon.Running()).Render(state),
		fmt.Sprintf("%d bars", opts.BarCount),
		opts.Color,
		opts.FrameDelay.String(),
	}
	if m.systems.HasPlayer() {
		parts = append(parts, filepath.Base(m.systems.Player.CurrentFile()))
	}

	line := m.themeManager.BaseStyle().Render(strings.Join(parts, "  "))
	hint := fmt.Sprintf("[%s] toggle  [%s] color  [%s/%s] bars  [%s] quit",
		m.config.KeyBindings.Toggle,
		m.config.KeyBindings.NextColor,
		first(m.config.KeyBindings.MoreBars),
		first(m.config.KeyBindings.FewerBars),
		first(m.config.KeyBindings.Quit))

	// Styled text carries escape codes, so measure the plain parts
	plain := plainStatus(state, parts[1:])
	if runewidth.StringWidth(plain)+2+runewidth.StringWidth(hint) <= availableWidth {
		return line + "  " + m.themeManager.RenderHelp(hint)
	}
	if runewidth.StringWidth(plain) > availableWidth {
		return runewidth.Truncate(plain, availableWidth, constants.EllipsisSuffix)
	}
	return line
}

func plainStatus(state string, rest []string) string {
	return strings.Join(append([]string{state}, rest...), "  ")
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
