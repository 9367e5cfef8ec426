package designer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/skinlab/internal/export"
	"github.com/alexisbeaulieu97/skinlab/internal/tui/preview"
)

// View renders the current model state
func (m Model) View() string {
	switch m.viewMode {
	case ViewHelp:
		return m.renderHelpView()
	case ViewExport:
		return m.renderExportView()
	case ViewLegend:
		return m.renderLegendView()
	default:
		return m.renderMainView()
	}
}

// renderMainView renders the sidebar next to the live preview
func (m Model) renderMainView() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	var content strings.Builder

	if m.showError {
		content.WriteString(m.renderErrorBanner())
		content.WriteString("\n")
	}

	previewWidth := m.width - sidebarWidth - 1
	dashboard := preview.New(m.Active()).Dashboard(previewWidth)
	if previewWidth < preview.MinWidth {
		content.WriteString(lipgloss.JoinVertical(lipgloss.Left, m.renderSidebar(), dashboard))
	} else {
		content.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), " ", dashboard))
	}
	content.WriteString("\n")
	content.WriteString(m.renderFooter())

	return content.String()
}

// renderSidebar renders the prompt and the theme lists
func (m Model) renderSidebar() string {
	active := m.Active()
	lines := []string{
		titleStyle.Render("✦ skinlab"),
		mutedStyle.Render(truncate("Active: "+active.Label(), sidebarWidth)),
		sectionStyle.Render("PROMPT"),
	}

	box := promptBoxStyle
	if m.focus == FocusPrompt {
		box = promptBoxFocusedStyle
	}
	lines = append(lines, box.Render(m.prompt.View()))

	switch {
	case m.generating:
		lines = append(lines, fmt.Sprintf("%s Generating palette...", m.spinner.View()))
	case m.notice != "":
		lines = append(lines, noticeStyle.Render(truncate(m.notice, sidebarWidth)))
	default:
		lines = append(lines, mutedStyle.Render("enter: generate  tab: themes"))
	}

	entries := m.entries()
	lines = append(lines, sectionStyle.Render("PRESETS"))
	recentHeader := false
	for i, e := range entries {
		if e.recent && !recentHeader {
			lines = append(lines, sectionStyle.Render("RECENT"))
			recentHeader = true
		}
		lines = append(lines, m.renderEntry(i, e, e.theme.ID == active.ID))
	}
	if !recentHeader {
		lines = append(lines, sectionStyle.Render("RECENT"), itemStyle.Render(mutedStyle.Render("No generated skins yet")))
	}

	return lipgloss.NewStyle().Width(sidebarWidth).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderEntry renders one preset or history row
func (m Model) renderEntry(index int, e listEntry, active bool) string {
	marker := "  "
	if active {
		marker = activeMarkerStyle.Render("● ")
	}
	label := truncate(e.theme.Label(), sidebarWidth-6)
	if m.focus == FocusList && index == m.cursor {
		return selectedItemStyle.Render(marker + label)
	}
	return itemStyle.Render(marker + label)
}

// renderFooter renders the footer with keyboard shortcuts
func (m Model) renderFooter() string {
	var hints []string
	if m.focus == FocusPrompt {
		hints = []string{"enter: generate", "tab: themes", "esc: leave prompt"}
	} else {
		hints = []string{"↑/↓: navigate", "enter: preview", "c: copy", "e: export", "l: legend", "?: help"}
	}
	if m.showError {
		hints = append(hints, "x: dismiss error")
	}
	hints = append(hints, "ctrl+c: quit")

	return footerStyle.Width(m.width).Render(strings.Join(hints, "  •  "))
}

// renderErrorBanner renders an error message banner
func (m Model) renderErrorBanner() string {
	return errorBannerStyle.Render(m.errorMsg)
}

// renderHelpView renders the help overlay
func (m Model) renderHelpView() string {
	keys := [][2]string{
		{"tab", "Switch between prompt and theme list"},
		{"enter, ctrl+g", "Generate a skin from the prompt"},
		{"↑/↓, j/k", "Move through presets and recent skins"},
		{"enter", "Preview the highlighted theme"},
		{"c", "Copy the CSS and registration snippet"},
		{"e", "Show the export"},
		{"l", "Show every colour slot"},
		{"x, esc", "Dismiss the error banner"},
		{"?", "Toggle this help"},
		{"q, ctrl+c", "Quit"},
	}

	rows := []string{helpTitleStyle.Render("Keyboard Shortcuts")}
	for _, k := range keys {
		rows = append(rows, helpKeyStyle.Render(k[0])+helpDescStyle.Render(k[1]))
	}
	rows = append(rows, "", mutedStyle.Render("Press ? or esc to close"))

	return m.centered(overlayBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))
}

// renderExportView renders the export bundle for the active theme
func (m Model) renderExportView() string {
	active := m.Active()
	body := lipgloss.JoinVertical(lipgloss.Left,
		helpTitleStyle.Render("Export "+active.Label()),
		codeStyle.Render(export.Bundle(active)),
		"",
		mutedStyle.Render("c: copy  •  esc: close"),
	)
	return m.centered(overlayBoxStyle.Render(body))
}

// renderLegendView renders every slot with its swatch
func (m Model) renderLegendView() string {
	active := m.Active()
	body := lipgloss.JoinVertical(lipgloss.Left,
		helpTitleStyle.Render("Colour slots of "+active.Label()),
		preview.New(active).Legend(),
		"",
		mutedStyle.Render("l or esc: close"),
	)
	return m.centered(overlayBoxStyle.Render(body))
}

func (m Model) centered(s string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s)
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+3 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}
