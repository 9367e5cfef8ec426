// Package preview draws the mock Kosmos Panel dashboard in the terminal using
// a theme's colour slots.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/skinlab/internal/colorspec"
	"github.com/alexisbeaulieu97/skinlab/internal/domain/theme"
)

const (
	// MinWidth is the narrowest dashboard the renderer lays out.
	MinWidth     = 72
	sidebarWidth = 18
)

var nodes = []string{"Master-01", "Worker-USA", "Worker-EU"}

// Renderer holds the lipgloss styles derived from one theme.
type Renderer struct {
	theme    theme.Theme
	resolver colorspec.Resolver
	styles   map[string]lipgloss.Style
}

// New builds the styles for t. Slot values that cannot be drawn in a terminal
// leave the affected property uncoloured.
func New(t theme.Theme) *Renderer {
	r := &Renderer{
		theme:    t,
		resolver: colorspec.NewResolver(t.Colors.BgMain),
		styles:   make(map[string]lipgloss.Style, len(regions)),
	}
	for _, reg := range regions {
		s := lipgloss.NewStyle().
			Foreground(r.color(reg.Fg)).
			Background(r.color(reg.Bg))
		if reg.Border != "" {
			s = s.BorderForeground(r.color(reg.Border)).BorderBackground(r.color(reg.Bg))
		}
		r.styles[reg.Name] = s
	}
	return r
}

// Theme returns the theme the renderer was built from.
func (r *Renderer) Theme() theme.Theme {
	return r.theme
}

func (r *Renderer) color(slot theme.Slot) lipgloss.TerminalColor {
	if slot == "" {
		return lipgloss.NoColor{}
	}
	hex, ok := r.resolver.Hex(r.theme.Colors.Get(slot))
	if !ok {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(hex)
}

func (r *Renderer) style(region string) lipgloss.Style {
	return r.styles[region]
}

// Dashboard renders the full mock panel at the given width.
func (r *Renderer) Dashboard(width int) string {
	if width < MinWidth {
		width = MinWidth
	}
	workspace := r.workspace(width - sidebarWidth - 1)
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		r.sidebar(lipgloss.Height(workspace)),
		workspace,
	)
	return r.style(regionApp).Width(width).Render(
		lipgloss.JoinVertical(lipgloss.Left, r.header(width), body),
	)
}

func (r *Renderer) header(width int) string {
	bg := r.style(regionHeader)
	logo := bg.Render(fmt.Sprintf(" %s KOSMOS ", r.theme.Icon)) + r.style(regionLogoAccent).Render("PANEL")
	tabs := lipgloss.JoinHorizontal(lipgloss.Top,
		bg.Render("   "),
		r.style(regionTabActive).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			Render("Dashboard"),
		r.style(regionTab).Render("  Terminal  Logs"),
	)
	search := r.style(regionSearch).
		BorderStyle(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Render("Search node...")
	avatar := r.style(regionAvatar).Bold(true).Render(" R ")

	left := lipgloss.JoinHorizontal(lipgloss.Center, logo, tabs)
	right := lipgloss.JoinHorizontal(lipgloss.Center, search, bg.Render(" "), avatar)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, left, bg.Render(strings.Repeat(" ", gap)), right)

	return bg.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Width(width).
		Render(row)
}

func (r *Renderer) sidebar(height int) string {
	inner := sidebarWidth - 2
	lines := []string{r.style(regionSidebarTitle).Bold(true).Width(inner).Render("NODES")}
	for i, name := range nodes {
		switch i {
		case 0:
			lines = append(lines,
				r.style(regionNodeLive).Render(" ● ")+r.style(regionNodeActive).Width(inner-3).Render(name))
		case 1:
			lines = append(lines,
				r.style(regionNodeHover).Render(" ○ ")+r.style(regionNodeHover).Width(inner-3).Render(name))
		default:
			lines = append(lines,
				r.style(regionNodeIdle).Render(" ○ ")+r.style(regionNode).Width(inner-3).Render(name))
		}
	}
	return r.style(regionSidebar).
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		Padding(0, 1, 0, 0).
		Width(sidebarWidth).
		Height(height).
		Render(strings.Join(lines, "\n"))
}

func (r *Renderer) workspace(width int) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		r.stats(width),
		r.terminal(width),
		r.overlays(width),
	)
}

func (r *Renderer) stats(width int) string {
	cardWidth := (width - 4) / 3
	card := func(label, value, valueRegion string) string {
		content := lipgloss.JoinVertical(lipgloss.Left,
			r.style(regionCard).Bold(true).Render(label),
			r.style(valueRegion).Bold(true).Render(value),
		)
		return r.style(regionCard).
			BorderStyle(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(cardWidth - 2).
			Render(content)
	}
	gap := r.style(regionApp).Render(" ")
	return lipgloss.JoinHorizontal(lipgloss.Top,
		gap,
		card("CPU USAGE", "24%", regionStatInfo), gap,
		card("RAM FREE", "8.2 GB", regionStatSuccess), gap,
		card("LATENCY", "12ms", regionStatPrimary),
	)
}

func (r *Renderer) terminal(width int) string {
	inner := width - 4
	bodyWidth := inner - 1

	bar := func() string {
		title := r.style(regionTermTitle).Bold(true).Render(" CONSOLE OUTPUT ") +
			r.style(regionTermBar).Render(" 127.0.0.1:22")
		lights := r.style(regionLightError).Render("●") +
			r.style(regionTermBar).Render(" ") +
			r.style(regionLightWarning).Render("●") +
			r.style(regionTermBar).Render(" ") +
			r.style(regionLightSuccess).Render("● ")
		gap := inner - lipgloss.Width(title) - lipgloss.Width(lights)
		if gap < 1 {
			gap = 1
		}
		return title + r.style(regionTermBar).Render(strings.Repeat(" ", gap)) + lights
	}()

	term := r.style(regionTerm)
	line := func(parts ...string) string {
		return term.Width(bodyWidth).Render(strings.Join(parts, ""))
	}
	body := []string{
		line(term.Render("[system] initializing secure tunnel... "), r.style(regionTermOK).Render("DONE")),
		line(term.Render("[ai] "), r.style(regionLogAI).Render("Analyzing HUD architecture...")),
		line(r.style(regionPrompt).Render("root@kosmos:~# "), r.style(regionCursor).Render("█")),
		line(r.style(regionDivider).Render(strings.Repeat("╌", bodyWidth))),
		line(r.style(regionStdin).Render("> GET /api/v1/skins/cyber-hud"), term.Render("  200 OK")),
		line(r.style(regionStdout).Render("Loading holographic assets...")),
		line(r.style(regionStdout).Render("Calibrating cyan emitters... 100%")),
		line(r.style(regionStderr).Render("warn: emitter 3 drifted 0.4%")),
	}

	for i := range body {
		glyph := r.style(regionScrollTrack).Render("│")
		if i < 3 {
			glyph = r.style(regionScrollThumb).Render("┃")
		}
		body[i] += glyph
	}

	return term.
		BorderStyle(lipgloss.RoundedBorder()).
		MarginLeft(1).
		Render(lipgloss.JoinVertical(lipgloss.Left, append([]string{bar}, body...)...))
}

func (r *Renderer) overlays(width int) string {
	tooltip := r.style(regionTooltip).Padding(0, 1).Render("Master-01 · healthy")
	modal := r.style(regionModal).
		BorderStyle(lipgloss.RoundedBorder()).
		Padding(0, 2).
		Render(lipgloss.JoinVertical(lipgloss.Center,
			r.style(regionModal).Bold(true).Render("Deploy skin?"),
			r.style(regionButton).Bold(true).Padding(0, 1).Render("Apply"),
		))
	overlay := r.style(regionOverlay).
		Padding(0, 2).
		Width(width - lipgloss.Width(tooltip) - 3).
		Render(modal)
	gap := r.style(regionApp).Render(" ")
	return lipgloss.JoinHorizontal(lipgloss.Center, gap, tooltip, gap, overlay)
}

// Legend lists every slot grouped by panel area with a colour swatch and the
// raw value. Values the terminal cannot draw are flagged.
func (r *Renderer) Legend() string {
	title := cases.Title(language.English)
	var sb strings.Builder
	var current theme.SlotGroup
	for _, slot := range theme.Slots() {
		if g := slot.Group(); g != current {
			if current != "" {
				sb.WriteString("\n")
			}
			current = g
			sb.WriteString(lipgloss.NewStyle().Bold(true).Render(title.String(string(g))))
			sb.WriteString("\n")
		}
		value := r.theme.Colors.Get(slot)
		swatch := "??"
		if hex, ok := r.resolver.Hex(value); ok {
			swatch = lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
		}
		line := fmt.Sprintf("%s %-16s %s", swatch, slot, value)
		if swatch == "??" {
			line += " (not previewable)"
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}
