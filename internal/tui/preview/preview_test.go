package preview

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/skinlab/internal/domain/theme"
	"github.com/alexisbeaulieu97/skinlab/internal/presets"
)

func kosmos(t *testing.T) theme.Theme {
	t.Helper()
	builtin, err := presets.Builtin()
	require.NoError(t, err)
	return builtin[0]
}

func TestRegionsCoverEverySlot(t *testing.T) {
	used := make(map[theme.Slot]bool)
	names := make(map[string]bool)
	for _, r := range Regions() {
		require.False(t, names[r.Name], "duplicate region %s", r.Name)
		names[r.Name] = true
		for _, s := range []theme.Slot{r.Fg, r.Bg, r.Border} {
			if s == "" {
				continue
			}
			_, ok := theme.ParseSlot(string(s))
			require.True(t, ok, "region %s uses unknown slot %s", r.Name, s)
			used[s] = true
		}
	}

	for _, slot := range theme.Slots() {
		assert.True(t, used[slot], "slot %s is not drawn by any region", slot)
	}
}

func TestDashboardContent(t *testing.T) {
	r := New(kosmos(t))
	view := r.Dashboard(100)

	for _, want := range []string{
		"KOSMOS", "PANEL", "Dashboard", "Terminal", "Logs", "Search node...",
		"NODES", "Master-01", "Worker-USA", "Worker-EU",
		"CPU USAGE", "24%", "RAM FREE", "LATENCY",
		"CONSOLE OUTPUT", "127.0.0.1:22", "root@kosmos:~#",
		"Analyzing HUD architecture...", "> GET /api/v1/skins/cyber-hud",
		"warn: emitter 3 drifted", "Deploy skin?", "Apply",
	} {
		assert.Contains(t, view, want)
	}
	assert.Contains(t, view, r.Theme().Icon)
}

func TestDashboardHonoursMinimumWidth(t *testing.T) {
	r := New(kosmos(t))
	narrow := r.Dashboard(10)
	assert.GreaterOrEqual(t, lipgloss.Width(narrow), MinWidth)
}

func TestUnparseableColoursStillRender(t *testing.T) {
	th := kosmos(t)
	th.Colors.Primary = "var(--accent)"
	th.Colors.BgMain = "transparent"

	r := New(th)
	assert.NotPanics(t, func() { _ = r.Dashboard(80) })

	legend := r.Legend()
	assert.Contains(t, legend, "var(--accent) (not previewable)")
	assert.Contains(t, legend, "transparent (not previewable)")
}

func TestLegendGroups(t *testing.T) {
	var colors theme.Colors
	for i, slot := range theme.Slots() {
		colors.Set(slot, fmt.Sprintf("#%06x", i*0x050505))
	}
	r := New(theme.Theme{ID: "legend", Name: "Legend", Icon: "🎨", Colors: colors})
	legend := r.Legend()

	for _, heading := range []string{"Background", "Terminal", "Border", "Text", "Brand", "Status", "Log Stream", "Chrome"} {
		assert.Contains(t, legend, heading+"\n")
	}
	assert.Equal(t, 1, strings.Count(legend, "Log Stream"))
	assert.NotContains(t, legend, "not previewable")
	assert.Contains(t, legend, "tabActiveBorder")
}
