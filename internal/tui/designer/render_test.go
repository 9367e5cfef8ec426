package designer

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestRenderMainView(t *testing.T) {
	m := newTestModel(t, &stubGenerator{}, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 140, Height: 50})

	view := m.View()
	assert.Contains(t, view, "skinlab")
	assert.Contains(t, view, "Active: 🌌 Kosmos")
	assert.Contains(t, view, "PROMPT")
	assert.Contains(t, view, "PRESETS")
	assert.Contains(t, view, "Matrix")
	assert.Contains(t, view, "No generated skins yet")
	assert.Contains(t, view, "KOSMOS")
	assert.Contains(t, view, "CONSOLE OUTPUT")
	assert.Contains(t, view, "enter: generate")
}

func TestRenderNarrowTerminalStacksPreview(t *testing.T) {
	m := newTestModel(t, &stubGenerator{}, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 90, Height: 60})

	view := m.View()
	assert.Contains(t, view, "PRESETS")
	assert.Contains(t, view, "CONSOLE OUTPUT")
}

func TestRenderErrorBanner(t *testing.T) {
	m := newTestModel(t, &stubGenerator{}, nil)
	m, _ = update(t, m, GenerationErrorMsg{Err: assert.AnError})

	view := m.View()
	assert.Contains(t, view, "Generation failed. Check API key.")
	assert.Contains(t, view, "x: dismiss error")
}

func TestRenderGeneratingShowsSpinnerLine(t *testing.T) {
	m := newTestModel(t, &stubGenerator{}, nil)
	m.generating = true
	assert.Contains(t, m.View(), "Generating palette...")
}

func TestRenderOverlays(t *testing.T) {
	m := newTestModel(t, &stubGenerator{}, nil)

	m.viewMode = ViewHelp
	assert.Contains(t, m.View(), "Keyboard Shortcuts")

	m.viewMode = ViewExport
	export := m.View()
	assert.Contains(t, export, "/* themes.css */")
	assert.Contains(t, export, `[data-theme="kosmos"]`)
	assert.Contains(t, export, "--tab-active-border")

	m.viewMode = ViewLegend
	assert.Contains(t, m.View(), "Log Stream")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmno", 10))
}
