package designer

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	appdesigner "github.com/alexisbeaulieu97/skinlab/internal/application/designer"
	"github.com/alexisbeaulieu97/skinlab/internal/domain/theme"
	"github.com/alexisbeaulieu97/skinlab/internal/ports"
)

// Options configures the designer model
type Options struct {
	Context   context.Context
	Service   *appdesigner.Service
	Clipboard ports.ClipboardWriter
}

// Model is the designer screen
type Model struct {
	// Core data
	ctx       context.Context
	service   *appdesigner.Service
	clipboard ports.ClipboardWriter

	// UI state
	viewMode ViewMode
	focus    Focus
	cursor   int

	// Component state
	prompt  textarea.Model
	spinner spinner.Model

	// Operation state
	generating bool
	showError  bool
	errorMsg   string
	notice     string

	// Dimensions
	width  int
	height int
}

// listEntry is one selectable row: a preset or a generated theme
type listEntry struct {
	theme  theme.Theme
	recent bool
}

// NewModel creates a new designer model
func NewModel(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	ta := textarea.New()
	ta.Placeholder = "Describe a vibe: neon rain over a midnight harbour..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 500
	ta.SetHeight(3)
	ta.SetWidth(sidebarWidth - 4)
	ta.KeyMap.InsertNewline.SetEnabled(false)
	ta.Focus()

	return Model{
		ctx:       ctx,
		service:   opts.Service,
		clipboard: opts.Clipboard,
		viewMode:  ViewMain,
		focus:     FocusPrompt,
		prompt:    ta,
		spinner:   s,
		width:     120,
		height:    40,
	}
}

// Init initializes the model and returns initial commands
func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spinner.Tick)
}

// Helper Methods

// entries lists presets followed by recent generations, most recent first
func (m *Model) entries() []listEntry {
	store := m.service.Store()
	presets := store.Presets()
	history := store.History()

	out := make([]listEntry, 0, len(presets)+len(history))
	for _, t := range presets {
		out = append(out, listEntry{theme: t})
	}
	for _, t := range history {
		out = append(out, listEntry{theme: t, recent: true})
	}
	return out
}

// Active returns the theme currently shown in the preview
func (m *Model) Active() theme.Theme {
	return m.service.Store().Active()
}

// MoveCursorUp moves cursor up with wrapping
func (m *Model) MoveCursorUp() {
	n := len(m.entries())
	if n == 0 {
		return
	}
	m.cursor--
	if m.cursor < 0 {
		m.cursor = n - 1
	}
}

// MoveCursorDown moves cursor down with wrapping
func (m *Model) MoveCursorDown() {
	n := len(m.entries())
	if n == 0 {
		return
	}
	m.cursor++
	if m.cursor >= n {
		m.cursor = 0
	}
}

// SelectedEntry returns the theme under the cursor
func (m *Model) SelectedEntry() (theme.Theme, bool) {
	entries := m.entries()
	if m.cursor < 0 || m.cursor >= len(entries) {
		return theme.Theme{}, false
	}
	return entries[m.cursor].theme, true
}

// cursorTo places the cursor on the entry with the given id
func (m *Model) cursorTo(id string) {
	for i, e := range m.entries() {
		if e.theme.ID == id {
			m.cursor = i
			return
		}
	}
}

// setFocus moves keyboard focus and toggles the textarea cursor
func (m *Model) setFocus(f Focus) {
	m.focus = f
	if f == FocusPrompt {
		m.prompt.Focus()
		return
	}
	m.prompt.Blur()
}

// IsGenerating reports whether a generation is outstanding
func (m *Model) IsGenerating() bool {
	return m.generating
}

// GetViewMode returns the current view mode
func (m *Model) GetViewMode() ViewMode {
	return m.viewMode
}

// GetFocus returns the focused pane
func (m *Model) GetFocus() Focus {
	return m.focus
}

// PromptValue returns the prompt text
func (m *Model) PromptValue() string {
	return m.prompt.Value()
}

// ErrorMessage returns the banner text, empty when no banner is shown
func (m *Model) ErrorMessage() string {
	if !m.showError {
		return ""
	}
	return m.errorMsg
}
