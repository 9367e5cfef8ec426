package designer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	appdesigner "github.com/alexisbeaulieu97/skinlab/internal/application/designer"
	skinerrors "github.com/alexisbeaulieu97/skinlab/pkg/errors"
)

const (
	minWidth  = 80
	minHeight = 24

	generationFailedNotice = "Generation failed. Check API key."
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// System messages
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		if m.width < minWidth || m.height < minHeight {
			m.showError = true
			m.errorMsg = fmt.Sprintf("Terminal too small (%dx%d). Minimum size: %dx%d",
				m.width, m.height, minWidth, minHeight)
		} else if m.showError && strings.HasPrefix(m.errorMsg, "Terminal too small") {
			m.showError = false
			m.errorMsg = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	// Generation messages
	case GenerationCompleteMsg:
		m.generating = false
		m.showError = false
		m.errorMsg = ""
		m.notice = fmt.Sprintf("Generated %s", msg.Theme.Label())
		m.prompt.Reset()
		m.cursorTo(msg.Theme.ID)
		return m, nil

	case GenerationErrorMsg:
		m.generating = false
		if errors.Is(msg.Err, appdesigner.ErrBusy) {
			return m, nil
		}
		var empty *skinerrors.EmptyPromptError
		if errors.As(msg.Err, &empty) {
			return m, nil
		}
		m.showError = true
		m.errorMsg = generationFailedNotice + "\n" + describeGenerationError(msg.Err)
		return m, nil

	// Selection messages
	case ThemeSelectedMsg:
		m.notice = fmt.Sprintf("Previewing %s", msg.Theme.Label())
		m.cursorTo(msg.Theme.ID)
		return m, nil

	// Export messages
	case CopyCompleteMsg:
		m.notice = fmt.Sprintf("Copied %s export via %s", msg.ThemeID, msg.Via)
		return m, nil

	case CopyErrorMsg:
		m.showError = true
		m.errorMsg = fmt.Sprintf("Copy failed: %s\nPress e to view the export and copy it by hand.", msg.Err.Error())
		return m, nil

	// Error messages
	case ErrorMsg:
		m.showError = true
		m.errorMsg = msg.Message
		return m, nil

	case ClearErrorMsg:
		m.showError = false
		m.errorMsg = ""
		return m, nil
	}

	if m.focus == FocusPrompt && m.viewMode == ViewMain {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKeyPress handles keyboard input based on current view mode
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.viewMode {
	case ViewMain:
		if m.focus == FocusPrompt {
			return m.handlePromptKeys(msg)
		}
		return m.handleListKeys(msg)
	case ViewHelp, ViewLegend:
		return m.handleOverlayKeys(msg)
	case ViewExport:
		return m.handleExportKeys(msg)
	default:
		return m, nil
	}
}

// handlePromptKeys handles keys while the prompt has focus
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		m.setFocus(FocusList)
		return m, nil

	case "enter", "ctrl+g":
		return m.startGeneration()

	case "esc":
		if m.showError {
			m.showError = false
			m.errorMsg = ""
			return m, nil
		}
		m.setFocus(FocusList)
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// handleListKeys handles keys while the theme list has focus
func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "x", "esc":
		if m.showError {
			m.showError = false
			m.errorMsg = ""
		}
		return m, nil

	case "q":
		return m, tea.Quit

	case "tab", "i", "/":
		m.setFocus(FocusPrompt)
		return m, nil

	case "up", "k":
		m.MoveCursorUp()
		return m, nil

	case "down", "j":
		m.MoveCursorDown()
		return m, nil

	case "enter", " ":
		if selected, ok := m.SelectedEntry(); ok {
			return m, selectCmd(m.ctx, m.service, selected.ID)
		}
		return m, nil

	case "ctrl+g":
		return m.startGeneration()

	case "c":
		return m, m.copyActive()

	case "e":
		m.viewMode = ViewExport
		return m, nil

	case "l":
		m.viewMode = ViewLegend
		return m, nil

	case "?":
		m.viewMode = ViewHelp
		return m, nil
	}

	return m, nil
}

// handleOverlayKeys handles keys in the help and legend overlays
func (m Model) handleOverlayKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "?", "l", "enter":
		m.viewMode = ViewMain
	}
	return m, nil
}

// handleExportKeys handles keys in the export overlay
func (m Model) handleExportKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "c":
		m.viewMode = ViewMain
		return m, m.copyActive()
	case "esc", "e", "enter":
		m.viewMode = ViewMain
	}
	return m, nil
}

// startGeneration fires a generation unless one is running or the prompt is blank
func (m Model) startGeneration() (tea.Model, tea.Cmd) {
	if m.generating || m.service.Busy() {
		return m, nil
	}
	prompt := strings.TrimSpace(m.prompt.Value())
	if prompt == "" {
		return m, nil
	}

	m.generating = true
	m.showError = false
	m.errorMsg = ""
	m.notice = ""
	return m, tea.Batch(m.spinner.Tick, generateCmd(m.ctx, m.service, prompt))
}

func (m Model) copyActive() tea.Cmd {
	if m.clipboard == nil {
		return func() tea.Msg {
			return ErrorMsg{Message: "No clipboard configured. Press e to view the export."}
		}
	}
	return copyCmd(m.ctx, m.service, m.clipboard, m.Active())
}

// describeGenerationError turns a generation failure into one line for the banner
func describeGenerationError(err error) string {
	var genErr *skinerrors.GenerationError
	if !errors.As(err, &genErr) {
		return err.Error()
	}
	switch genErr.Reason {
	case skinerrors.ReasonMissingAPIKey:
		return "No API key is configured. Set GEMINI_API_KEY, OPENAI_API_KEY or SKINLAB_API_KEY."
	case skinerrors.ReasonTransport:
		return "The generation service could not be reached: " + causeOf(genErr)
	case skinerrors.ReasonEmptyResponse:
		return "The generation service returned no palette."
	case skinerrors.ReasonMalformedResponse:
		return "The generation service returned something that is not a palette."
	default:
		return genErr.Error()
	}
}

func causeOf(err *skinerrors.GenerationError) string {
	if err.Err == nil {
		return string(err.Reason)
	}
	return err.Err.Error()
}
