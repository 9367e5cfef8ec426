package designer

import "github.com/alexisbeaulieu97/skinlab/internal/domain/theme"

// ViewMode determines which screen to render
type ViewMode int

const (
	ViewMain ViewMode = iota
	ViewHelp
	ViewExport
	ViewLegend
)

// Focus selects which pane receives keys in the main view
type Focus int

const (
	FocusPrompt Focus = iota
	FocusList
)

// Generation Messages

// GenerationCompleteMsg carries the theme committed by a successful generation
type GenerationCompleteMsg struct {
	Theme theme.Theme
}

// GenerationErrorMsg indicates a generation ended without a theme
type GenerationErrorMsg struct {
	Err error
}

// Selection Messages

// ThemeSelectedMsg indicates a preset or history entry became active
type ThemeSelectedMsg struct {
	Theme theme.Theme
}

// Export Messages

// CopyCompleteMsg indicates the export bundle reached a clipboard
type CopyCompleteMsg struct {
	ThemeID string
	Via     string
}

// CopyErrorMsg indicates no clipboard accepted the bundle
type CopyErrorMsg struct {
	Err error
}

// Error Messages

// ErrorMsg indicates a general error occurred
type ErrorMsg struct {
	Message string
}

// ClearErrorMsg requests error banner dismissal
type ClearErrorMsg struct{}
