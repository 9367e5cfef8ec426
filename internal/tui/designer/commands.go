package designer

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	appdesigner "github.com/alexisbeaulieu97/skinlab/internal/application/designer"
	"github.com/alexisbeaulieu97/skinlab/internal/domain/theme"
	"github.com/alexisbeaulieu97/skinlab/internal/ports"
)

// generateCmd runs one generation off the UI goroutine
func generateCmd(ctx context.Context, svc *appdesigner.Service, prompt string) tea.Cmd {
	return func() tea.Msg {
		t, err := svc.Generate(ctx, prompt)
		if err != nil {
			return GenerationErrorMsg{Err: err}
		}
		return GenerationCompleteMsg{Theme: t}
	}
}

// selectCmd activates a theme by id
func selectCmd(ctx context.Context, svc *appdesigner.Service, id string) tea.Cmd {
	return func() tea.Msg {
		t, err := svc.Select(ctx, id)
		if err != nil {
			return ErrorMsg{Message: err.Error()}
		}
		return ThemeSelectedMsg{Theme: t}
	}
}

type namedCopier interface {
	Copy(ctx context.Context, text string) (string, error)
}

// copyCmd renders the export bundle and hands it to the clipboard
func copyCmd(ctx context.Context, svc *appdesigner.Service, clip ports.ClipboardWriter, t theme.Theme) tea.Cmd {
	return func() tea.Msg {
		bundle := svc.Export(ctx, t)
		if c, ok := clip.(namedCopier); ok {
			via, err := c.Copy(ctx, bundle)
			if err != nil {
				return CopyErrorMsg{Err: err}
			}
			return CopyCompleteMsg{ThemeID: t.ID, Via: via}
		}
		if err := clip.WriteText(ctx, bundle); err != nil {
			return CopyErrorMsg{Err: err}
		}
		return CopyCompleteMsg{ThemeID: t.ID, Via: clip.Name()}
	}
}
