package ports

import (
	"context"

	"github.com/alexisbeaulieu97/skinlab/internal/domain/theme"
)

// PaletteGenerator turns a free-text prompt into a theme fragment by making
// exactly one request to a hosted text-generation service. Implementations:
//   - never retry, back off or cache;
//   - fail with *errors.GenerationError carrying a distinct reason;
//   - treat schema mismatches leniently and report them in GenerationResult.Issues;
//   - are safe for concurrent use (calls are independent).
type PaletteGenerator interface {
	Generate(ctx context.Context, prompt string) (GenerationResult, error)
	Describe() GeneratorInfo
}

// GenerationResult is the outcome of a successful generation request.
type GenerationResult struct {
	Fragment theme.Fragment
	// Issues lists schema deviations that were tolerated while parsing.
	Issues []string
}

// GeneratorInfo identifies the backend behind a PaletteGenerator.
type GeneratorInfo struct {
	Provider string
	Model    string
	Endpoint string
}

// ClipboardWriter places exported text somewhere the user can paste it from.
type ClipboardWriter interface {
	WriteText(ctx context.Context, text string) error
	Name() string
}

// ClipboardWriterFunc adapts a function to ClipboardWriter.
type ClipboardWriterFunc func(ctx context.Context, text string) error

// WriteText implements ClipboardWriter.
func (f ClipboardWriterFunc) WriteText(ctx context.Context, text string) error {
	return f(ctx, text)
}

// Name implements ClipboardWriter.
func (f ClipboardWriterFunc) Name() string { return "func" }
