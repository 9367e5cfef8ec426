package designer

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appdesigner "github.com/alexisbeaulieu97/skinlab/internal/application/designer"
	"github.com/alexisbeaulieu97/skinlab/internal/domain/theme"
	"github.com/alexisbeaulieu97/skinlab/internal/ports"
	skinerrors "github.com/alexisbeaulieu97/skinlab/pkg/errors"
)

type stubGenerator struct {
	fragment theme.Fragment
	err      error
	calls    int
}

func (g *stubGenerator) Generate(context.Context, string) (ports.GenerationResult, error) {
	g.calls++
	if g.err != nil {
		return ports.GenerationResult{}, g.err
	}
	return ports.GenerationResult{Fragment: g.fragment}, nil
}

func (g *stubGenerator) Describe() ports.GeneratorInfo {
	return ports.GeneratorInfo{Provider: "stub", Model: "test"}
}

type memoryClipboard struct {
	text string
	err  error
}

func (c *memoryClipboard) WriteText(_ context.Context, text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

func (c *memoryClipboard) Name() string { return "memory" }

func testTheme(id, name string) theme.Theme {
	var colors theme.Colors
	for i, slot := range theme.Slots() {
		colors.Set(slot, fmt.Sprintf("#%02x%02x%02x", i*7, 255-i*7, i*3))
	}
	return theme.Theme{ID: id, Name: name, Icon: "🌌", Colors: colors}
}

func newTestModel(t *testing.T, gen ports.PaletteGenerator, clip ports.ClipboardWriter) Model {
	t.Helper()
	svc, err := appdesigner.NewService(appdesigner.Options{
		Store:     theme.NewStore([]theme.Theme{testTheme("kosmos", "Kosmos"), testTheme("matrix", "Matrix")}),
		Generator: gen,
	})
	require.NoError(t, err)
	return NewModel(Options{Service: svc, Clipboard: clip})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestUpdate_WindowSizeMsg_TooSmall(t *testing.T) {
	m := newTestModel(t, &stubGenerator{}, nil)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	assert.Contains(t, m.ErrorMessage(), "Terminal too small")

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 140, Height: 50})
	assert.Empty(t, m.ErrorMessage())
}

func TestUpdate_BlankPromptDoesNotGenerate(t *testing.T) {
	gen := &stubGenerator{}
	m := newTestModel(t, gen, nil)
	m = typeText(t, m, "   ")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.False(t, m.IsGenerating())
	assert.Zero(t, gen.calls)
}

func TestUpdate_GenerateSuccessClearsPrompt(t *testing.T) {
	gen := &stubGenerator{fragment: theme.Fragment{
		Name:   "Neon Dusk",
		Icon:   "🌆",
		Colors: map[theme.Slot]string{theme.SlotPrimary: "#ff00aa"},
	}}
	m := newTestModel(t, gen, nil)
	m = typeText(t, m, "neon dusk")
	require.Equal(t, "neon dusk", m.PromptValue())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.IsGenerating())

	again, second := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlG})
	assert.Nil(t, second, "trigger while generating must be ignored")
	assert.True(t, again.IsGenerating())

	var done tea.Msg
	for _, msg := range collect(cmd) {
		if _, ok := msg.(GenerationCompleteMsg); ok {
			done = msg
		}
	}
	require.NotNil(t, done)
	assert.Equal(t, 1, gen.calls)

	m, _ = update(t, m, done)
	assert.False(t, m.IsGenerating())
	assert.Empty(t, m.PromptValue())
	assert.Empty(t, m.ErrorMessage())
	assert.Equal(t, "Neon Dusk", m.Active().Name)
	assert.Equal(t, "#ff00aa", m.Active().Colors.Primary)
	assert.Equal(t, 2, m.cursor, "cursor follows the new history entry")
}

func TestUpdate_GenerateFailurePreservesPrompt(t *testing.T) {
	gen := &stubGenerator{err: skinerrors.NewGenerationError(skinerrors.ReasonMissingAPIKey, errors.New("no API key configured"))}
	m := newTestModel(t, gen, nil)
	before := m.Active()
	m = typeText(t, m, "ocean")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	msgs := collect(cmd)

	var failed tea.Msg
	for _, msg := range msgs {
		if _, ok := msg.(GenerationErrorMsg); ok {
			failed = msg
		}
	}
	require.NotNil(t, failed)

	m, _ = update(t, m, failed)
	assert.False(t, m.IsGenerating())
	assert.Equal(t, "ocean", m.PromptValue())
	assert.Contains(t, m.ErrorMessage(), "Generation failed. Check API key.")
	assert.Contains(t, m.ErrorMessage(), "No API key is configured")
	assert.Equal(t, before, m.Active())
}

func TestUpdate_BusyAndEmptyErrorsAreSilent(t *testing.T) {
	m := newTestModel(t, &stubGenerator{}, nil)

	m, _ = update(t, m, GenerationErrorMsg{Err: appdesigner.ErrBusy})
	assert.Empty(t, m.ErrorMessage())

	m, _ = update(t, m, GenerationErrorMsg{Err: skinerrors.NewGenerationError(skinerrors.ReasonEmptyPrompt, &skinerrors.EmptyPromptError{})})
	assert.Empty(t, m.ErrorMessage())
}

func TestUpdate_ListNavigationAndSelect(t *testing.T) {
	m := newTestModel(t, &stubGenerator{}, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FocusList, m.GetFocus())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.cursor)
	m, _ = update(t, m, keyRune('j'))
	assert.Equal(t, 0, m.cursor, "cursor wraps")
	m, _ = update(t, m, keyRune('k'))
	assert.Equal(t, 1, m.cursor)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	msgs := collect(cmd)
	require.Len(t, msgs, 1)
	selected, ok := msgs[0].(ThemeSelectedMsg)
	require.True(t, ok)
	assert.Equal(t, "matrix", selected.Theme.ID)

	m, _ = update(t, m, selected)
	assert.Equal(t, "matrix", m.Active().ID)
}

func TestUpdate_DismissError(t *testing.T) {
	m := newTestModel(t, &stubGenerator{}, nil)
	m, _ = update(t, m, ErrorMsg{Message: "boom"})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, "boom", m.ErrorMessage())

	m, _ = update(t, m, keyRune('x'))
	assert.Empty(t, m.ErrorMessage())
}

func TestUpdate_CopyExport(t *testing.T) {
	clip := &memoryClipboard{}
	m := newTestModel(t, &stubGenerator{}, clip)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})

	m, cmd := update(t, m, keyRune('c'))
	msgs := collect(cmd)
	require.Len(t, msgs, 1)
	done, ok := msgs[0].(CopyCompleteMsg)
	require.True(t, ok)
	assert.Equal(t, "memory", done.Via)
	assert.Contains(t, clip.text, `[data-theme="kosmos"]`)
	assert.Contains(t, clip.text, "{ id: 'kosmos', name: '🌌 Kosmos', icon: '🌌' }")

	m, _ = update(t, m, done)
	assert.Contains(t, m.notice, "via memory")
}

func TestUpdate_CopyFailureShowsBanner(t *testing.T) {
	clip := &memoryClipboard{err: errors.New("no display")}
	m := newTestModel(t, &stubGenerator{}, clip)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})

	m, cmd := update(t, m, keyRune('c'))
	msgs := collect(cmd)
	require.Len(t, msgs, 1)
	m, _ = update(t, m, msgs[0])
	assert.Contains(t, m.ErrorMessage(), "Copy failed: no display")
}

func TestUpdate_Overlays(t *testing.T) {
	m := newTestModel(t, &stubGenerator{}, nil)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})

	m, _ = update(t, m, keyRune('?'))
	assert.Equal(t, ViewHelp, m.GetViewMode())
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ViewMain, m.GetViewMode())

	m, _ = update(t, m, keyRune('e'))
	assert.Equal(t, ViewExport, m.GetViewMode())
	m, _ = update(t, m, keyRune('e'))
	assert.Equal(t, ViewMain, m.GetViewMode())

	m, _ = update(t, m, keyRune('l'))
	assert.Equal(t, ViewLegend, m.GetViewMode())
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ViewMain, m.GetViewMode())
}

func TestUpdate_QuitKeys(t *testing.T) {
	m := newTestModel(t, &stubGenerator{}, nil)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	// q types into the prompt while it has focus
	m = typeText(t, m, "q")
	assert.Equal(t, "q", m.PromptValue())
}
