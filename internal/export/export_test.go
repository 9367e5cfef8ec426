package export

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/skinlab/internal/domain/theme"
	"github.com/alexisbeaulieu97/skinlab/internal/ports"
)

func sampleTheme(id string) theme.Theme {
	var colors theme.Colors
	for i, slot := range theme.Slots() {
		colors.Set(slot, fmt.Sprintf("#%06x", i))
	}
	return theme.Theme{ID: id, Name: "Cyber Forest", Icon: "🌲", Colors: colors}
}

func TestVariableName(t *testing.T) {
	t.Parallel()

	cases := map[theme.Slot]string{
		theme.SlotBgMain:          "--bg-main",
		theme.SlotTermFg:          "--term-fg",
		theme.SlotPrimary:         "--primary",
		theme.SlotLogAi:           "--log-ai",
		theme.SlotTabActiveBorder: "--tab-active-border",
		theme.SlotTextInverted:    "--text-inverted",
	}
	for slot, want := range cases {
		assert.Equal(t, want, VariableName(slot), string(slot))
	}
}

func TestStylesheet(t *testing.T) {
	t.Parallel()

	css := Stylesheet(sampleTheme("gen-1"))
	lines := strings.Split(css, "\n")

	require.Equal(t, "/* Cyber Forest Theme */", lines[0])
	require.Equal(t, `[data-theme="gen-1"] {`, lines[1])
	require.Equal(t, "    --bg-main: #000000;", lines[2])
	require.Equal(t, "    --tab-active-border: #000021;", lines[len(lines)-2])
	require.Equal(t, "}", lines[len(lines)-1])
	require.Len(t, lines, theme.SlotCount+3)
}

func TestStylesheetEscapesCommentTerminator(t *testing.T) {
	t.Parallel()

	th := sampleTheme("x")
	th.Name = "Evil */ name"
	require.True(t, strings.HasPrefix(Stylesheet(th), "/* Evil * / name Theme */\n"))
}

func TestRegistration(t *testing.T) {
	t.Parallel()

	require.Equal(t, "{ id: 'gen-1', name: '🌲 Cyber Forest', icon: '🌲' }", Registration(sampleTheme("gen-1")))

	th := sampleTheme("gen-2")
	th.Name = "Rock 'n' Roll"
	require.Contains(t, Registration(th), `name: '🌲 Rock \'n\' Roll'`)
}

func TestBundle(t *testing.T) {
	t.Parallel()

	th := sampleTheme("gen-1")
	bundle := Bundle(th)
	require.True(t, strings.HasPrefix(bundle, "/* themes.css */\n/* Cyber Forest Theme */\n"))
	require.True(t, strings.HasSuffix(bundle, "}\n\n/* theme-manager.js Registration */\n"+Registration(th)))

	var buf bytes.Buffer
	require.NoError(t, WriteBundle(&buf, th))
	require.Equal(t, bundle+"\n", buf.String())
}

func TestDiff(t *testing.T) {
	t.Parallel()

	a := sampleTheme("alpha")
	b := a
	b.ID = "beta"
	b.Colors.Primary = "#ff0000"

	out, stats := Diff(a, b)
	require.Contains(t, out, "--- alpha\n+++ beta\n")
	require.Contains(t, out, "+    --primary: #ff0000;\n")
	require.Contains(t, out, `+[data-theme="beta"] {`)
	require.Equal(t, 2, stats.Added)
	require.Equal(t, 2, stats.Removed)

	same, _ := Diff(a, a)
	require.Empty(t, same)
}

func TestOSC52Clipboard(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	c := &OSC52Clipboard{Out: &out, Getenv: func(string) string { return "" }}
	require.NoError(t, c.WriteText(context.Background(), "hello"))

	encoded := base64.StdEncoding.EncodeToString([]byte("hello"))
	require.Contains(t, out.String(), "\x1b]52;c;"+encoded)

	out.Reset()
	tmux := &OSC52Clipboard{Out: &out, Getenv: func(k string) string {
		if k == "TMUX" {
			return "/tmp/tmux-1000/default,1,0"
		}
		return ""
	}}
	require.NoError(t, tmux.WriteText(context.Background(), "hello"))
	require.True(t, strings.HasPrefix(out.String(), "\x1bPtmux;"))
}

func TestClipboardChainFallsBack(t *testing.T) {
	t.Parallel()

	var got []string
	failing := namedWriter{name: "broken", fn: func(context.Context, string) error { return errors.New("no xclip") }}
	working := namedWriter{name: "memory", fn: func(_ context.Context, text string) error {
		got = append(got, text)
		return nil
	}}

	chain := NewClipboardChain(failing, nil, working)
	used, err := chain.Copy(context.Background(), "bundle")
	require.NoError(t, err)
	require.Equal(t, "memory", used)
	require.Equal(t, []string{"bundle"}, got)
	require.Equal(t, "broken+memory", chain.Name())
}

func TestClipboardChainAllFail(t *testing.T) {
	t.Parallel()

	chain := NewClipboardChain(ports.ClipboardWriterFunc(func(context.Context, string) error {
		return errors.New("denied")
	}))
	_, err := chain.Copy(context.Background(), "bundle")
	require.ErrorIs(t, err, ErrClipboardUnavailable)
	require.ErrorContains(t, err, "denied")

	_, err = NewClipboardChain().Copy(context.Background(), "bundle")
	require.ErrorIs(t, err, ErrClipboardUnavailable)
}

type namedWriter struct {
	name string
	fn   func(context.Context, string) error
}

func (w namedWriter) WriteText(ctx context.Context, text string) error { return w.fn(ctx, text) }
func (w namedWriter) Name() string                                       { return w.name }
