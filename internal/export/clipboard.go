package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"

	"github.com/alexisbeaulieu97/skinlab/internal/ports"
)

// ErrClipboardUnavailable is returned when no clipboard writer succeeded.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// SystemClipboard writes to the desktop clipboard through xclip, xsel,
// wl-copy, pbcopy or the Windows API.
type SystemClipboard struct{}

// WriteText implements ports.ClipboardWriter.
func (SystemClipboard) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if clipboard.Unsupported {
		return fmt.Errorf("system clipboard: %w", ErrClipboardUnavailable)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("system clipboard: %w", err)
	}
	return nil
}

// Name implements ports.ClipboardWriter.
func (SystemClipboard) Name() string { return "system" }

// OSC52Clipboard asks the terminal emulator to set the clipboard with an
// OSC 52 escape sequence. It works over SSH and inside tmux or screen.
type OSC52Clipboard struct {
	Out    io.Writer
	Getenv func(string) string
}

// NewOSC52Clipboard writes sequences to out, usually the controlling terminal.
func NewOSC52Clipboard(out io.Writer) *OSC52Clipboard {
	return &OSC52Clipboard{Out: out, Getenv: os.Getenv}
}

// WriteText implements ports.ClipboardWriter.
func (c *OSC52Clipboard) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.Out == nil {
		return fmt.Errorf("osc52: %w", ErrClipboardUnavailable)
	}
	seq := osc52.New(text)
	getenv := c.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	switch {
	case getenv("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(getenv("TERM"), "screen"):
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(c.Out); err != nil {
		return fmt.Errorf("osc52: %w", err)
	}
	return nil
}

// Name implements ports.ClipboardWriter.
func (c *OSC52Clipboard) Name() string { return "osc52" }

// ClipboardChain tries each writer in order until one succeeds.
type ClipboardChain struct {
	writers []ports.ClipboardWriter
}

// NewClipboardChain builds a chain from writers, skipping nil entries.
func NewClipboardChain(writers ...ports.ClipboardWriter) *ClipboardChain {
	chain := &ClipboardChain{}
	for _, w := range writers {
		if w != nil {
			chain.writers = append(chain.writers, w)
		}
	}
	return chain
}

// DefaultClipboard prefers the system clipboard and falls back to OSC 52 on
// out. With osc52Only the system clipboard is skipped.
func DefaultClipboard(out io.Writer, osc52Only bool) *ClipboardChain {
	if osc52Only {
		return NewClipboardChain(NewOSC52Clipboard(out))
	}
	return NewClipboardChain(SystemClipboard{}, NewOSC52Clipboard(out))
}

// Copy writes text and reports which writer accepted it.
func (c *ClipboardChain) Copy(ctx context.Context, text string) (string, error) {
	var errs []error
	for _, w := range c.writers {
		if err := w.WriteText(ctx, text); err != nil {
			errs = append(errs, err)
			if ctx.Err() != nil {
				break
			}
			continue
		}
		return w.Name(), nil
	}
	if len(errs) == 0 {
		return "", ErrClipboardUnavailable
	}
	return "", errors.Join(append([]error{ErrClipboardUnavailable}, errs...)...)
}

// WriteText implements ports.ClipboardWriter.
func (c *ClipboardChain) WriteText(ctx context.Context, text string) error {
	_, err := c.Copy(ctx, text)
	return err
}

// Name implements ports.ClipboardWriter.
func (c *ClipboardChain) Name() string {
	names := make([]string, len(c.writers))
	for i, w := range c.writers {
		names[i] = w.Name()
	}
	return strings.Join(names, "+")
}

var (
	_ ports.ClipboardWriter = SystemClipboard{}
	_ ports.ClipboardWriter = (*OSC52Clipboard)(nil)
	_ ports.ClipboardWriter = (*ClipboardChain)(nil)
)
