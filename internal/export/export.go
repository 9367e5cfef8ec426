// Package export renders themes as CSS custom properties and the matching
// theme-manager registration entry.
package export

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/alexisbeaulieu97/skinlab/internal/domain/theme"
	"github.com/alexisbeaulieu97/skinlab/pkg/diff"
)

const indent = "    "

// VariableName converts a slot name to its CSS custom property:
// bgMain becomes --bg-main. Every upper-case letter starts a new segment.
func VariableName(slot theme.Slot) string {
	var sb strings.Builder
	sb.WriteString("--")
	for _, r := range string(slot) {
		if unicode.IsUpper(r) {
			sb.WriteByte('-')
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Stylesheet renders the theme as a [data-theme] rule listing every slot in
// canonical order.
func Stylesheet(t theme.Theme) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "/* %s Theme */\n", strings.ReplaceAll(t.Name, "*/", "* /"))
	fmt.Fprintf(&sb, "[data-theme=%q] {\n", t.ID)
	for _, slot := range theme.Slots() {
		fmt.Fprintf(&sb, "%s%s: %s;\n", indent, VariableName(slot), t.Colors.Get(slot))
	}
	sb.WriteString("}")
	return sb.String()
}

// Registration renders the theme-manager entry for the theme.
func Registration(t theme.Theme) string {
	return fmt.Sprintf("{ id: '%s', name: '%s %s', icon: '%s' }",
		jsQuote(t.ID), jsQuote(t.Icon), jsQuote(t.Name), jsQuote(t.Icon))
}

// Bundle joins the stylesheet and registration into the copy-paste text.
func Bundle(t theme.Theme) string {
	return "/* themes.css */\n" + Stylesheet(t) + "\n\n/* theme-manager.js Registration */\n" + Registration(t)
}

// WriteBundle writes Bundle(t) followed by a newline.
func WriteBundle(w io.Writer, t theme.Theme) error {
	_, err := io.WriteString(w, Bundle(t)+"\n")
	return err
}

// Diff returns a unified diff between the stylesheets of a and b, or "" when
// they render identically.
func Diff(a, b theme.Theme) (string, diff.Stats) {
	return diff.Unified(Stylesheet(a)+"\n", Stylesheet(b)+"\n", a.ID, b.ID)
}

func jsQuote(s string) string {
	return strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`).Replace(s)
}
