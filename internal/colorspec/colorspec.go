// Package colorspec parses the CSS colour notations themes use so they can be
// drawn in a terminal. Parsed values are only used for display; stored theme
// values are never rewritten.
package colorspec

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnsupported is returned for notations the terminal preview cannot draw.
var ErrUnsupported = errors.New("unsupported colour notation")

// Color is an sRGB colour with straight alpha in [0,1].
type Color struct {
	colorful.Color
	Alpha float64
}

// Parse accepts #rgb, #rgba, #rrggbb, #rrggbbaa, rgb(), rgba(), hsl() and
// hsla() in either comma or space separated form.
func Parse(value string) (Color, error) {
	s := strings.ToLower(strings.TrimSpace(value))
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(s, "rgb"):
		return parseFunc(s, "rgb", rgbFromArgs)
	case strings.HasPrefix(s, "hsl"):
		return parseFunc(s, "hsl", hslFromArgs)
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrUnsupported, value)
	}
}

func parseHex(s string) (Color, error) {
	digits := s[1:]
	switch len(digits) {
	case 3, 4:
		var sb strings.Builder
		for _, r := range digits {
			sb.WriteRune(r)
			sb.WriteRune(r)
		}
		digits = sb.String()
	case 6, 8:
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrUnsupported, s)
	}

	c, err := colorful.Hex("#" + digits[:6])
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrUnsupported, s)
	}
	alpha := 1.0
	if len(digits) == 8 {
		a, err := strconv.ParseUint(digits[6:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrUnsupported, s)
		}
		alpha = float64(a) / 255
	}
	return Color{Color: c, Alpha: alpha}, nil
}

func parseFunc(s, family string, build func([]string) (colorful.Color, error)) (Color, error) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return Color{}, fmt.Errorf("%w: %q", ErrUnsupported, s)
	}
	name := s[:open]
	if name != family && name != family+"a" {
		return Color{}, fmt.Errorf("%w: %q", ErrUnsupported, s)
	}

	args := splitArgs(s[open+1 : len(s)-1])
	if len(args) != 3 && len(args) != 4 {
		return Color{}, fmt.Errorf("%w: %q", ErrUnsupported, s)
	}
	c, err := build(args[:3])
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q: %v", ErrUnsupported, s, err)
	}
	alpha := 1.0
	if len(args) == 4 {
		alpha, err = parseAlpha(args[3])
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q: %v", ErrUnsupported, s, err)
		}
	}
	return Color{Color: c, Alpha: alpha}, nil
}

// splitArgs handles "1, 2, 3, 0.5" as well as "1 2 3 / 0.5".
func splitArgs(inner string) []string {
	inner = strings.ReplaceAll(inner, "/", " ")
	inner = strings.ReplaceAll(inner, ",", " ")
	return strings.Fields(inner)
}

func rgbFromArgs(args []string) (colorful.Color, error) {
	var ch [3]float64
	for i, a := range args {
		if strings.HasSuffix(a, "%") {
			v, err := strconv.ParseFloat(strings.TrimSuffix(a, "%"), 64)
			if err != nil {
				return colorful.Color{}, err
			}
			ch[i] = clamp01(v / 100)
			continue
		}
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return colorful.Color{}, err
		}
		ch[i] = clamp01(v / 255)
	}
	return colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}

func hslFromArgs(args []string) (colorful.Color, error) {
	h, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
	if err != nil {
		return colorful.Color{}, err
	}
	s, err := parsePercent(args[1])
	if err != nil {
		return colorful.Color{}, err
	}
	l, err := parsePercent(args[2])
	if err != nil {
		return colorful.Color{}, err
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return colorful.Hsl(h, s, l).Clamped(), nil
}

func parsePercent(a string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(a, "%"), 64)
	if err != nil {
		return 0, err
	}
	return clamp01(v / 100), nil
}

func parseAlpha(a string) (float64, error) {
	if strings.HasSuffix(a, "%") {
		return parsePercent(a)
	}
	v, err := strconv.ParseFloat(a, 64)
	if err != nil {
		return 0, err
	}
	return clamp01(v), nil
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Over composites c onto an opaque backdrop.
func (c Color) Over(backdrop colorful.Color) colorful.Color {
	if c.Alpha >= 1 {
		return c.Color
	}
	return backdrop.BlendRgb(c.Color, c.Alpha).Clamped()
}

// Resolver turns theme colour strings into opaque hex values for lipgloss.
// Translucent colours are flattened onto the backdrop.
type Resolver struct {
	backdrop colorful.Color
}

// NewResolver uses backdrop, typically the theme's main background, to
// flatten translucent colours. Unparseable backdrops fall back to black.
func NewResolver(backdrop string) Resolver {
	bg, err := Parse(backdrop)
	if err != nil {
		return Resolver{}
	}
	return Resolver{backdrop: bg.Over(colorful.Color{})}
}

// Hex returns the flattened #rrggbb form of value and whether it parsed.
func (r Resolver) Hex(value string) (string, bool) {
	c, err := Parse(value)
	if err != nil {
		return "", false
	}
	return c.Over(r.backdrop).Hex(), true
}

// ReadableOn picks black or white text for a swatch filled with value.
func (r Resolver) ReadableOn(value string) string {
	c, err := Parse(value)
	if err != nil {
		return "#ffffff"
	}
	_, _, l := c.Over(r.backdrop).Hcl()
	if l > 0.6 {
		return "#000000"
	}
	return "#ffffff"
}
