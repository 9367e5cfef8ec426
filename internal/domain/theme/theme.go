package theme

import "strings"

// Slot names one colour role of the Kosmos Panel.
type Slot string

const (
	SlotBgMain      Slot = "bgMain"
	SlotBgSecondary Slot = "bgSecondary"
	SlotBgCard      Slot = "bgCard"
	SlotBgPanel     Slot = "bgPanel"
	SlotBgHeader    Slot = "bgHeader"
	SlotBgInput     Slot = "bgInput"
	SlotBgTerm      Slot = "bgTerm"
	SlotBgHover     Slot = "bgHover"
	SlotBgActive    Slot = "bgActive"
	SlotBgTooltip   Slot = "bgTooltip"
	SlotBgOverlay   Slot = "bgOverlay"
	SlotBgModal     Slot = "bgModal"

	SlotTermBg Slot = "termBg"
	SlotTermFg Slot = "termFg"

	SlotBorderMain  Slot = "borderMain"
	SlotBorderLight Slot = "borderLight"
	SlotBorderFocus Slot = "borderFocus"

	SlotTextMain     Slot = "textMain"
	SlotTextMuted    Slot = "textMuted"
	SlotTextDim      Slot = "textDim"
	SlotTextInverted Slot = "textInverted"

	SlotPrimary      Slot = "primary"
	SlotPrimaryHover Slot = "primaryHover"
	SlotPrimaryDim   Slot = "primaryDim"

	SlotSuccess Slot = "success"
	SlotWarning Slot = "warning"
	SlotError   Slot = "error"
	SlotInfo    Slot = "info"

	SlotLogAi     Slot = "logAi"
	SlotLogStdin  Slot = "logStdin"
	SlotLogStdout Slot = "logStdout"
	SlotLogStderr Slot = "logStderr"

	SlotScrollbarThumb  Slot = "scrollbarThumb"
	SlotTabActiveBorder Slot = "tabActiveBorder"
)

// SlotGroup clusters slots by the part of the panel they colour.
type SlotGroup string

const (
	GroupBackground SlotGroup = "background"
	GroupTerminal   SlotGroup = "terminal"
	GroupBorder     SlotGroup = "border"
	GroupText       SlotGroup = "text"
	GroupBrand      SlotGroup = "brand"
	GroupStatus     SlotGroup = "status"
	GroupLog        SlotGroup = "log stream"
	GroupChrome     SlotGroup = "chrome"
)

var slots = []Slot{
	SlotBgMain, SlotBgSecondary, SlotBgCard, SlotBgPanel, SlotBgHeader, SlotBgInput,
	SlotBgTerm, SlotBgHover, SlotBgActive, SlotBgTooltip, SlotBgOverlay, SlotBgModal,
	SlotTermBg, SlotTermFg,
	SlotBorderMain, SlotBorderLight, SlotBorderFocus,
	SlotTextMain, SlotTextMuted, SlotTextDim, SlotTextInverted,
	SlotPrimary, SlotPrimaryHover, SlotPrimaryDim,
	SlotSuccess, SlotWarning, SlotError, SlotInfo,
	SlotLogAi, SlotLogStdin, SlotLogStdout, SlotLogStderr,
	SlotScrollbarThumb, SlotTabActiveBorder,
}

var slotIndex = func() map[Slot]int {
	index := make(map[Slot]int, len(slots))
	for i, s := range slots {
		index[s] = i
	}
	return index
}()

// SlotCount is the number of colour slots every complete theme carries.
const SlotCount = 34

// Slots returns every colour slot in canonical order.
func Slots() []Slot {
	out := make([]Slot, len(slots))
	copy(out, slots)
	return out
}

// ParseSlot resolves a slot by its exact name.
func ParseSlot(name string) (Slot, bool) {
	s := Slot(name)
	_, ok := slotIndex[s]
	return s, ok
}

// Group reports which part of the panel the slot colours.
func (s Slot) Group() SlotGroup {
	switch s {
	case SlotTermBg, SlotTermFg:
		return GroupTerminal
	case SlotBorderMain, SlotBorderLight, SlotBorderFocus:
		return GroupBorder
	case SlotTextMain, SlotTextMuted, SlotTextDim, SlotTextInverted:
		return GroupText
	case SlotPrimary, SlotPrimaryHover, SlotPrimaryDim:
		return GroupBrand
	case SlotSuccess, SlotWarning, SlotError, SlotInfo:
		return GroupStatus
	case SlotLogAi, SlotLogStdin, SlotLogStdout, SlotLogStderr:
		return GroupLog
	case SlotScrollbarThumb, SlotTabActiveBorder:
		return GroupChrome
	default:
		return GroupBackground
	}
}

// Colors is the complete, fixed-shape slot assignment of a theme. Values are
// opaque colour strings (hex, rgb(), hsl()) and are never rewritten.
type Colors struct {
	BgMain      string `json:"bgMain" yaml:"bgMain" validate:"required"`
	BgSecondary string `json:"bgSecondary" yaml:"bgSecondary" validate:"required"`
	BgCard      string `json:"bgCard" yaml:"bgCard" validate:"required"`
	BgPanel     string `json:"bgPanel" yaml:"bgPanel" validate:"required"`
	BgHeader    string `json:"bgHeader" yaml:"bgHeader" validate:"required"`
	BgInput     string `json:"bgInput" yaml:"bgInput" validate:"required"`
	BgTerm      string `json:"bgTerm" yaml:"bgTerm" validate:"required"`
	BgHover     string `json:"bgHover" yaml:"bgHover" validate:"required"`
	BgActive    string `json:"bgActive" yaml:"bgActive" validate:"required"`
	BgTooltip   string `json:"bgTooltip" yaml:"bgTooltip" validate:"required"`
	BgOverlay   string `json:"bgOverlay" yaml:"bgOverlay" validate:"required"`
	BgModal     string `json:"bgModal" yaml:"bgModal" validate:"required"`

	TermBg string `json:"termBg" yaml:"termBg" validate:"required"`
	TermFg string `json:"termFg" yaml:"termFg" validate:"required"`

	BorderMain  string `json:"borderMain" yaml:"borderMain" validate:"required"`
	BorderLight string `json:"borderLight" yaml:"borderLight" validate:"required"`
	BorderFocus string `json:"borderFocus" yaml:"borderFocus" validate:"required"`

	TextMain     string `json:"textMain" yaml:"textMain" validate:"required"`
	TextMuted    string `json:"textMuted" yaml:"textMuted" validate:"required"`
	TextDim      string `json:"textDim" yaml:"textDim" validate:"required"`
	TextInverted string `json:"textInverted" yaml:"textInverted" validate:"required"`

	Primary      string `json:"primary" yaml:"primary" validate:"required"`
	PrimaryHover string `json:"primaryHover" yaml:"primaryHover" validate:"required"`
	PrimaryDim   string `json:"primaryDim" yaml:"primaryDim" validate:"required"`

	Success string `json:"success" yaml:"success" validate:"required"`
	Warning string `json:"warning" yaml:"warning" validate:"required"`
	Error   string `json:"error" yaml:"error" validate:"required"`
	Info    string `json:"info" yaml:"info" validate:"required"`

	LogAi     string `json:"logAi" yaml:"logAi" validate:"required"`
	LogStdin  string `json:"logStdin" yaml:"logStdin" validate:"required"`
	LogStdout string `json:"logStdout" yaml:"logStdout" validate:"required"`
	LogStderr string `json:"logStderr" yaml:"logStderr" validate:"required"`

	ScrollbarThumb  string `json:"scrollbarThumb" yaml:"scrollbarThumb" validate:"required"`
	TabActiveBorder string `json:"tabActiveBorder" yaml:"tabActiveBorder" validate:"required"`
}

func (c *Colors) field(slot Slot) *string {
	switch slot {
	case SlotBgMain:
		return &c.BgMain
	case SlotBgSecondary:
		return &c.BgSecondary
	case SlotBgCard:
		return &c.BgCard
	case SlotBgPanel:
		return &c.BgPanel
	case SlotBgHeader:
		return &c.BgHeader
	case SlotBgInput:
		return &c.BgInput
	case SlotBgTerm:
		return &c.BgTerm
	case SlotBgHover:
		return &c.BgHover
	case SlotBgActive:
		return &c.BgActive
	case SlotBgTooltip:
		return &c.BgTooltip
	case SlotBgOverlay:
		return &c.BgOverlay
	case SlotBgModal:
		return &c.BgModal
	case SlotTermBg:
		return &c.TermBg
	case SlotTermFg:
		return &c.TermFg
	case SlotBorderMain:
		return &c.BorderMain
	case SlotBorderLight:
		return &c.BorderLight
	case SlotBorderFocus:
		return &c.BorderFocus
	case SlotTextMain:
		return &c.TextMain
	case SlotTextMuted:
		return &c.TextMuted
	case SlotTextDim:
		return &c.TextDim
	case SlotTextInverted:
		return &c.TextInverted
	case SlotPrimary:
		return &c.Primary
	case SlotPrimaryHover:
		return &c.PrimaryHover
	case SlotPrimaryDim:
		return &c.PrimaryDim
	case SlotSuccess:
		return &c.Success
	case SlotWarning:
		return &c.Warning
	case SlotError:
		return &c.Error
	case SlotInfo:
		return &c.Info
	case SlotLogAi:
		return &c.LogAi
	case SlotLogStdin:
		return &c.LogStdin
	case SlotLogStdout:
		return &c.LogStdout
	case SlotLogStderr:
		return &c.LogStderr
	case SlotScrollbarThumb:
		return &c.ScrollbarThumb
	case SlotTabActiveBorder:
		return &c.TabActiveBorder
	default:
		return nil
	}
}

// Get returns the value assigned to slot, or "" for an unknown slot.
func (c Colors) Get(slot Slot) string {
	if f := c.field(slot); f != nil {
		return *f
	}
	return ""
}

// Set assigns value to slot. It reports false for an unknown slot.
func (c *Colors) Set(slot Slot, value string) bool {
	f := c.field(slot)
	if f == nil {
		return false
	}
	*f = value
	return true
}

// Missing lists the slots that hold no value, in canonical order.
func (c Colors) Missing() []Slot {
	var missing []Slot
	for _, s := range slots {
		if strings.TrimSpace(c.Get(s)) == "" {
			missing = append(missing, s)
		}
	}
	return missing
}

// Complete reports whether every slot holds a value.
func (c Colors) Complete() bool {
	return len(c.Missing()) == 0
}

// Map returns the assignment keyed by slot.
func (c Colors) Map() map[Slot]string {
	out := make(map[Slot]string, len(slots))
	for _, s := range slots {
		out[s] = c.Get(s)
	}
	return out
}

// Theme is a named, iconized, complete set of slot assignments. Themes are
// values: once built they are never modified in place.
type Theme struct {
	ID     string `json:"id" yaml:"id" validate:"required,theme_id"`
	Name   string `json:"name" yaml:"name" validate:"required"`
	Icon   string `json:"icon" yaml:"icon" validate:"required,glyph"`
	Colors Colors `json:"colors" yaml:"colors"`
}

// Label renders the theme the way the panel's theme picker lists it.
func (t Theme) Label() string {
	return strings.TrimSpace(t.Icon + " " + t.Name)
}
