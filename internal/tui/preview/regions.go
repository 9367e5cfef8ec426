package preview

import "github.com/alexisbeaulieu97/skinlab/internal/domain/theme"

// Region binds one part of the mock dashboard to the slots that colour it.
// An empty slot leaves that property uncoloured.
type Region struct {
	Name   string
	Fg     theme.Slot
	Bg     theme.Slot
	Border theme.Slot
}

const (
	regionApp          = "app"
	regionHeader       = "header"
	regionLogoAccent   = "logo-accent"
	regionTabActive    = "tab-active"
	regionTab          = "tab"
	regionSearch       = "search"
	regionAvatar       = "avatar"
	regionSidebar      = "sidebar"
	regionSidebarTitle = "sidebar-title"
	regionNodeActive   = "node-active"
	regionNodeLive     = "node-live-dot"
	regionNodeHover    = "node-hover"
	regionNode         = "node"
	regionNodeIdle     = "node-idle-dot"
	regionCard         = "card"
	regionStatInfo     = "stat-info"
	regionStatSuccess  = "stat-success"
	regionStatPrimary  = "stat-primary"
	regionTerm         = "terminal"
	regionTermBar      = "terminal-bar"
	regionTermTitle    = "terminal-title"
	regionLightError   = "light-error"
	regionLightWarning = "light-warning"
	regionLightSuccess = "light-success"
	regionTermOK       = "terminal-ok"
	regionLogAI        = "log-ai"
	regionPrompt       = "prompt"
	regionCursor       = "cursor"
	regionDivider      = "divider"
	regionStdin        = "log-stdin"
	regionStdout       = "log-stdout"
	regionStderr       = "log-stderr"
	regionScrollTrack  = "scroll-track"
	regionScrollThumb  = "scroll-thumb"
	regionTooltip      = "tooltip"
	regionOverlay      = "overlay"
	regionModal        = "modal"
	regionButton       = "button"
)

var regions = []Region{
	{Name: regionApp, Fg: theme.SlotTextMain, Bg: theme.SlotBgMain},
	{Name: regionHeader, Fg: theme.SlotTextMain, Bg: theme.SlotBgHeader, Border: theme.SlotBorderMain},
	{Name: regionLogoAccent, Fg: theme.SlotPrimary, Bg: theme.SlotBgHeader},
	{Name: regionTabActive, Fg: theme.SlotTextMain, Bg: theme.SlotBgActive, Border: theme.SlotTabActiveBorder},
	{Name: regionTab, Fg: theme.SlotTextMuted, Bg: theme.SlotBgHeader},
	{Name: regionSearch, Fg: theme.SlotTextMuted, Bg: theme.SlotBgInput, Border: theme.SlotBorderLight},
	{Name: regionAvatar, Fg: theme.SlotTextInverted, Bg: theme.SlotPrimary},
	{Name: regionSidebar, Fg: theme.SlotTextMuted, Bg: theme.SlotBgPanel, Border: theme.SlotBorderMain},
	{Name: regionSidebarTitle, Fg: theme.SlotTextDim, Bg: theme.SlotBgPanel},
	{Name: regionNodeActive, Fg: theme.SlotPrimary, Bg: theme.SlotPrimaryDim},
	{Name: regionNodeLive, Fg: theme.SlotSuccess, Bg: theme.SlotPrimaryDim},
	{Name: regionNodeHover, Fg: theme.SlotTextMain, Bg: theme.SlotBgHover},
	{Name: regionNode, Fg: theme.SlotTextMuted, Bg: theme.SlotBgPanel},
	{Name: regionNodeIdle, Fg: theme.SlotTextDim, Bg: theme.SlotBgPanel},
	{Name: regionCard, Fg: theme.SlotTextMuted, Bg: theme.SlotBgCard, Border: theme.SlotBorderMain},
	{Name: regionStatInfo, Fg: theme.SlotInfo, Bg: theme.SlotBgCard},
	{Name: regionStatSuccess, Fg: theme.SlotSuccess, Bg: theme.SlotBgCard},
	{Name: regionStatPrimary, Fg: theme.SlotPrimary, Bg: theme.SlotBgCard},
	{Name: regionTerm, Fg: theme.SlotTermFg, Bg: theme.SlotTermBg, Border: theme.SlotBorderMain},
	{Name: regionTermBar, Fg: theme.SlotTextDim, Bg: theme.SlotBgSecondary},
	{Name: regionTermTitle, Fg: theme.SlotPrimary, Bg: theme.SlotBgSecondary},
	{Name: regionLightError, Fg: theme.SlotError, Bg: theme.SlotBgSecondary},
	{Name: regionLightWarning, Fg: theme.SlotWarning, Bg: theme.SlotBgSecondary},
	{Name: regionLightSuccess, Fg: theme.SlotSuccess, Bg: theme.SlotBgSecondary},
	{Name: regionTermOK, Fg: theme.SlotSuccess, Bg: theme.SlotTermBg},
	{Name: regionLogAI, Fg: theme.SlotLogAi, Bg: theme.SlotTermBg},
	{Name: regionPrompt, Fg: theme.SlotPrimary, Bg: theme.SlotTermBg},
	{Name: regionCursor, Fg: theme.SlotPrimary, Bg: theme.SlotPrimary},
	{Name: regionDivider, Fg: theme.SlotBorderLight, Bg: theme.SlotTermBg},
	{Name: regionStdin, Fg: theme.SlotLogStdin, Bg: theme.SlotTermBg},
	{Name: regionStdout, Fg: theme.SlotLogStdout, Bg: theme.SlotTermBg},
	{Name: regionStderr, Fg: theme.SlotLogStderr, Bg: theme.SlotTermBg},
	{Name: regionScrollTrack, Fg: theme.SlotBgTerm, Bg: theme.SlotTermBg},
	{Name: regionScrollThumb, Fg: theme.SlotScrollbarThumb, Bg: theme.SlotTermBg},
	{Name: regionTooltip, Fg: theme.SlotTextMain, Bg: theme.SlotBgTooltip},
	{Name: regionOverlay, Fg: theme.SlotTextMuted, Bg: theme.SlotBgOverlay},
	{Name: regionModal, Fg: theme.SlotTextMain, Bg: theme.SlotBgModal, Border: theme.SlotBorderFocus},
	{Name: regionButton, Fg: theme.SlotTextInverted, Bg: theme.SlotPrimaryHover},
}

// Regions lists every dashboard region and its slot bindings.
func Regions() []Region {
	out := make([]Region, len(regions))
	copy(out, regions)
	return out
}
