package tui

import "github.com/charmbracelet/lipgloss"

// ────────────────────────────────────────────────────────────
// Color Palette: GitHub Dark
// ────────────────────────────────────────────────────────────
//
// All colors are defined here. No ad-hoc color literals anywhere.

var (
	// Base
	colorBg        = lipgloss.Color("#0d1117")
	colorBgSurface = lipgloss.Color("#1c2128")

	// Text
	colorText      = lipgloss.Color("#e6edf3")
	colorTextDim   = lipgloss.Color("#8b949e")
	colorTextMuted = lipgloss.Color("#484f58")

	// Accents
	colorBlue   = lipgloss.Color("#58a6ff")
	colorGreen  = lipgloss.Color("#3fb950")
	colorRed    = lipgloss.Color("#f85149")
	colorYellow = lipgloss.Color("#d29922")
	colorPurple = lipgloss.Color("#bc8cff")
	colorCyan   = lipgloss.Color("#76e3ea")

	// Structural
	colorDivider   = lipgloss.Color("#30363d")
	colorHighlight = lipgloss.Color("#1f6feb")
)

// ────────────────────────────────────────────────────────────
// Component Styles
// ────────────────────────────────────────────────────────────

// Header bar
var (
	headerBarStyle = lipgloss.NewStyle().
			Background(colorBgSurface).
			Foreground(colorText).
			Padding(0, 1)

	headerBrandStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorBlue)

	headerSepStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	headerMetaStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	headerPriceStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorText)
)

// Expiration blocks
var (
	blockStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDivider)

	blockSelectedStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorYellow)

	expTitleStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	expTitleSelectedStyle = lipgloss.NewStyle().
				Foreground(colorYellow).
				Bold(true)

	expMetaStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)
)

// Options table
var (
	tableBorderStyle = lipgloss.NewStyle().
				Foreground(colorDivider)

	tableCellStyle = lipgloss.NewStyle().
			Foreground(colorText)

	colHeaderStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	colSymbolStyle = lipgloss.NewStyle().
			Foreground(colorCyan)

	colBidStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	colAskStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	colVolumeStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	colGreekStyle = lipgloss.NewStyle().
			Foreground(colorPurple)

	colStrikeStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	strikeBelowStyle = lipgloss.NewStyle().
				Foreground(colorGreen).
				Bold(true)

	strikeAboveStyle = lipgloss.NewStyle().
				Foreground(colorRed).
				Bold(true)

	strikeAtStyle = lipgloss.NewStyle().
			Foreground(colorYellow).
			Bold(true)
)

// Tab strip
var (
	tabStyle = lipgloss.NewStyle().
			Foreground(colorTextDim).
			Padding(0, 1)

	tabActiveStyle = lipgloss.NewStyle().
			Background(colorHighlight).
			Foreground(colorText).
			Bold(true).
			Padding(0, 1)

	tabSepStyle = lipgloss.NewStyle().
			Foreground(colorDivider)
)

// Footer / status bar
var (
	statusStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorBgSurface).
			Padding(0, 1)

	statusAccentStyle = lipgloss.NewStyle().
				Foreground(colorBlue).
				Background(colorBgSurface).
				Bold(true).
				Padding(0, 1)

	hintKeyStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	hintDescStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	emptyStateStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted).
			Padding(2, 4)
)

// Search bar
var (
	searchBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorBgSurface).
			Padding(0, 1)

	searchCursorStyle = lipgloss.NewStyle().
				Background(colorBlue).
				Foreground(colorBg)
)
