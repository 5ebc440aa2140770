package util

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Terminal colours
const (
	ColorReset  = "\033[0m"
	ColorBold   = "\033[1m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
	ColorGray   = "\033[90m"
)

// Terminal control sequences
const (
	EnterAltScreen    = "\033[?1049h"
	ExitAltScreen     = "\033[?1049l"
	ClearScreen       = "\033[2J"
	ClearLine         = "\033[2K"
	ClearToEnd        = "\033[0J"
	ClearScrollback   = "\033[3J"
	ResetScrollRegion = "\033[r"
	MoveCursorHome    = "\033[H"
	HideCursor        = "\033[?25l"
	ShowCursor        = "\033[?25h"
)

// GetDisplayWidth returns the terminal cell width of text
func GetDisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// Colorize wraps text in a colour and resets afterwards
func Colorize(color, text string) string {
	return color + text + ColorReset
}

// FormatTitle renders a section title (cyan, bold)
func FormatTitle(title string) string {
	return fmt.Sprintf("%s%s%s%s", ColorBold, ColorCyan, title, ColorReset)
}

// Separator returns a horizontal rule of the given width
func Separator(width int) string {
	if width < 1 {
		width = 1
	}
	return Colorize(ColorGray, strings.Repeat("─", width))
}

// CenterText centres text within width cells, truncating when it does not fit
func CenterText(text string, width int) string {
	w := runewidth.StringWidth(text)
	if w >= width {
		return runewidth.Truncate(text, width, "")
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-w-left)
}

// AlignRight pads text on the left to width cells
func AlignRight(text string, width int) string {
	w := runewidth.StringWidth(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", width-w) + text
}
