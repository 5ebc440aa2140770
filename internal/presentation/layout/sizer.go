package layout

import (
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/penwyp/go-countdown/internal/util"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
	maxContentWide = 72
	minContentWide = 30
)

// Package-level singleton Sizer instance
var sharedSizer = &Sizer{}

type Sizer struct {
}

// displayWidth calculates the cell width of a string containing wide runes
func (i Sizer) displayWidth(s string) int {
	return util.GetDisplayWidth(s)
}

// PadString pads a string to a specific display width
func (i Sizer) PadString(s string, width int, leftAlign bool) string {
	actualWidth := i.displayWidth(s)
	if actualWidth >= width {
		return s
	}

	padding := strings.Repeat(" ", width-actualWidth)
	if leftAlign {
		return s + padding
	}
	return padding + s
}

// Truncate shortens s to width cells, marking the cut with an ellipsis
func (i Sizer) Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// TerminalSize returns the size of stdout, falling back to 80x24
func (i Sizer) TerminalSize() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return fallbackWidth, fallbackHeight
	}
	return w, h
}

// ContentWidth returns the drawable width for a terminal width
func (i Sizer) ContentWidth(termWidth int) int {
	width := termWidth - 4
	if width > maxContentWide {
		width = maxContentWide
	}
	if width < minContentWide {
		width = minContentWide
	}
	return width
}
