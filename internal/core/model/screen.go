package model

import (
	"github.com/penwyp/go-countdown/internal/core/clock"
	"github.com/penwyp/go-countdown/internal/core/countdown"
)

// Layout styles, cycled with the 'v' key
const (
	LayoutFull = iota
	LayoutMinimal
	layoutCount
)

// NextLayout returns the style after style
func NextLayout(style int) int {
	return (style + 1) % layoutCount
}

// InteractionState represents the current UI interaction state
type InteractionState struct {
	ShowHelp      bool
	EditingTarget bool
	TargetInput   string // Digits typed while editing the target
	LogScroll     int    // Lines scrolled up from the newest log entry
	LayoutStyle   int    // LayoutFull or LayoutMinimal
	StatusMessage string
}

// Screen is everything a layout needs to draw one frame
type Screen struct {
	Clock       clock.Display
	Countdown   countdown.State
	Logs        []string
	Interaction InteractionState
	AlertLabel  string // Describes the configured cue, e.g. "bell" or "alarm.mp3"
}

// LayoutParam carries the terminal geometry
type LayoutParam struct {
	Width  int
	Height int
}
