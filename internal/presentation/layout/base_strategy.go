package layout

import (
	"fmt"
	"strings"

	"github.com/penwyp/go-countdown/internal/core/countdown"
	"github.com/penwyp/go-countdown/internal/core/model"
	"github.com/penwyp/go-countdown/internal/util"
)

// BaseStrategy provides common functionality for all layout strategies
type BaseStrategy struct {
}

// GetSizer returns the shared sizer instance
func (b *BaseStrategy) GetSizer() *Sizer {
	return sharedSizer
}

// PhaseColor is red while the countdown runs and green otherwise
func (b *BaseStrategy) PhaseColor(state countdown.State) string {
	if state.Phase() == countdown.PhaseRunning {
		return util.ColorRed
	}
	return util.ColorGreen
}

// StatusLabel describes the countdown phase
func (b *BaseStrategy) StatusLabel(state countdown.State) string {
	color := b.PhaseColor(state)
	switch {
	case state.Running:
		return util.Colorize(color, "● RUNNING")
	case state.Elapsed == 0:
		return util.Colorize(color, "○ READY")
	case state.Elapsed >= state.Target:
		return util.Colorize(color, "✔ DONE")
	default:
		return util.Colorize(color, "‖ PAUSED")
	}
}

// ToggleHint names the action the space key performs next
func (b *BaseStrategy) ToggleHint(state countdown.State) string {
	if state.Running {
		return "Pause"
	}
	return "Start"
}

// LoopCheckbox renders the loop mode checkbox
func (b *BaseStrategy) LoopCheckbox(loop bool) string {
	if loop {
		return "[x] Loop mode"
	}
	return "[ ] Loop mode"
}

// TargetLine renders the target setting, with a cursor while it is being edited
func (b *BaseStrategy) TargetLine(screen model.Screen) string {
	in := screen.Interaction
	if in.EditingTarget {
		return fmt.Sprintf("Target seconds: %s%s  %s",
			util.Colorize(util.ColorYellow, in.TargetInput),
			util.Colorize(util.ColorYellow, "█"),
			util.Colorize(util.ColorGray, "(Enter apply, Esc cancel)"))
	}
	return fmt.Sprintf("Target seconds: %d  %s",
		screen.Countdown.Target,
		util.Colorize(util.ColorGray, "(t edit, +/- adjust)"))
}

// ProgressBar draws elapsed/target as a bar of width cells
func (b *BaseStrategy) ProgressBar(state countdown.State, width int) string {
	if width < 1 {
		return ""
	}
	filled := 0
	if state.Target > 0 {
		filled = state.Elapsed * width / state.Target
	}
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// LogWindow returns the slice of logs visible in a panel of height rows,
// scrolled up by scroll lines from the newest entry. The scroll value is
// clamped to the available range and returned.
func (b *BaseStrategy) LogWindow(logs []string, scroll, height int) ([]string, int) {
	if height <= 0 || len(logs) == 0 {
		return nil, 0
	}
	maxScroll := len(logs) - height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if scroll > maxScroll {
		scroll = maxScroll
	}
	if scroll < 0 {
		scroll = 0
	}
	end := len(logs) - scroll
	start := end - height
	if start < 0 {
		start = 0
	}
	return logs[start:end], scroll
}
