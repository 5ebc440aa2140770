package layout

import (
	"fmt"

	"github.com/penwyp/go-countdown/internal/core/model"
	"github.com/penwyp/go-countdown/internal/util"
)

// MinimalLayoutStrategy implements the single-line dashboard layout
type MinimalLayoutStrategy struct {
	BaseStrategy
}

func (s *MinimalLayoutStrategy) GetName() string {
	return "Minimal Dashboard"
}

func (s *MinimalLayoutStrategy) Render(screen model.Screen, param model.LayoutParam) []string {
	state := screen.Countdown

	loop := "off"
	if state.Loop {
		loop = "on"
	}

	line := fmt.Sprintf("⏱ %s / %s | %s | loop %s | runs %d | %s",
		util.FormatClock(state.Elapsed),
		util.FormatClock(state.Target),
		s.StatusLabel(state),
		loop,
		len(screen.Logs),
		screen.Clock.String())

	lines := []string{line}
	if screen.Interaction.EditingTarget {
		lines = append(lines, s.TargetLine(screen))
	}
	if msg := screen.Interaction.StatusMessage; msg != "" {
		lines = append(lines, util.Colorize(util.ColorYellow, msg))
	}
	return lines
}
