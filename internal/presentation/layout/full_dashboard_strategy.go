package layout

import (
	"fmt"

	"github.com/penwyp/go-countdown/internal/core/model"
	"github.com/penwyp/go-countdown/internal/util"
)

const (
	indent = "  "
	// Rows used by everything except the log panel
	fullFixedRows  = 17
	minLogRows     = 3
	progressMargin = 10
)

var helpLines = []string{
	"space / s   start or pause the countdown",
	"r           reset elapsed time to zero",
	"l           toggle loop mode",
	"+ / -       adjust the target by one second",
	"t           type a new target, Enter applies",
	"↑ / ↓       scroll the run log",
	"v           switch layout",
	"h           show or hide this help",
	"q / Esc     quit",
}

// FullLayoutStrategy implements the full dashboard layout
type FullLayoutStrategy struct {
	BaseStrategy
}

func (s *FullLayoutStrategy) GetName() string {
	return "Full Dashboard"
}

func (s *FullLayoutStrategy) Render(screen model.Screen, param model.LayoutParam) []string {
	sizer := s.GetSizer()
	width := sizer.ContentWidth(param.Width)
	state := screen.Countdown

	lines := []string{
		util.Colorize(util.ColorGray, util.AlignRight(screen.Clock.String(), width)),
		util.FormatTitle("Countdown Timer"),
		util.Separator(width),
		"",
	}

	// The big readout is centred on its plain text before colouring
	readout := util.CenterText(util.FormatClock(state.Elapsed), width)
	lines = append(lines,
		util.ColorBold+util.Colorize(s.PhaseColor(state), readout),
		util.CenterText(fmt.Sprintf("%s %d/%ds",
			s.ProgressBar(state, width-progressMargin*2), state.Elapsed, state.Target), width),
		"",
	)

	logRows := param.Height - fullFixedRows
	if logRows < minLogRows {
		logRows = minLogRows
	}

	if screen.Interaction.ShowHelp {
		lines = append(lines, util.FormatTitle("Keys"))
		for _, h := range helpLines {
			lines = append(lines, indent+h)
		}
	} else {
		alert := screen.AlertLabel
		if alert == "" {
			alert = "none"
		}
		lines = append(lines,
			fmt.Sprintf("%s%s  [space] %s  [r] Reset", indent, s.StatusLabel(state), s.ToggleHint(state)),
			indent+s.LoopCheckbox(state.Loop)+"  "+util.Colorize(util.ColorGray, "(l)"),
			indent+s.TargetLine(screen),
			indent+"Alert: "+alert,
			"",
		)
		lines = append(lines, s.renderLogPanel(screen, width, logRows)...)
	}

	lines = append(lines, util.Separator(width))
	lines = append(lines, util.Colorize(util.ColorGray, "space start/pause · r reset · l loop · t target · h help · q quit"))
	if msg := screen.Interaction.StatusMessage; msg != "" {
		lines = append(lines, util.Colorize(util.ColorYellow, sizer.Truncate(msg, width)))
	}
	return lines
}

func (s *FullLayoutStrategy) renderLogPanel(screen model.Screen, width, rows int) []string {
	sizer := s.GetSizer()
	visible, scroll := s.LogWindow(screen.Logs, screen.Interaction.LogScroll, rows)

	title := fmt.Sprintf("Run log (%d)", len(screen.Logs))
	if scroll > 0 {
		title += util.Colorize(util.ColorGray, fmt.Sprintf("  ↑%d", scroll))
	}
	lines := []string{util.Separator(width), util.FormatTitle(title)}

	if len(visible) == 0 {
		lines = append(lines, indent+util.Colorize(util.ColorGray, "No runs yet"))
		return lines
	}
	for _, entry := range visible {
		lines = append(lines, indent+sizer.Truncate(entry, width-len(indent)))
	}
	return lines
}
