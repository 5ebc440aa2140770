package display

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/penwyp/go-countdown/internal/core/model"
	"github.com/penwyp/go-countdown/internal/presentation/layout"
	"github.com/penwyp/go-countdown/internal/util"
)

// Raw mode turns off output post-processing, so every line ends in an explicit CR LF
const lineBreak = "\r\n"

type TerminalDisplay struct {
	mu                sync.Mutex
	out               io.Writer
	inAlternateScreen bool
	lastLayoutStyle   int
	isFirstRender     bool // Track if this is the first render
}

// NewTerminalDisplay creates a display writing to out, or stdout when out is nil
func NewTerminalDisplay(out io.Writer) *TerminalDisplay {
	if out == nil {
		out = os.Stdout
	}
	return &TerminalDisplay{
		out:           out,
		isFirstRender: true,
	}
}

// EnterAlternateScreen switches to alternate screen buffer
func (td *TerminalDisplay) EnterAlternateScreen() {
	td.mu.Lock()
	defer td.mu.Unlock()

	if td.inAlternateScreen {
		return
	}
	td.write(util.EnterAltScreen +
		util.ClearScreen +
		util.ClearScrollback +
		util.ResetScrollRegion +
		util.HideCursor +
		util.MoveCursorHome)
	td.inAlternateScreen = true
	td.isFirstRender = true
}

// ExitAlternateScreen returns to normal screen buffer
func (td *TerminalDisplay) ExitAlternateScreen() {
	td.mu.Lock()
	defer td.mu.Unlock()

	if !td.inAlternateScreen {
		return
	}
	td.write(util.ClearScreen + util.MoveCursorHome + util.ShowCursor + util.ExitAltScreen)
	td.inAlternateScreen = false
}

// Invalidate forces the next render to clear the whole screen, e.g. after a resize
func (td *TerminalDisplay) Invalidate() {
	td.mu.Lock()
	td.isFirstRender = true
	td.mu.Unlock()
}

// Render draws one frame. Lines are overwritten in place so the screen does not flicker.
func (td *TerminalDisplay) Render(screen model.Screen, param model.LayoutParam) {
	td.mu.Lock()
	defer td.mu.Unlock()

	var buf bytes.Buffer

	// Always clear screen on first render or layout change
	if td.isFirstRender || td.lastLayoutStyle != screen.Interaction.LayoutStyle {
		buf.WriteString(util.ClearScreen)
		td.lastLayoutStyle = screen.Interaction.LayoutStyle
		td.isFirstRender = false
	}
	buf.WriteString(util.MoveCursorHome)

	strategy := layout.GetLayoutStrategy(screen.Interaction.LayoutStyle)
	for _, line := range strategy.Render(screen, param) {
		buf.WriteString(util.ClearLine)
		buf.WriteString(line)
		buf.WriteString(util.ColorReset)
		buf.WriteString(lineBreak)
	}
	buf.WriteString(util.ClearToEnd)

	td.write(buf.String())
}

func (td *TerminalDisplay) write(s string) {
	if _, err := io.WriteString(td.out, s); err != nil {
		util.LogDebugf("terminal write failed: %v", err)
	}
}
