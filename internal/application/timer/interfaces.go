package timer

import (
	"github.com/penwyp/go-countdown/internal/core/model"
	"github.com/penwyp/go-countdown/internal/presentation/interaction"
)

// DisplayController handles terminal display operations
type DisplayController interface {
	// EnterAlternateScreen switches to alternate terminal screen
	EnterAlternateScreen()
	// ExitAlternateScreen returns to normal terminal screen
	ExitAlternateScreen()
	// Invalidate forces a full repaint on the next render
	Invalidate()
	// Render draws one frame
	Render(screen model.Screen, param model.LayoutParam)
}

// InputHandler processes keyboard and other input events
type InputHandler interface {
	// Events returns a channel of keyboard events
	Events() <-chan interaction.KeyEvent
	// Close cleans up input handler resources
	Close() error
}
