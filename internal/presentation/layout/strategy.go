package layout

import (
	"github.com/penwyp/go-countdown/internal/core/model"
)

// LayoutStrategy renders one frame of the countdown screen as terminal lines
type LayoutStrategy interface {
	Render(screen model.Screen, param model.LayoutParam) []string
	GetName() string
}

// GetLayoutStrategy returns the appropriate layout strategy based on the style
func GetLayoutStrategy(layoutStyle int) LayoutStrategy {
	strategies := map[int]LayoutStrategy{
		model.LayoutFull:    &FullLayoutStrategy{},
		model.LayoutMinimal: &MinimalLayoutStrategy{},
	}

	if strategy, exists := strategies[layoutStyle]; exists {
		return strategy
	}

	// Default to full dashboard if invalid style
	return &FullLayoutStrategy{}
}
