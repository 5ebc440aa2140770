package timer

import (
	"sync"

	"github.com/penwyp/go-countdown/internal/core/model"
)

// StateManager holds the UI interaction state in a thread-safe manner
type StateManager struct {
	mu               sync.RWMutex
	interactionState model.InteractionState
}

// NewStateManager creates a new StateManager instance
func NewStateManager() *StateManager {
	return &StateManager{}
}

// GetInteractionState returns a copy of the current interaction state
func (sm *StateManager) GetInteractionState() model.InteractionState {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.interactionState
}

// UpdateInteractionState updates specific fields of interaction state
func (sm *StateManager) UpdateInteractionState(updateFunc func(*model.InteractionState)) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	updateFunc(&sm.interactionState)
}
