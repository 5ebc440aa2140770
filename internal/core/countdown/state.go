package countdown

import "github.com/penwyp/go-countdown/internal/core/constants"

// Phase is the coarse state of the countdown
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
)

func (p Phase) String() string {
	if p == PhaseRunning {
		return "running"
	}
	return "idle"
}

// State holds everything the countdown tick needs.
// Elapsed never stays above Target for longer than one tick.
type State struct {
	Elapsed int  `json:"elapsed"`
	Target  int  `json:"target"`
	Running bool `json:"running"`
	Loop    bool `json:"loop"`
}

// DefaultState returns the state a fresh controller starts with
func DefaultState() State {
	return State{
		Elapsed: 0,
		Target:  constants.DefaultTargetSeconds,
	}
}

// Phase reports whether the countdown is advancing
func (s State) Phase() Phase {
	if s.Running {
		return PhaseRunning
	}
	return PhaseIdle
}

// Remaining returns the seconds left until completion
func (s State) Remaining() int {
	if s.Elapsed >= s.Target {
		return 0
	}
	return s.Target - s.Elapsed
}

// Tick advances the countdown by one second.
// The returned bool reports whether the completion cue must fire.
func Tick(s State) (State, bool) {
	if !s.Running {
		return s, false
	}

	if s.Elapsed < s.Target {
		s.Elapsed++
		return s, false
	}

	if s.Loop {
		s.Elapsed = 0
	} else {
		s.Running = false
		s.Elapsed = s.Target
	}
	return s, true
}
