package countdown

import (
	"sync"
	"time"

	"github.com/penwyp/go-countdown/internal/core/constants"
	"github.com/penwyp/go-countdown/internal/util"
)

// LogBook receives the start log entries
type LogBook interface {
	Append(entry string) error
	Entries() []string
}

// Alert is triggered once per completion
type Alert interface {
	Trigger()
}

// Snapshot is a consistent copy of the controller for rendering
type Snapshot struct {
	State State
	Logs  []string
}

// Controller owns the countdown state and its side effects.
// All methods are safe for concurrent use.
type Controller struct {
	mu      sync.Mutex
	state   State
	logs    LogBook
	alert   Alert
	now     func() time.Time
	changes chan struct{}
}

// Option configures a Controller
type Option func(*Controller)

// WithClock overrides the time source used for log timestamps
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// WithState seeds the controller, the target is clamped
func WithState(s State) Option {
	return func(c *Controller) {
		s.Target = ClampTarget(s.Target)
		if s.Elapsed < 0 {
			s.Elapsed = 0
		}
		c.state = s
	}
}

// NewController creates a controller in its default state
func NewController(logs LogBook, alert Alert, opts ...Option) *Controller {
	c := &Controller{
		state:   DefaultState(),
		logs:    logs,
		alert:   alert,
		now:     util.GetTimeProvider().Now,
		changes: make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Changes signals whenever running, target or loop change.
// Signals are coalesced, a pending one is never duplicated.
func (c *Controller) Changes() <-chan struct{} {
	return c.changes
}

func (c *Controller) notify() {
	select {
	case c.changes <- struct{}{}:
	default:
	}
}

// State returns a copy of the current state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Snapshot returns the state together with the start log
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	s := c.state
	c.mu.Unlock()

	var logs []string
	if c.logs != nil {
		logs = c.logs.Entries()
	}
	return Snapshot{State: s, Logs: logs}
}

// ToggleRunning starts or pauses the countdown and reports whether it is now running.
// Starting appends one entry to the log book.
func (c *Controller) ToggleRunning() bool {
	c.mu.Lock()
	c.state.Running = !c.state.Running
	running := c.state.Running
	c.mu.Unlock()

	if running {
		c.recordStart()
	}
	util.LogDebugf("Countdown toggled, running=%v", running)
	c.notify()
	return running
}

func (c *Controller) recordStart() {
	if c.logs == nil {
		return
	}
	entry := constants.LogStartedPrefix + c.now().Format(constants.LogTimeLayout)
	if err := c.logs.Append(entry); err != nil {
		util.LogWarnf("Failed to persist start log: %v", err)
	}
}

// Reset zeroes the elapsed time and stops the countdown
func (c *Controller) Reset() {
	c.mu.Lock()
	c.state.Elapsed = 0
	c.state.Running = false
	c.mu.Unlock()

	util.LogDebug("Countdown reset")
	c.notify()
}

// ToggleLoop flips loop mode, it applies at the next completion
func (c *Controller) ToggleLoop() bool {
	c.mu.Lock()
	c.state.Loop = !c.state.Loop
	loop := c.state.Loop
	c.mu.Unlock()

	c.notify()
	return loop
}

// SetTargetSeconds applies a user-entered target, see ParseTargetInput
func (c *Controller) SetTargetSeconds(input string) int {
	return c.SetTarget(ParseTargetInput(input))
}

// SetTarget sets the target, clamped to at least one second
func (c *Controller) SetTarget(n int) int {
	n = ClampTarget(n)

	c.mu.Lock()
	c.state.Target = n
	c.mu.Unlock()

	c.notify()
	return n
}

// AdjustTarget moves the target by delta seconds
func (c *Controller) AdjustTarget(delta int) int {
	c.mu.Lock()
	n := ClampTarget(addSeconds(c.state.Target, delta))
	c.state.Target = n
	c.mu.Unlock()

	c.notify()
	return n
}

// Tick advances the owned state by one second and fires the alert on completion
func (c *Controller) Tick() State {
	c.mu.Lock()
	wasRunning := c.state.Running
	next, cue := Tick(c.state)
	c.state = next
	c.mu.Unlock()

	if cue {
		util.LogInfof("Countdown reached target %ds (loop=%v)", next.Target, next.Loop)
		if c.alert != nil {
			c.alert.Trigger()
		}
	}
	if wasRunning && !next.Running {
		c.notify()
	}
	return next
}
