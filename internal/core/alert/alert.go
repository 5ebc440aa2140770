package alert

import (
	"sync"
	"time"

	"github.com/penwyp/go-countdown/internal/core/constants"
	"github.com/penwyp/go-countdown/internal/util"
)

// Cue is an audible signal that can be started and stopped.
// Stop also rewinds, so the next Play starts from the beginning.
type Cue interface {
	Play() error
	Stop() error
}

// scheduleFunc runs f after d and returns a cancel function
type scheduleFunc func(d time.Duration, f func()) (cancel func() bool)

func afterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

// Alerter plays a cue and stops it a fixed delay later, whatever the clip length
type Alerter struct {
	cue       Cue
	stopAfter time.Duration
	schedule  scheduleFunc

	mu         sync.Mutex
	generation uint64
	cancel     func() bool
}

// NewAlerter creates an alerter stopping the cue after constants.CueStopAfter
func NewAlerter(cue Cue) *Alerter {
	return &Alerter{
		cue:       cue,
		stopAfter: constants.CueStopAfter,
		schedule:  afterFunc,
	}
}

// Trigger plays the cue from the start.
// A trigger while a previous stop is pending restarts the stop window.
func (a *Alerter) Trigger() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}

	if err := a.cue.Play(); err != nil {
		util.LogWarnf("Failed to play alert: %v", err)
	}

	a.generation++
	gen := a.generation
	a.cancel = a.schedule(a.stopAfter, func() {
		a.stopIfCurrent(gen)
	})
}

func (a *Alerter) stopIfCurrent(gen uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	// A newer trigger owns the cue now
	if gen != a.generation {
		return
	}
	a.cancel = nil
	if err := a.cue.Stop(); err != nil {
		util.LogWarnf("Failed to stop alert: %v", err)
	}
}

// pending reports whether a stop is scheduled
func (a *Alerter) pending() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cancel != nil
}

// Close cancels a pending stop and silences the cue immediately
func (a *Alerter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.generation++
	if a.cancel == nil {
		return nil
	}
	a.cancel()
	a.cancel = nil
	return a.cue.Stop()
}
