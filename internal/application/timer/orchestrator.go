package timer

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/penwyp/go-countdown/internal/core/alert"
	"github.com/penwyp/go-countdown/internal/core/clock"
	"github.com/penwyp/go-countdown/internal/core/countdown"
	"github.com/penwyp/go-countdown/internal/core/model"
	"github.com/penwyp/go-countdown/internal/data/store"
	"github.com/penwyp/go-countdown/internal/presentation/display"
	"github.com/penwyp/go-countdown/internal/presentation/interaction"
	"github.com/penwyp/go-countdown/internal/presentation/layout"
	"github.com/penwyp/go-countdown/internal/util"
)

const maxTargetInputLen = 12

// Orchestrator coordinates all components of the interactive countdown
type Orchestrator struct {
	config *TimerConfig

	// Core components
	kv         store.KV
	logs       *store.LogStore
	cue        alert.Cue
	alerter    *alert.Alerter
	clock      *clock.Clock
	controller *countdown.Controller

	// UI components
	stateManager *StateManager
	display      DisplayController
	input        InputHandler
	terminalSize func() (int, int)
	alertLabel   string
}

// Option customises an Orchestrator
type Option func(*Orchestrator)

// WithKV replaces the file-backed storage
func WithKV(kv store.KV) Option {
	return func(o *Orchestrator) { o.kv = kv }
}

// WithCue replaces the cue built from the alert settings
func WithCue(cue alert.Cue) Option {
	return func(o *Orchestrator) { o.cue = cue }
}

// WithDisplay replaces the terminal display
func WithDisplay(d DisplayController) Option {
	return func(o *Orchestrator) { o.display = d }
}

// WithInput replaces the raw-mode keyboard reader
func WithInput(in InputHandler) Option {
	return func(o *Orchestrator) { o.input = in }
}

// WithTerminalSize replaces the terminal size lookup
func WithTerminalSize(fn func() (int, int)) Option {
	return func(o *Orchestrator) { o.terminalSize = fn }
}

// NewOrchestrator creates a new Orchestrator instance
func NewOrchestrator(config *TimerConfig, opts ...Option) (*Orchestrator, error) {
	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	o := &Orchestrator{
		config:       config,
		stateManager: NewStateManager(),
	}
	for _, opt := range opts {
		opt(o)
	}

	// Initialize global time provider with configured timezone
	if err := util.InitializeTimeProvider(config.Timezone); err != nil {
		return nil, fmt.Errorf("failed to initialize timezone: %w", err)
	}

	if o.kv == nil {
		fileKV, err := store.NewFileKV(config.StorageFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open storage: %w", err)
		}
		o.kv = fileKV
	}
	o.logs = store.NewLogStore(o.kv)
	if err := o.logs.Load(); err != nil {
		return nil, err
	}

	if o.cue == nil {
		o.cue = alert.NewCue(alert.Options{
			SoundFile: config.SoundFile,
			Player:    config.Player,
			Bell:      !config.NoBell,
			Terminal:  os.Stdout,
		})
	}
	o.alerter = alert.NewAlerter(o.cue)
	o.alertLabel = describeAlert(config)

	clk, err := clock.New(util.GetTimeProvider(), config.TimeFormat)
	if err != nil {
		return nil, err
	}
	o.clock = clk

	o.controller = countdown.NewController(o.logs, o.alerter, countdown.WithState(countdown.State{
		Target: config.TargetSeconds,
		Loop:   config.Loop,
	}))

	if o.display == nil {
		o.display = display.NewTerminalDisplay(os.Stdout)
	}
	if o.terminalSize == nil {
		o.terminalSize = (&layout.Sizer{}).TerminalSize
	}

	util.LogInfo("Countdown initialized",
		util.F("target", config.TargetSeconds),
		util.F("loop", config.Loop),
		util.F("storage", config.StorageFile),
		util.F("entries", o.logs.Len()))
	return o, nil
}

// Controller exposes the countdown controller
func (o *Orchestrator) Controller() *countdown.Controller {
	return o.controller
}

// Run starts the orchestrator main loop and blocks until quit or ctx is done
func (o *Orchestrator) Run(ctx context.Context) error {
	util.LogInfo("Starting countdown timer...")

	// Ensure cleanup on exit
	defer o.Close()

	if o.input == nil {
		keyboard, err := interaction.NewKeyboardReader(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to initialize keyboard: %w", err)
		}
		o.input = keyboard
	}
	defer o.input.Close()

	// Enter alternate screen mode
	o.display.EnterAlternateScreen()
	defer o.display.ExitAlternateScreen()

	resize := make(chan os.Signal, 1)
	notifyResize(resize)
	defer signal.Stop(resize)

	countdownTicker := time.NewTicker(o.config.TickInterval)
	defer countdownTicker.Stop()

	clockTicker := time.NewTicker(o.config.ClockRefreshInterval)
	defer clockTicker.Stop()

	o.updateDisplay()

	for {
		select {
		case <-ctx.Done():
			util.LogInfo("Shutting down countdown timer...")
			return nil

		case <-o.controller.Changes():
			// Running, target or loop changed: re-arm so the next tick is a full interval away
			countdownTicker.Reset(o.config.TickInterval)
			o.updateDisplay()

		case <-countdownTicker.C:
			if o.controller.State().Running {
				o.controller.Tick()
				o.updateDisplay()
			}

		case <-clockTicker.C:
			o.updateDisplay()

		case <-resize:
			o.display.Invalidate()
			o.updateDisplay()

		case keyEvent, ok := <-o.input.Events():
			if !ok {
				return nil
			}
			if o.handleKeyboard(keyEvent) {
				return nil // Exit requested
			}
			o.updateDisplay()
		}
	}
}

// Close stops any sounding alert
func (o *Orchestrator) Close() {
	if err := o.alerter.Close(); err != nil {
		util.LogWarnf("Failed to stop alert: %v", err)
	}
}

// buildScreen snapshots everything one frame needs
func (o *Orchestrator) buildScreen() model.Screen {
	snap := o.controller.Snapshot()
	return model.Screen{
		Clock:       o.clock.Now(),
		Countdown:   snap.State,
		Logs:        snap.Logs,
		Interaction: o.stateManager.GetInteractionState(),
		AlertLabel:  o.alertLabel,
	}
}

// updateDisplay updates the terminal display
func (o *Orchestrator) updateDisplay() {
	width, height := o.terminalSize()
	o.display.Render(o.buildScreen(), model.LayoutParam{Width: width, Height: height})
}

// handleKeyboard handles keyboard events and reports whether to quit
func (o *Orchestrator) handleKeyboard(event interaction.KeyEvent) bool {
	if event.Type == interaction.KeyCtrlC {
		return true
	}

	state := o.stateManager.GetInteractionState()
	if state.EditingTarget {
		o.handleTargetEdit(event)
		return false
	}

	switch event.Type {
	case interaction.KeyChar:
		switch event.Key {
		case 'q', 'Q':
			return true
		case ' ', 's', 'S':
			running := o.controller.ToggleRunning()
			o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
				if running {
					s.LogScroll = 0 // Show the entry just appended
					s.StatusMessage = "Countdown started"
				} else {
					s.StatusMessage = "Countdown paused"
				}
			})
		case 'r', 'R':
			o.controller.Reset()
			o.setStatus("Countdown reset")
		case 'l', 'L':
			if o.controller.ToggleLoop() {
				o.setStatus("Loop mode on")
			} else {
				o.setStatus("Loop mode off")
			}
		case '+', '=':
			o.setStatus(targetStatus(o.controller.AdjustTarget(1)))
		case '-', '_':
			o.setStatus(targetStatus(o.controller.AdjustTarget(-1)))
		case 't', 'T':
			o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
				s.EditingTarget = true
				s.TargetInput = ""
				s.ShowHelp = false
				s.StatusMessage = ""
			})
		case 'h', 'H', '?':
			o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
				s.ShowHelp = !s.ShowHelp
			})
		case 'v', 'V':
			o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
				s.LayoutStyle = model.NextLayout(s.LayoutStyle)
			})
		}
	case interaction.KeyUp:
		maxScroll := len(o.controller.Snapshot().Logs) - 1
		o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
			if s.LogScroll < maxScroll {
				s.LogScroll++
			}
		})
	case interaction.KeyDown:
		o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
			if s.LogScroll > 0 {
				s.LogScroll--
			}
		})
	case interaction.KeyEscape:
		// If help is shown, close it; otherwise quit
		if state.ShowHelp {
			o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
				s.ShowHelp = false
			})
		} else {
			return true
		}
	}

	return false
}

// handleTargetEdit collects the typed target until Enter or Esc
func (o *Orchestrator) handleTargetEdit(event interaction.KeyEvent) {
	switch event.Type {
	case interaction.KeyEnter:
		input := o.stateManager.GetInteractionState().TargetInput
		target := o.controller.SetTargetSeconds(input)
		o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
			s.EditingTarget = false
			s.TargetInput = ""
			s.StatusMessage = targetStatus(target)
		})
	case interaction.KeyEscape:
		o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
			s.EditingTarget = false
			s.TargetInput = ""
			s.StatusMessage = "Target unchanged"
		})
	case interaction.KeyBackspace:
		o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
			if r := []rune(s.TargetInput); len(r) > 0 {
				s.TargetInput = string(r[:len(r)-1])
			}
		})
	case interaction.KeyChar:
		o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
			if len(s.TargetInput) < maxTargetInputLen {
				s.TargetInput += string(event.Key)
			}
		})
	}
}

func (o *Orchestrator) setStatus(msg string) {
	o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
		s.StatusMessage = msg
	})
}

func targetStatus(seconds int) string {
	return "Target set to " + util.FormatDuration(time.Duration(seconds)*time.Second)
}

// describeAlert names the configured cues for the status panel
func describeAlert(config *TimerConfig) string {
	var parts []string
	if config.SoundFile != "" {
		parts = append(parts, filepath.Base(config.SoundFile))
	}
	if !config.NoBell {
		parts = append(parts, "bell")
	}
	if len(parts) == 0 {
		return "silent"
	}
	return strings.Join(parts, " + ")
}
