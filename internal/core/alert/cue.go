package alert

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"

	"github.com/penwyp/go-countdown/internal/util"
)

// BellCue rings the terminal bell
type BellCue struct {
	w io.Writer
}

func NewBellCue(w io.Writer) *BellCue {
	if w == nil {
		w = os.Stdout
	}
	return &BellCue{w: w}
}

func (b *BellCue) Play() error {
	_, err := io.WriteString(b.w, "\a")
	return err
}

// Stop is a no-op, the bell cannot be interrupted
func (b *BellCue) Stop() error {
	return nil
}

// CommandCue plays a sound file through an external player process
type CommandCue struct {
	player string
	args   []string
	file   string

	mu  sync.Mutex
	cmd *exec.Cmd
}

// NewCommandCue creates a cue running `player args... file`
func NewCommandCue(player string, args []string, file string) *CommandCue {
	return &CommandCue{player: player, args: args, file: file}
}

// Play starts the player, restarting it when it is already running
func (c *CommandCue) Play() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.killLocked()

	argv := append(append([]string{}, c.args...), c.file)
	cmd := exec.Command(c.player, argv...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", c.player, err)
	}
	c.cmd = cmd
	util.LogDebugf("Started alert player %s (pid %d)", c.player, cmd.Process.Pid)

	go func() {
		_ = cmd.Wait()
		c.mu.Lock()
		if c.cmd == cmd {
			c.cmd = nil
		}
		c.mu.Unlock()
	}()
	return nil
}

// Stop kills the player if it is still running
func (c *CommandCue) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.killLocked()
	return nil
}

func (c *CommandCue) killLocked() {
	if c.cmd == nil || c.cmd.Process == nil {
		return
	}
	if err := c.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		util.LogDebugf("Failed to kill alert player: %v", err)
	}
	c.cmd = nil
}

// MultiCue fans out to several cues
type MultiCue []Cue

func (m MultiCue) Play() error {
	var errs []error
	for _, cue := range m {
		if err := cue.Play(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m MultiCue) Stop() error {
	var errs []error
	for _, cue := range m {
		if err := cue.Stop(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// SilentCue does nothing
type SilentCue struct{}

func (SilentCue) Play() error { return nil }
func (SilentCue) Stop() error { return nil }
