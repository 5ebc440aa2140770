package e2e

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/creack/pty"
)

// Key bytes as a terminal in raw mode delivers them
const (
	KeyCtrlC  byte = 3
	KeyEnter  byte = 13
	KeyEscape byte = 27
	KeySpace  byte = ' '
)

// TUITestSession drives a command attached to a pseudo terminal
type TUITestSession struct {
	cmd        *exec.Cmd
	ptmx       *os.File
	output     *bytes.Buffer
	outputLock sync.RWMutex
	cancel     context.CancelFunc
	exited     chan struct{}
	waitErr    error
}

// TUITestConfig contains configuration for TUI testing
type TUITestConfig struct {
	// Command and arguments to run
	Command string
	Args    []string

	// Environment variables added to the current environment
	Env []string

	// Terminal size
	Rows uint16
	Cols uint16

	// Timeout for the entire test
	Timeout time.Duration
}

// NewTUITestSession starts the command on a new PTY
func NewTUITestSession(config *TUITestConfig) (*TUITestSession, error) {
	if config.Timeout == 0 {
		config.Timeout = 20 * time.Second
	}
	if config.Rows == 0 {
		config.Rows = 30
	}
	if config.Cols == 0 {
		config.Cols = 100
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.Timeout)

	cmd := exec.CommandContext(ctx, config.Command, config.Args...)
	cmd.Env = append(os.Environ(), config.Env...)

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: config.Rows,
		Cols: config.Cols,
	})
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to start PTY: %w", err)
	}

	s := &TUITestSession{
		cmd:    cmd,
		ptmx:   ptmx,
		output: &bytes.Buffer{},
		cancel: cancel,
		exited: make(chan struct{}),
	}

	go s.captureOutput()
	go func() {
		s.waitErr = cmd.Wait()
		close(s.exited)
	}()

	return s, nil
}

// captureOutput reads from the PTY until it is closed
func (s *TUITestSession) captureOutput() {
	buf := make([]byte, 4096)
	for {
		n, err := s.ptmx.Read(buf)
		if n > 0 {
			s.outputLock.Lock()
			s.output.Write(buf[:n])
			s.outputLock.Unlock()
		}
		if err != nil {
			return
		}
	}
}

// SendKey sends a key press to the TUI
func (s *TUITestSession) SendKey(key byte) error {
	return s.SendString(string([]byte{key}))
}

// SendString types str into the TUI
func (s *TUITestSession) SendString(str string) error {
	if !s.IsRunning() {
		return errors.New("session not running")
	}
	_, err := io.WriteString(s.ptmx, str)
	return err
}

// GetOutput returns everything the command has written so far
func (s *TUITestSession) GetOutput() string {
	s.outputLock.RLock()
	defer s.outputLock.RUnlock()
	return s.output.String()
}

// Screen returns the most recently drawn frame without escape codes
func (s *TUITestSession) Screen() string {
	return LastFrame(s.GetOutput())
}

// WaitForScreen polls until the current frame contains text
func (s *TUITestSession) WaitForScreen(text string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(s.Screen(), text) {
			return nil
		}
		time.Sleep(50 * time.Millisecond)
	}
	return fmt.Errorf("timeout waiting for %q, screen:\n%s", text, s.Screen())
}

// WaitForText polls until text appears anywhere in the output
func (s *TUITestSession) WaitForText(text string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(StripANSI(s.GetOutput()), text) {
			return nil
		}
		time.Sleep(50 * time.Millisecond)
	}
	return fmt.Errorf("timeout waiting for text: %s", text)
}

// IsRunning reports whether the command is still alive
func (s *TUITestSession) IsRunning() bool {
	select {
	case <-s.exited:
		return false
	default:
		return true
	}
}

// WaitForExit waits for the command to finish and returns its error
func (s *TUITestSession) WaitForExit(timeout time.Duration) error {
	select {
	case <-s.exited:
		return s.waitErr
	case <-time.After(timeout):
		return fmt.Errorf("command still running after %s", timeout)
	}
}

// Stop quits with 'q' and force kills if the command does not exit
func (s *TUITestSession) Stop() error {
	defer s.cancel()
	defer s.ptmx.Close()

	if s.IsRunning() {
		_ = s.SendKey('q')
	}
	if err := s.WaitForExit(2 * time.Second); err == nil {
		return nil
	}
	if s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
	<-s.exited
	return s.waitErr
}
