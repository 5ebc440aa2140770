package interaction

import (
	"errors"
	"os"
	"sync"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when stdin is not attached to a terminal
var ErrNotTerminal = errors.New("stdin is not a terminal")

// KeyboardReader handles keyboard input in raw mode
type KeyboardReader struct {
	in       *os.File
	oldState *term.State
	input    chan KeyEvent
	stop     chan struct{}
	once     sync.Once
}

// KeyEvent represents a keyboard event
type KeyEvent struct {
	Key  rune
	Type KeyType
}

// KeyType represents the type of key pressed
type KeyType int

const (
	KeyChar KeyType = iota
	KeyEscape
	KeyEnter
	KeyBackspace
	KeyUp
	KeyDown
	KeyCtrlC
)

const (
	byteCtrlC     = 3
	byteBackspace = 8
	byteLF        = 10
	byteCR        = 13
	byteEscape    = 27
	byteDelete    = 127
)

// NewKeyboardReader puts in into raw mode and starts reading key events from it
func NewKeyboardReader(in *os.File) (*KeyboardReader, error) {
	if !term.IsTerminal(int(in.Fd())) {
		return nil, ErrNotTerminal
	}

	kr := &KeyboardReader{
		in:    in,
		input: make(chan KeyEvent, 10),
		stop:  make(chan struct{}),
	}

	oldState, err := term.MakeRaw(int(in.Fd()))
	if err != nil {
		return nil, err
	}
	kr.oldState = oldState

	go kr.readInput()

	return kr, nil
}

// readInput reads keyboard input in a goroutine
func (kr *KeyboardReader) readInput() {
	buf := make([]byte, 16)

	for {
		select {
		case <-kr.stop:
			return
		default:
		}

		n, err := kr.in.Read(buf)
		if err != nil || n == 0 {
			continue
		}

		for _, event := range kr.parseInput(buf[:n]) {
			select {
			case kr.input <- event:
			case <-kr.stop:
				return
			}
		}
	}
}

// parseInput splits one read into key events. A single read may carry
// several keys when the user types quickly or pastes.
func (kr *KeyboardReader) parseInput(buf []byte) []KeyEvent {
	var events []KeyEvent

	for i := 0; i < len(buf); i++ {
		b := buf[i]
		switch b {
		case byteCtrlC:
			events = append(events, KeyEvent{Key: byteCtrlC, Type: KeyCtrlC})
		case byteCR, byteLF:
			events = append(events, KeyEvent{Key: '\n', Type: KeyEnter})
		case byteBackspace, byteDelete:
			events = append(events, KeyEvent{Key: rune(b), Type: KeyBackspace})
		case byteEscape:
			if i+2 < len(buf) && buf[i+1] == '[' {
				switch buf[i+2] {
				case 'A':
					events = append(events, KeyEvent{Type: KeyUp})
				case 'B':
					events = append(events, KeyEvent{Type: KeyDown})
				}
				// Other CSI sequences (right/left, function keys) are ignored
				i += 2
				continue
			}
			events = append(events, KeyEvent{Key: byteEscape, Type: KeyEscape})
		default:
			if b < 32 {
				continue
			}
			events = append(events, KeyEvent{Key: rune(b), Type: KeyChar})
		}
	}

	return events
}

// Events returns the keyboard event channel
func (kr *KeyboardReader) Events() <-chan KeyEvent {
	return kr.input
}

// Close stops the keyboard reader and restores terminal
func (kr *KeyboardReader) Close() error {
	var err error
	kr.once.Do(func() {
		close(kr.stop)
		if kr.oldState != nil {
			err = term.Restore(int(kr.in.Fd()), kr.oldState)
		}
	})
	return err
}
