//go:build unix

package timer

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// notifyResize delivers terminal resize signals to ch
func notifyResize(ch chan<- os.Signal) {
	signal.Notify(ch, unix.SIGWINCH)
}
