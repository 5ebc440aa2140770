//go:build !unix

package timer

import "os"

func notifyResize(chan<- os.Signal) {}
