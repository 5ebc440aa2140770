package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	assert.Equal(t, "RUNNING", StripANSI("\x1b[31mRUNNING\x1b[0m"))
	assert.Equal(t, "ab\n", StripANSI("\x1b[?25la\x1b[2Kb\r\n"))
}

func TestLastFrame(t *testing.T) {
	output := "\x1b[?1049h\x1b[2J\x1b[H00:01\r\n\x1b[H\x1b[2K00:02\r\nloop\r\n\x1b[0J"
	assert.Equal(t, "00:02\nloop\n", LastFrame(output))
	assert.Equal(t, []string{"00:02", "loop"}, FrameLines(LastFrame(output)))

	assert.Equal(t, "plain", LastFrame("plain"))
}
