package e2e

import (
	"regexp"
	"strings"
)

// ANSI escape code patterns
var (
	ansiEscape = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)
	cursorHome = "\x1b[H"
)

// StripANSI removes all ANSI escape codes and carriage returns from a string
func StripANSI(s string) string {
	s = ansiEscape.ReplaceAllString(s, "")
	return strings.ReplaceAll(s, "\r", "")
}

// LastFrame returns the text of the most recent full-screen frame. Every frame
// starts by homing the cursor, so the output after the last home sequence is
// what is currently on screen.
func LastFrame(output string) string {
	if i := strings.LastIndex(output, cursorHome); i >= 0 {
		output = output[i+len(cursorHome):]
	}
	return StripANSI(output)
}

// FrameLines splits a frame into lines with trailing blanks trimmed
func FrameLines(frame string) []string {
	lines := strings.Split(frame, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
