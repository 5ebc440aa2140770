package countdown

import (
	"math"
	"strings"
)

// ParseTargetInput reads the leading integer of a user-entered string.
// Leading whitespace and a single sign are accepted, anything after the
// digits is ignored. Input without digits yields 0.
func ParseTargetInput(input string) int {
	s := strings.TrimLeft(input, " \t\r\n\v\f")
	if s == "" {
		return 0
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	n := 0
	digits := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		d := int(r - '0')
		if n > (math.MaxInt-d)/10 {
			n = math.MaxInt
		} else {
			n = n*10 + d
		}
		digits++
	}

	if digits == 0 {
		return 0
	}
	if negative {
		return -n
	}
	return n
}

// ClampTarget enforces the one second minimum
func ClampTarget(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// addSeconds adds delta to n, saturating at the int bounds
func addSeconds(n, delta int) int {
	if delta > 0 && n > math.MaxInt-delta {
		return math.MaxInt
	}
	if delta < 0 && n < math.MinInt-delta {
		return math.MinInt
	}
	return n + delta
}
