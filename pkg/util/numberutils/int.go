package numberutils

import (
	"strconv"
	"strings"
)

// PadInt renders n in base 10 and left-pads the result with zeros up to width
// characters. The sign counts towards the width, so PadInt(-5, 2) is "-5".
func PadInt(n int, width int) string {
	s := strconv.Itoa(n)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// ToIntWithDefault converts the given string to an integer.
// If the string cannot be converted, it returns the provided default value.
func ToIntWithDefault(s string, defaultVal int) int {
	if i, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return i
	}
	return defaultVal
}
