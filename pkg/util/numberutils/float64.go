package numberutils

import (
	"math"
	"strconv"
)

// RoundHalfUp rounds to the nearest integer with ties going towards positive
// infinity: 2.5 -> 3, -2.5 -> -2.
func RoundHalfUp(value float64) int {
	return int(math.Floor(value + 0.5))
}

// FormatFloat renders value with the shortest representation that round-trips.
func FormatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
