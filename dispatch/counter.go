package dispatch

import "math"

// ToCounter converts a cell value to a loop counter, truncating toward zero.
// NaN and non-positive values give 0, values past the uint32 range saturate.
func ToCounter(v float64) uint32 {
	switch {
	case !(v > 0):
		return 0
	case v >= math.MaxUint32:
		return math.MaxUint32
	}
	return uint32(v)
}
