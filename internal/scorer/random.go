package scorer

import "math"

// seededInt returns a pseudo-random integer in [min, max] derived from
// sin(seed+offset). Same (seed, offset) always yields the same value.
//
// The arithmetic mirrors IEEE double evaluation step by step so that results
// agree with other runtimes using the same formula. Explicit float64
// conversions keep the compiler from fusing multiply and add.
func seededInt(seed int, min, max, offset int) int {
	x := float64(math.Sin(float64(seed)+float64(offset)) * 10000)
	frac := x - math.Floor(x)
	return int(math.Floor(float64(frac*float64(max-min+1)))) + min
}
