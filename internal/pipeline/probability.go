package pipeline

import "math"

// normalizeProbabilities forces a pair of rounded percentages to sum to
// exactly 100. Independent rounding of the two prices (or upstream quirks)
// can leave the pair off by a point or more; the output invariant is that
// yes+no == 100 always holds.
func normalizeProbabilities(yes, no int) (int, int) {
	yesC := clamp(yes, 0, 100)
	noC := clamp(no, 0, 100)

	if intAbs(yesC+noC-100) < 1 {
		return yesC, noC
	}

	total := yesC + noC
	if total == 0 {
		return 50, 50
	}

	yesFinal := int(math.Round(float64(yesC) / float64(total) * 100))
	return yesFinal, 100 - yesFinal
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func intAbs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
