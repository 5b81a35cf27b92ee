package clarity

import "math"

// toFivePoint maps a [0,1] heuristic value onto the 1-5 report scale.
// Every heuristic-derived score goes through this single transform.
func toFivePoint(v float64) int {
	score := int(math.Round(v*4 + 1))
	if score < 1 {
		return 1
	}
	if score > 5 {
		return 5
	}
	return score
}
