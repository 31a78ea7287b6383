package engine

import (
	"github.com/LIT-Intel/logistics-intel-sub002/internal/model"
)

// Confidence formula weights. The score is a monotone heuristic, not a
// calibrated probability: a 0.2 floor, 0.2 per sheet with strong lane
// or rate evidence, 0.2 each for having extracted anything at all,
// capped at 1.
const (
	confidenceBase = 0.2
	confidenceStep = 0.2
)

func confidenceScore(ranks []model.SheetRank, laneCount, rateCount int) float64 {
	strongLane := 0
	strongRate := 0
	for _, rank := range ranks {
		if rank.LaneScore >= strongSheetScore {
			strongLane++
		}
		if rank.RateScore >= strongSheetScore {
			strongRate++
		}
	}

	score := confidenceBase
	score += confidenceStep * float64(strongLane)
	score += confidenceStep * float64(strongRate)
	if laneCount > 0 {
		score += confidenceStep
	}
	if rateCount > 0 {
		score += confidenceStep
	}
	if score > 1 {
		score = 1
	}
	return score
}
