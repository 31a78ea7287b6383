package engine

import (
	"testing"

	"github.com/LIT-Intel/logistics-intel-sub002/internal/model"
)

func TestConfidenceScore_FloorAndCap(t *testing.T) {
	t.Parallel()

	// No recognizable columns, nothing extracted: the floor.
	got := confidenceScore([]model.SheetRank{{Sheet: "Notes"}}, 0, 0)
	if got != 0.2 {
		t.Fatalf("floor: want 0.2 got %v", got)
	}

	// Overwhelming evidence is capped at 1.
	ranks := []model.SheetRank{
		{Sheet: "a", LaneScore: 8, RateScore: 8},
		{Sheet: "b", LaneScore: 8, RateScore: 8},
		{Sheet: "c", LaneScore: 8, RateScore: 8},
	}
	got = confidenceScore(ranks, 10, 10)
	if got != 1 {
		t.Fatalf("cap: want 1 got %v", got)
	}
}

func TestConfidenceScore_StepPerEvidence(t *testing.T) {
	t.Parallel()

	// One strong lane sheet plus extracted lanes: 0.2 + 0.2 + 0.2.
	ranks := []model.SheetRank{{Sheet: "Lanes", LaneScore: 4}}
	got := confidenceScore(ranks, 3, 0)
	if got < 0.599 || got > 0.601 {
		t.Fatalf("want 0.6 got %v", got)
	}

	// Weak evidence (score below 4) contributes nothing.
	ranks = []model.SheetRank{{Sheet: "Lanes", LaneScore: 2}}
	got = confidenceScore(ranks, 0, 0)
	if got != 0.2 {
		t.Fatalf("want 0.2 got %v", got)
	}
}
