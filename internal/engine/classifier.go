package engine

import (
	"github.com/LIT-Intel/logistics-intel-sub002/internal/model"
)

// Classification thresholds. Lane-like and rate-like are independent,
// non-exclusive checks: a sheet can be both, or neither.
const (
	// laneSheetMin / rateSheetMin: one recognizable column is enough
	// to attempt extraction.
	laneSheetMin = 2
	rateSheetMin = 2
	// strongSheetScore: at least two recognizable columns; feeds the
	// confidence score.
	strongSheetScore = 4
	// metaMaxRows: sheets at or below this row count are treated as
	// header or summary blocks and searched for quote metadata.
	metaMaxRows = 10
)

// Group phrase pools, flattened once for the classifier.
var (
	laneGroupPhrases = flattenPhrases(LaneSynonyms)
	rateGroupPhrases = flattenPhrases(RateSynonyms)
)

func flattenPhrases(group []FieldSynonyms) []string {
	var out []string
	for _, fs := range group {
		out = append(out, fs.Phrases...)
	}
	return out
}

// classifySheet scores a sheet's column set: every column containing
// any lane-group phrase adds two points to the lane score, and the
// rate score is computed the same way. A column may count toward both.
func classifySheet(s *model.Sheet) model.SheetRank {
	rank := model.SheetRank{Sheet: s.Name}
	for _, col := range s.ColumnNames() {
		key := HeaderKey(col)
		if key == "" {
			continue
		}
		if containsAnyPhrase(key, laneGroupPhrases) {
			rank.LaneScore += 2
		}
		if containsAnyPhrase(key, rateGroupPhrases) {
			rank.RateScore += 2
		}
	}
	return rank
}
