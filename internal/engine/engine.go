// Package engine infers the schema of unlabeled freight-quote
// spreadsheets and extracts a normalized quote payload from them.
//
// Sheets arrive with no fixed schema, column order or naming
// convention. The engine classifies each sheet's role from its column
// headers, binds columns to canonical fields through the synonym
// dictionary, coerces raw cells into typed lane and rate records, and
// reports a confidence score for how much of the input it understood.
// Messy cell data never produces an error; fields that cannot be read
// are simply absent, and the confidence score is how callers detect a
// low-quality extraction.
package engine

import (
	"github.com/LIT-Intel/logistics-intel-sub002/internal/model"
)

// Engine runs extractions. It holds no state between calls: Extract is
// a pure function of its input and safe for concurrent use.
type Engine struct{}

// New creates an engine.
func New() *Engine {
	return &Engine{}
}

// Extract processes the sheets in one left-to-right pass. Each sheet
// is classified independently; small sheets contribute quote metadata,
// lane-like sheets contribute lanes, rate-like sheets contribute
// charges into the scope-merged rate accumulator. The checks are not
// exclusive, so one sheet may feed several outputs.
func (e *Engine) Extract(sheets []model.Sheet) *model.QuotePayload {
	out := &model.QuotePayload{
		Lanes: []model.Lane{},
		Rates: []model.Rate{},
	}
	ranks := make([]model.SheetRank, 0, len(sheets))

	for i := range sheets {
		sheet := &sheets[i]
		rank := classifySheet(sheet)
		ranks = append(ranks, rank)

		if len(sheet.Rows) <= metaMaxRows {
			extractMeta(sheet, &out.Meta)
		}
		if rank.LaneScore >= laneSheetMin {
			out.Lanes = append(out.Lanes, extractLanes(sheet)...)
		}
		if rank.RateScore >= rateSheetMin {
			out.Rates = extractRates(sheet, out.Rates)
		}
	}

	out.Diagnostics = model.Diagnostics{
		SheetRanks: ranks,
		Confidence: confidenceScore(ranks, len(out.Lanes), len(out.Rates)),
	}
	return out
}
