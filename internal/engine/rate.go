package engine

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/LIT-Intel/logistics-intel-sub002/internal/model"
)

// defaultChargeName labels charges whose sheet has no recognizable
// charge-name column, or whose cell is blank.
const defaultChargeName = "Base Freight"

// reMoneyStrip removes everything a money cell may decorate a number
// with: currency signs, codes, thousands separators, surrounding text.
var reMoneyStrip = regexp.MustCompile(`[^0-9.\-]`)

// parseMoney extracts the numeric part of a money cell, 0 on failure.
func parseMoney(s string) float64 {
	f, ok := parseMoneyStrict(s)
	if !ok {
		return 0
	}
	return f
}

// parseMoneyOpt is parseMoney with absent (nil) instead of 0 for blank
// or unparseable cells; used for optional amounts like minimum charges.
func parseMoneyOpt(s string) *float64 {
	f, ok := parseMoneyStrict(s)
	if !ok {
		return nil
	}
	return &f
}

func parseMoneyStrict(s string) (float64, bool) {
	stripped := reMoneyStrip.ReplaceAllString(s, "")
	if stripped == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(stripped, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// canonUom maps free unit-of-measure text to the canonical enum. Hint
// substrings are checked in the dictionary's declared order; when none
// hit, the weight and volume unit detectors get a try, and everything
// else is a flat charge.
func canonUom(text string) model.UOM {
	t := Normalize(text)
	for _, canon := range UOMCanonOrder {
		for _, hint := range canon.Hints {
			if hint != "" && strings.Contains(t, hint) {
				return canon.UOM
			}
		}
	}
	if ReWeightUnit.MatchString(t) {
		return model.UOMPerKg
	}
	if ReVolumeUnit.MatchString(t) {
		return model.UOMPerCbm
	}
	return model.UOMFlat
}

// rateColumns is the per-sheet column resolution for rate extraction.
type rateColumns struct {
	byField map[string]string
}

func resolveRateColumns(columns []string) rateColumns {
	rc := rateColumns{byField: make(map[string]string, len(RateSynonyms))}
	for _, fs := range RateSynonyms {
		if col, ok := BestColumn(columns, fs.Phrases); ok {
			rc.byField[fs.Field] = col
		}
	}
	return rc
}

func (rc rateColumns) cell(row model.Row, field string) string {
	return strings.TrimSpace(row.Cell(rc.byField[field]))
}

// extractRates folds the rows of a rate-like sheet into the rate
// accumulator. The accumulator spans all sheets of a run: a
// spreadsheet often spreads one priced scope over several surcharge
// rows (base freight, BAF, THC, documentation), and those must land on
// a single rate entry rather than become independent prices.
func extractRates(s *model.Sheet, acc []model.Rate) []model.Rate {
	rc := resolveRateColumns(s.ColumnNames())
	for _, row := range s.Rows {
		scope := model.RateScope{
			Mode:          detectMode(rc.cell(row, FieldMode)),
			Equipment:     rc.cell(row, FieldEquipment),
			OriginPort:    rc.cell(row, FieldOriginPort),
			DestPort:      rc.cell(row, FieldDestPort),
			OriginAirport: rc.cell(row, FieldOriginAirport),
			DestAirport:   rc.cell(row, FieldDestAirport),
		}
		name := rc.cell(row, FieldChargeName)
		if name == "" {
			name = defaultChargeName
		}
		currency := rc.cell(row, FieldCurrency)
		charge := model.RateCharge{
			Name:     name,
			UOM:      canonUom(rc.cell(row, FieldUOM)),
			Rate:     parseMoney(rc.cell(row, FieldRate)),
			Min:      parseMoneyOpt(rc.cell(row, FieldMin)),
			Currency: currency,
		}
		acc = appendCharge(acc, scope, currency, charge)
	}
	return acc
}

// appendCharge attaches a charge to the rate with an identical scope,
// creating the rate on first sight. Scope comparison treats absent and
// empty string the same, so the accumulator never holds two rates with
// the same scope tuple.
func appendCharge(acc []model.Rate, scope model.RateScope, currency string, charge model.RateCharge) []model.Rate {
	for i := range acc {
		if acc[i].Scope == scope {
			acc[i].Charges = append(acc[i].Charges, charge)
			return acc
		}
	}
	return append(acc, model.Rate{
		Mode:     scope.Mode,
		Scope:    scope,
		Currency: currency,
		Charges:  []model.RateCharge{charge},
	})
}
