package engine

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/LIT-Intel/logistics-intel-sub002/internal/model"
)

// Transport-mode detectors, checked in this fixed order: the ocean
// family first, then air, truck, rail. The first matching family wins.
var (
	reModeOcean = regexp.MustCompile(`ocean|sea|fcl|lcl`)
	reModeAir   = regexp.MustCompile(`air|awb|iata`)
	reModeTruck = regexp.MustCompile(`truck|road`)
	reModeRail  = regexp.MustCompile(`rail`)
)

// detectMode maps free mode text to the canonical enum. Empty return
// means no family matched.
func detectMode(text string) model.Mode {
	t := strings.ToLower(text)
	if t == "" {
		return ""
	}
	switch {
	case reModeOcean.MatchString(t):
		if strings.Contains(t, "fcl") {
			return model.ModeFCL
		}
		if strings.Contains(t, "lcl") {
			return model.ModeLCL
		}
		return model.ModeOcean
	case reModeAir.MatchString(t):
		return model.ModeAir
	case reModeTruck.MatchString(t):
		return model.ModeTruck
	case reModeRail.MatchString(t):
		return model.ModeRail
	}
	return ""
}

// parseNumber parses a plain numeric cell. Nil means absent: a cell
// that does not parse must not turn into a zero.
func parseNumber(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// laneColumns is the per-sheet column resolution for lane extraction,
// computed once and reused for every row.
type laneColumns struct {
	byField map[string]string
}

func resolveLaneColumns(columns []string) laneColumns {
	lc := laneColumns{byField: make(map[string]string, len(LaneSynonyms))}
	for _, fs := range LaneSynonyms {
		if col, ok := BestColumn(columns, fs.Phrases); ok {
			lc.byField[fs.Field] = col
		}
	}
	return lc
}

func (lc laneColumns) cell(row model.Row, field string) string {
	return strings.TrimSpace(row.Cell(lc.byField[field]))
}

// extractLanes maps each row of a lane-like sheet to at most one lane.
// Rows whose origin and destination are both completely empty are
// dropped; that filters out blank and header-echo rows.
func extractLanes(s *model.Sheet) []model.Lane {
	lc := resolveLaneColumns(s.ColumnNames())
	lanes := make([]model.Lane, 0, len(s.Rows))
	for _, row := range s.Rows {
		lane := model.Lane{
			Mode:         detectMode(lc.cell(row, FieldMode)),
			Incoterm:     lc.cell(row, FieldIncoterm),
			ServiceLevel: lc.cell(row, FieldServiceLevel),
			Equipment:    lc.cell(row, FieldEquipment),
			Origin: model.Endpoint{
				Country: lc.cell(row, FieldOriginCountry),
				City:    lc.cell(row, FieldOriginCity),
				Port:    lc.cell(row, FieldOriginPort),
				Airport: lc.cell(row, FieldOriginAirport),
			},
			Destination: model.Endpoint{
				Country: lc.cell(row, FieldDestCountry),
				City:    lc.cell(row, FieldDestCity),
				Port:    lc.cell(row, FieldDestPort),
				Airport: lc.cell(row, FieldDestAirport),
			},
			Demand: model.Demand{
				ShipmentsPerYear: parseNumber(lc.cell(row, FieldShipmentsPerYear)),
				AvgWeightKg:      parseNumber(lc.cell(row, FieldWeightKg)),
				AvgVolumeCbm:     parseNumber(lc.cell(row, FieldVolumeCbm)),
			},
		}
		if lane.Origin.Empty() && lane.Destination.Empty() {
			continue
		}
		lanes = append(lanes, lane)
	}
	return lanes
}
