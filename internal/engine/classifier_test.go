package engine

import (
	"testing"

	"github.com/LIT-Intel/logistics-intel-sub002/internal/model"
)

func TestClassifySheet_LaneColumns(t *testing.T) {
	t.Parallel()

	sheet := &model.Sheet{
		Name:    "Lanes",
		Columns: []string{"Origin Port", "Destination Port", "Mode", "Shipments/Year"},
	}
	rank := classifySheet(sheet)
	if rank.LaneScore < strongSheetScore {
		t.Fatalf("four lane columns must rank strong, got %d", rank.LaneScore)
	}
}

func TestClassifySheet_RateColumns(t *testing.T) {
	t.Parallel()

	sheet := &model.Sheet{
		Name:    "Rates",
		Columns: []string{"Charge", "Rate", "UOM", "Container"},
	}
	rank := classifySheet(sheet)
	if rank.RateScore < strongSheetScore {
		t.Fatalf("rate columns must rank strong, got %d", rank.RateScore)
	}
}

func TestClassifySheet_SharedColumnsCountTowardBoth(t *testing.T) {
	t.Parallel()

	// Port columns belong to the lane and the rate vocabulary; the
	// checks are independent and a column may feed both scores.
	sheet := &model.Sheet{
		Name:    "Mixed",
		Columns: []string{"POL", "POD"},
	}
	rank := classifySheet(sheet)
	if rank.LaneScore != 4 || rank.RateScore != 4 {
		t.Fatalf("want 4/4 got %d/%d", rank.LaneScore, rank.RateScore)
	}
}

func TestClassifySheet_UnrecognizableColumns(t *testing.T) {
	t.Parallel()

	sheet := &model.Sheet{
		Name:    "Notes",
		Columns: []string{"Remarks", "Reviewed By"},
	}
	rank := classifySheet(sheet)
	if rank.LaneScore != 0 || rank.RateScore != 0 {
		t.Fatalf("want 0/0 got %d/%d", rank.LaneScore, rank.RateScore)
	}
}
