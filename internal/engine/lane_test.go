package engine

import (
	"testing"

	"github.com/LIT-Intel/logistics-intel-sub002/internal/model"
)

func TestDetectMode_Families(t *testing.T) {
	t.Parallel()

	cases := map[string]model.Mode{
		"Ocean":       model.ModeOcean,
		"sea freight": model.ModeOcean,
		"Ocean FCL":   model.ModeFCL,
		"lcl":         model.ModeLCL,
		"Air":         model.ModeAir,
		"AWB":         model.ModeAir,
		"Truck":       model.ModeTruck,
		"road":        model.ModeTruck,
		"Rail":        model.ModeRail,
		"courier":     "",
		"":            "",
	}
	for in, want := range cases {
		if got := detectMode(in); got != want {
			t.Fatalf("detectMode(%q): want %q got %q", in, want, got)
		}
	}
}

func TestDetectMode_OceanFamilyBeatsAir(t *testing.T) {
	t.Parallel()

	// The ocean family is checked first, so a cell naming both wins FCL.
	if got := detectMode("FCL or AIR"); got != model.ModeFCL {
		t.Fatalf("want FCL got %q", got)
	}
}

func TestParseNumber_AbsentNotZero(t *testing.T) {
	t.Parallel()

	if parseNumber("") != nil {
		t.Fatalf("blank cell must be absent")
	}
	if parseNumber("n/a") != nil {
		t.Fatalf("unparseable cell must be absent, not zero")
	}
	got := parseNumber(" 120 ")
	if got == nil || *got != 120 {
		t.Fatalf("want 120 got %v", got)
	}
}

func TestExtractLanes_RetentionRequiresEndpoint(t *testing.T) {
	t.Parallel()

	sheet := &model.Sheet{
		Name:    "Lanes",
		Columns: []string{"Mode", "Incoterm", "Origin Port", "Destination Port"},
		Rows: []model.Row{
			{"Mode": "Ocean", "Incoterm": "FOB", "Origin Port": "", "Destination Port": ""},
			{"Mode": "Ocean", "Incoterm": "FOB", "Origin Port": "CNSHA", "Destination Port": ""},
		},
	}

	lanes := extractLanes(sheet)
	if len(lanes) != 1 {
		t.Fatalf("want 1 lane got %d", len(lanes))
	}
	if lanes[0].Origin.Port != "CNSHA" {
		t.Fatalf("unexpected origin port %q", lanes[0].Origin.Port)
	}
}

func TestExtractLanes_UnmatchedNumericColumnStaysAbsent(t *testing.T) {
	t.Parallel()

	sheet := &model.Sheet{
		Name:    "Lanes",
		Columns: []string{"Origin Port", "Destination Port", "Shipments/Year"},
		Rows: []model.Row{
			{"Origin Port": "CNSHA", "Destination Port": "USLAX", "Shipments/Year": "abc"},
		},
	}

	lanes := extractLanes(sheet)
	if len(lanes) != 1 {
		t.Fatalf("want 1 lane got %d", len(lanes))
	}
	if lanes[0].Demand.ShipmentsPerYear != nil {
		t.Fatalf("garbage numeric cell must stay absent")
	}
}
