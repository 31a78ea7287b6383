package store

import (
	"path/filepath"
	"testing"

	"github.com/LIT-Intel/logistics-intel-sub002/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	st, err := New(filepath.Join(t.TempDir(), "litquote.db"))
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func testPayload() *model.QuotePayload {
	min := 25.0
	return &model.QuotePayload{
		Meta: model.Meta{BidName: "ACME RFQ", Currency: "USD"},
		Lanes: []model.Lane{
			{
				Mode:        model.ModeFCL,
				Origin:      model.Endpoint{Port: "CNSHA"},
				Destination: model.Endpoint{Port: "USLAX"},
			},
		},
		Rates: []model.Rate{
			{
				Scope: model.RateScope{Equipment: "40HC", OriginPort: "CNSHA", DestPort: "USLAX"},
				Charges: []model.RateCharge{
					{Name: "Base Freight", UOM: model.UOMPerCnt, Rate: 1200, Min: &min},
				},
			},
		},
		Diagnostics: model.Diagnostics{
			SheetRanks: []model.SheetRank{{Sheet: "Rates", LaneScore: 6, RateScore: 12}},
			Confidence: 0.8,
		},
	}
}

func TestSaveAndGetExtraction(t *testing.T) {
	st := newTestStore(t)

	if err := st.SaveExtraction("run-1", "quote.xlsx", 2, testPayload()); err != nil {
		t.Fatalf("save: %v", err)
	}

	rec, err := st.GetExtraction("run-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec == nil {
		t.Fatalf("expected record")
	}
	if rec.Filename != "quote.xlsx" || rec.LaneCount != 1 || rec.RateCount != 1 {
		t.Fatalf("unexpected record: %+v", rec.ExtractionSummary)
	}
	if rec.Payload.Meta.BidName != "ACME RFQ" {
		t.Fatalf("payload did not round-trip: %+v", rec.Payload.Meta)
	}
	if got := rec.Payload.Rates[0].Charges[0]; got.Min == nil || *got.Min != 25 {
		t.Fatalf("charge min did not round-trip: %+v", got)
	}
}

func TestGetExtraction_Missing(t *testing.T) {
	st := newTestStore(t)

	rec, err := st.GetExtraction("nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec != nil {
		t.Fatalf("want nil for missing id, got %+v", rec)
	}
}

func TestListAndDeleteExtractions(t *testing.T) {
	st := newTestStore(t)

	if err := st.SaveExtraction("run-1", "a.xlsx", 1, testPayload()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := st.SaveExtraction("run-2", "b.xlsx", 1, testPayload()); err != nil {
		t.Fatalf("save: %v", err)
	}

	list, err := st.ListExtractions()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("want 2 runs got %d", len(list))
	}

	n, err := st.CountExtractions()
	if err != nil || n != 2 {
		t.Fatalf("count: n=%d err=%v", n, err)
	}

	ok, err := st.DeleteExtraction("run-1")
	if err != nil || !ok {
		t.Fatalf("delete: ok=%v err=%v", ok, err)
	}
	ok, err = st.DeleteExtraction("run-1")
	if err != nil || ok {
		t.Fatalf("second delete must be a no-op: ok=%v err=%v", ok, err)
	}
}
