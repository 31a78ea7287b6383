package engine

import "testing"

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	t.Parallel()

	if got := Normalize("  Port  of \t Loading "); got != "port of loading" {
		t.Fatalf("unexpected normalize: %q", got)
	}
}

func TestHeaderKey_PunctuationVariantsCompareEqual(t *testing.T) {
	t.Parallel()

	a := HeaderKey("PO(L) Code")
	b := HeaderKey("pol code")
	if a != b {
		t.Fatalf("keys differ: %q vs %q", a, b)
	}
	if a != "pol code" {
		t.Fatalf("unexpected key: %q", a)
	}
}

func TestMatchScore_LongPhrasesWeighMore(t *testing.T) {
	t.Parallel()

	// "pol" is short (1 point), "port of loading" is long (2 points).
	if got := MatchScore("POL", []string{"pol"}); got != 1 {
		t.Fatalf("short phrase score: want 1 got %d", got)
	}
	if got := MatchScore("Port of Loading", []string{"port of loading"}); got != 2 {
		t.Fatalf("long phrase score: want 2 got %d", got)
	}
}

func TestMatchScore_AccumulatesAcrossSynonyms(t *testing.T) {
	t.Parallel()

	got := MatchScore("Origin Port (POL)", []string{"pol", "origin port", "po"})
	// "pol" (1) + "origin port" (2) + "po" (1)
	if got != 4 {
		t.Fatalf("want 4 got %d", got)
	}
}

func TestBestColumn_RejectsSingleShortHit(t *testing.T) {
	t.Parallel()

	_, ok := BestColumn([]string{"Ref", "Remarks"}, []string{"ref"})
	if ok {
		t.Fatalf("a lone 1-point hit must not bind a column")
	}
}

func TestBestColumn_FirstColumnWinsTies(t *testing.T) {
	t.Parallel()

	col, ok := BestColumn([]string{"Contact A", "Contact B"}, []string{"contact"})
	if !ok {
		t.Fatalf("expected a match")
	}
	if col != "Contact A" {
		t.Fatalf("tie must go to the first column, got %q", col)
	}
}

func TestBestColumn_PicksHighestScore(t *testing.T) {
	t.Parallel()

	cols := []string{"POD", "Destination Port"}
	col, ok := BestColumn(cols, destPortPhrases)
	if !ok {
		t.Fatalf("expected a match")
	}
	// "Destination Port" scores "destination port" + "po" = 3,
	// "POD" scores "pod" + "po" = 2.
	if col != "Destination Port" {
		t.Fatalf("want Destination Port, got %q", col)
	}
}

func TestBestColumn_BareCodesStillBind(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		phrases []string
		header  string
	}{
		{originPortPhrases, "POL"},
		{destPortPhrases, "POD"},
		{phrasesFor(RateSynonyms, FieldUOM), "UOM"},
	} {
		col, ok := BestColumn([]string{"Remarks", tc.header}, tc.phrases)
		if !ok || col != tc.header {
			t.Fatalf("header %q: ok=%v col=%q", tc.header, ok, col)
		}
	}
}
