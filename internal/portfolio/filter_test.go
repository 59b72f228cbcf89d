package portfolio

import (
	"testing"

	"github.com/seancribb/holdview/internal/models"
)

func TestFilter_EmptyTermReturnsAll(t *testing.T) {
	positions := FallbackPositions()

	got, label := Filter("", positions)
	if len(got) != len(positions) {
		t.Fatalf("len = %d, want %d", len(got), len(positions))
	}
	for i := range got {
		if got[i].Symbol != positions[i].Symbol {
			t.Errorf("position %d = %s, want %s (order preserved)", i, got[i].Symbol, positions[i].Symbol)
		}
	}
	if label != AllPositionsLabel {
		t.Errorf("label = %q, want %q", label, AllPositionsLabel)
	}
}

func TestFilter_WhitespaceTermReturnsAll(t *testing.T) {
	positions := FallbackPositions()
	got, label := Filter("   ", positions)
	if len(got) != len(positions) {
		t.Errorf("len = %d, want %d", len(got), len(positions))
	}
	if label != AllPositionsLabel {
		t.Errorf("label = %q, want %q", label, AllPositionsLabel)
	}
}

func TestFilter_SymbolSubstring(t *testing.T) {
	got, label := Filter("aap", FallbackPositions())
	if len(got) != 1 {
		t.Fatalf("len = %d, want exactly the AAPL entry", len(got))
	}
	if got[0].Symbol != "AAPL" {
		t.Errorf("symbol = %s, want AAPL", got[0].Symbol)
	}
	if label != "Filter: aap" {
		t.Errorf("label = %q, want %q", label, "Filter: aap")
	}
}

func TestFilter_NameSubstringCaseInsensitive(t *testing.T) {
	got, _ := Filter("  MICROSOFT ", FallbackPositions())
	if len(got) != 1 || got[0].Symbol != "MSFT" {
		t.Fatalf("got %v, want just MSFT via name match", got)
	}
}

func TestFilter_NoMatches(t *testing.T) {
	got, label := Filter("zzz", FallbackPositions())
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
	if label != "Filter: zzz" {
		t.Errorf("label = %q", label)
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	positions := []models.Position{
		{Symbol: "AAPL", Name: "Apple Inc."},
		{Symbol: "MSFT", Name: "Microsoft Corp."},
	}
	before := make([]models.Position, len(positions))
	copy(before, positions)

	Filter("aap", positions)

	for i := range positions {
		if positions[i] != before[i] {
			t.Fatalf("input mutated at %d: %+v", i, positions[i])
		}
	}
}
