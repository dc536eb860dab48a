package catalog

import (
	"testing"

	"phonetech/internal/models"
)

func ptr(v float64) *float64 { return &v }

func testPhones() []models.Phone {
	return []models.Phone{
		{ID: 1, Brand: "iPhone", Model: "15 Pro", Price: 999.99, StockQuantity: 50, Description: "Titanium flagship"},
		{ID: 2, Brand: "Samsung", Model: "Galaxy S24", Price: 799.99, StockQuantity: 30, Description: "AI powered"},
		{ID: 3, Brand: "Google", Model: "Pixel 8 Pro", Price: 899.99, StockQuantity: 25, Description: "Best camera"},
		{ID: 4, Brand: "OnePlus", Model: "12", Price: 699.99, StockQuantity: 40, Description: "Fast charging flagship"},
	}
}

func TestApplyResultIsSubsetSatisfyingPredicates(t *testing.T) {
	source := testPhones()
	got := Apply(source, Criteria{
		Search:   "flagship",
		MinPrice: ptr(700),
	})

	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("expected only the iPhone to match, got %+v", got)
	}
	for _, p := range got {
		if p.Price < 700 {
			t.Fatalf("phone %d violates the min price predicate", p.ID)
		}
	}
}

func TestApplyEmptySearchMatchesAll(t *testing.T) {
	got := Apply(testPhones(), Criteria{})
	if len(got) != 4 {
		t.Fatalf("expected all 4 phones, got %d", len(got))
	}
}

func TestApplySearchIsCaseInsensitive(t *testing.T) {
	got := Apply(testPhones(), Criteria{Search: "GALAXY"})
	if len(got) != 1 || got[0].Brand != "Samsung" {
		t.Fatalf("expected the Samsung to match, got %+v", got)
	}
}

func TestApplyBrandEquality(t *testing.T) {
	got := Apply(testPhones(), Criteria{Brand: "Google"})
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("expected exact brand match only, got %+v", got)
	}
}

func TestApplyPriceBoundsAreInclusive(t *testing.T) {
	got := Apply(testPhones(), Criteria{MinPrice: ptr(799.99), MaxPrice: ptr(899.99)})
	if len(got) != 2 {
		t.Fatalf("expected 2 phones inside inclusive bounds, got %d", len(got))
	}
}

func TestApplyDoesNotMutateSource(t *testing.T) {
	source := testPhones()
	Apply(source, Criteria{SortKey: SortPriceLow})
	if source[0].ID != 1 || source[3].ID != 4 {
		t.Fatal("source list order changed")
	}
}

func TestSortPriceLowReversedEqualsPriceHigh(t *testing.T) {
	low := Apply(testPhones(), Criteria{SortKey: SortPriceLow})
	high := Apply(testPhones(), Criteria{SortKey: SortPriceHigh})

	for i := range low {
		if low[i].ID != high[len(high)-1-i].ID {
			t.Fatalf("price_low reversed != price_high at index %d", i)
		}
	}
}

func TestSortIsIdempotent(t *testing.T) {
	first := Apply(testPhones(), Criteria{SortKey: SortName})
	second := Apply(first, Criteria{SortKey: SortName})
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("sorting twice changed order at index %d", i)
		}
	}
}

func TestSortNameUsesModel(t *testing.T) {
	got := Apply(testPhones(), Criteria{SortKey: SortName})
	// Collation orders digits before letters: "12" < "15 Pro" < "Galaxy S24" < "Pixel 8 Pro".
	want := []int{4, 1, 2, 3}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("unexpected name order: got %v at %d, want %v", got[i].ID, i, id)
		}
	}
}

func TestUnknownSortKeyFallsBackToNewest(t *testing.T) {
	got := Apply(testPhones(), Criteria{SortKey: "bogus"})
	for i, id := range []int{4, 3, 2, 1} {
		if got[i].ID != id {
			t.Fatalf("expected newest-first order, got %+v", got)
		}
	}
}
