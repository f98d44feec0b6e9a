package engine

import (
	"testing"
)

// ============================================================================
// AGGREGATORS — counts, distincts, adaptation listing
// ============================================================================

func TestCountByTrait(t *testing.T) {
	view := NewCatalogView(gardenCatalog())

	roots := CountByTrait(view, "root_type")
	assertInt(t, roots["Tap root"], 4, "tap root count")
	assertInt(t, roots["Fibrous root"], 5, "fibrous root count")
	assertInt(t, roots["Adventitious"], 1, "adventitious count")
	assertInt(t, len(roots), 3, "distinct root types")

	veg := CountByTrait(view, "vegetable")
	assertInt(t, veg["Yes"], 2, "vegetable yes")
	assertInt(t, veg["No"], 8, "vegetable no")
}

func TestCountByTraitOnSubset(t *testing.T) {
	view := NewCatalogView(gardenCatalog())
	sub := ApplyFilters(view, Query{GrowthForms: []string{"Herb"}})

	stress := CountByTrait(sub, "stress_tolerance")
	assertInt(t, stress["Frost sensitive"], 2, "herb frost sensitive")
	assertInt(t, stress["Shade tolerant"], 1, "herb shade tolerant")
	assertInt(t, stress["Drought tolerant"], 1, "herb drought tolerant")
}

func TestCountInOrder(t *testing.T) {
	view := NewCatalogView(gardenCatalog())
	counts := countInOrder(view, "growth_form")

	wantLabels := []string{"Tree", "Herb", "Succulent", "Shrub", "Climber"}
	wantCounts := []int{3, 4, 1, 1, 1}
	if len(counts) != len(wantLabels) {
		t.Fatalf("got %d entries, want %d", len(counts), len(wantLabels))
	}
	for i := range wantLabels {
		assertEqual(t, counts[i].label, wantLabels[i], "encounter order")
		assertInt(t, counts[i].count, wantCounts[i], "count of "+wantLabels[i])
	}
}

func TestUniqueValues(t *testing.T) {
	view := NewCatalogView(gardenCatalog())
	got := UniqueValues(view, "stress_tolerance")
	want := []string{"Drought tolerant", "Frost sensitive", "Extreme drought", "Moderate", "Shade tolerant"}
	assertStrings(t, got, want, "first-occurrence order")
}

func TestAdaptationItems(t *testing.T) {
	view := NewCatalogView(gardenCatalog())
	items := AdaptationItems(view)

	// Fern's adaptations are Unknown and must be skipped.
	assertInt(t, len(items), 9, "items with real adaptation text")
	for _, it := range items {
		if it.ID == "Fern" {
			t.Error("Fern has no adaptation text and should be excluded")
		}
	}
	assertEqual(t, items[0].ID, "Mango", "view order")
	assertEqual(t, items[0].Adaptations, "Thick bark; Waxy leaves", "raw text preserved")
	assertEqual(t, items[0].Vegetable, "No", "vegetable label")
	assertEqual(t, items[3].ID, "Spinach", "view order after skip-free prefix")
	assertEqual(t, items[3].Vegetable, "Yes", "spinach vegetable label")
}

func TestFormatInt(t *testing.T) {
	cases := map[int]string{
		0:       "0",
		42:      "42",
		999:     "999",
		1000:    "1,000",
		1234567: "1,234,567",
		-4500:   "-4,500",
	}
	for n, want := range cases {
		assertEqual(t, FormatInt(n), want, "FormatInt")
	}
}

func TestRoundTo4(t *testing.T) {
	assertNear(t, RoundTo4(1.23456789), 1.2346, "round up")
	assertNear(t, RoundTo4(-0.00004), 0, "round toward zero")
	assertNear(t, RoundTo4(2.5), 2.5, "already exact")
}
