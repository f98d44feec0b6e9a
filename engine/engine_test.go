package engine

import (
	"fmt"
	"math"
	"testing"

	"github.com/verdex-org/verdex/catalog"
)

// ============================================================================
// SHARED TEST FIXTURE — ten-plant garden catalog
// ============================================================================
// Hand-sized so every builder result can be computed on paper. Growth forms
// are deliberately tied (three singletons) and adaptation text mixes all
// three delimiters.
// ============================================================================

var gardenHeader = []string{
	"Plant", "Root", "Type", "Stem / Growth Form", "Leaf Traits",
	"Reproductive Traits", "Stress Tolerance", "Special Adaptations",
	"Vegetable (Yes/No)", "Fruit", "Medicinal Plant", "Commercial Crop",
	"Ornamental Plant", "Fodder",
}

var gardenRows = [][]string{
	{"Mango", "Tap root", "Deep", "Tree", "Evergreen", "Flowering", "Drought tolerant", "Thick bark; Waxy leaves", "No", "Yes", "No", "Yes", "No", "No"},
	{"Neem", "Tap root", "Deep", "Tree", "Evergreen", "Flowering", "Drought tolerant", "Waxy leaves; Deep roots", "No", "No", "Yes", "No", "No", "No"},
	{"Banyan", "Tap root", "Deep", "Tree", "Evergreen", "Flowering", "Drought tolerant", "Aerial roots", "No", "No", "No", "No", "No", "No"},
	{"Spinach", "Fibrous root", "Shallow", "Herb", "Broad leaves", "Seeds", "Frost sensitive", "Rapid growth, Succulent leaves", "Yes", "No", "No", "No", "No", "Yes"},
	{"Lettuce", "Fibrous root", "Shallow", "Herb", "Broad leaves", "Seeds", "Frost sensitive", "Rapid growth", "Yes", "No", "No", "No", "No", "No"},
	{"Cactus", "Tap root", "Deep", "Succulent", "Spines", "Flowering", "Extreme drought", "Water storage; Waxy leaves", "No", "No", "No", "No", "Yes", "No"},
	{"Rose", "Fibrous root", "Shallow", "Shrub", "Compound", "Flowering", "Moderate", "Thorns", "No", "No", "No", "No", "Yes", "No"},
	{"Ivy", "Adventitious", "Shallow", "Climber", "Lobed", "Berries", "Shade tolerant", "Climbing habit/Aerial roots", "No", "No", "No", "No", "Yes", "No"},
	{"Fern", "Fibrous root", "Shallow", "Herb", "Fronds", "Spores", "Shade tolerant", "Unknown", "No", "No", "No", "No", "No", "No"},
	{"Tulsi", "Fibrous root", "Shallow", "Herb", "Aromatic", "Seeds", "Drought tolerant", "Aromatic oils, Rapid growth", "No", "No", "Yes", "No", "No", "No"},
}

func gardenCatalog() *catalog.Catalog {
	return catalog.Normalize(gardenHeader, gardenRows)
}

func gardenContext(opts ...Option) *Context {
	return NewContext(gardenCatalog(), opts...)
}

// ============================================================================
// ASSERT HELPERS
// ============================================================================

func assertEqual(t *testing.T, got, want, msg string) {
	t.Helper()
	if got != want {
		t.Errorf("%s: got %q, want %q", msg, got, want)
	}
}

func assertInt(t *testing.T, got, want int, msg string) {
	t.Helper()
	if got != want {
		t.Errorf("%s: got %d, want %d", msg, got, want)
	}
}

func assertNear(t *testing.T, got, want float64, msg string) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s: got %v, want %v", msg, got, want)
	}
}

func assertStrings(t *testing.T, got, want []string, msg string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: got %d items %v, want %d items %v", msg, len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s: index %d got %q, want %q", msg, i, got[i], want[i])
		}
	}
}

func planted(view TraitView) []string {
	ids := make([]string, 0, view.Len())
	for i := 0; i < view.Len(); i++ {
		if p := view.Plant(i); p != nil {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// Synthetic-row helpers for cap tests.

func wordFixture(i int) string { return fmt.Sprintf("word%02d", i) }

func plantFixture(i int) string { return fmt.Sprintf("Plant %03d", i) }

func normalizeRows(header []string, rows [][]string) *catalog.Catalog {
	return catalog.Normalize(header, rows)
}
