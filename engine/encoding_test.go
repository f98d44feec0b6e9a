package engine

import (
	"testing"
)

// ============================================================================
// ENCODING — sorted ordinal codes + one-hot
// ============================================================================

func TestEncodingCodesAreSortedDistinct(t *testing.T) {
	view := NewCatalogView(gardenCatalog())
	enc := NewEncoding(view, []string{"root_type", "root_depth", "vegetable"})

	assertInt(t, enc.Cardinality("root_type"), 3, "root type cardinality")
	assertInt(t, enc.Cardinality("root_depth"), 2, "root depth cardinality")
	assertInt(t, enc.Cardinality("vegetable"), 2, "vegetable cardinality")

	// Codes follow the sorted value order.
	wantOrder := []string{"Adventitious", "Fibrous root", "Tap root"}
	for code, val := range wantOrder {
		got, ok := enc.Code("root_type", val)
		if !ok {
			t.Fatalf("Code(root_type, %q) missing", val)
		}
		assertInt(t, got, code, "code of "+val)
	}
}

func TestEncodingRoundTrip(t *testing.T) {
	view := NewCatalogView(gardenCatalog())
	enc := NewEncoding(view, TraitKeys())

	for _, key := range TraitKeys() {
		for i := 0; i < view.Len(); i++ {
			val := view.Trait(i, key)
			code, ok := enc.Code(key, val)
			if !ok {
				t.Fatalf("catalog value %q not in %s vocabulary", val, key)
			}
			back, ok := enc.Decode(key, code)
			if !ok || back != val {
				t.Errorf("%s: decode(code(%q)) = %q", key, val, back)
			}
		}
	}
}

func TestEncodingUnknownValue(t *testing.T) {
	view := NewCatalogView(gardenCatalog())
	enc := NewEncoding(view, []string{"root_type"})

	if code, ok := enc.Code("root_type", "Rhizome"); ok || code != -1 {
		t.Errorf("out-of-vocabulary value: got (%d, %v), want (-1, false)", code, ok)
	}
	if _, ok := enc.Decode("root_type", 99); ok {
		t.Error("out-of-range code should not decode")
	}
	if _, ok := enc.Code("bogus_key", "x"); ok {
		t.Error("unknown key should not encode")
	}
}

func TestEncodingStableAcrossSubsets(t *testing.T) {
	cat := gardenCatalog()
	view := NewCatalogView(cat)
	enc := NewEncoding(view, []string{"growth_form"})

	// Codes are fit on the full catalog; filtering must not shift them.
	sub := ApplyFilters(view, Query{GrowthForms: []string{"Shrub"}})
	code, ok := enc.Code("growth_form", sub.Trait(0, "growth_form"))
	if !ok {
		t.Fatal("Shrub missing from vocabulary")
	}
	// Sorted: Climber, Herb, Shrub, Succulent, Tree.
	assertInt(t, code, 2, "Shrub code under full-catalog fit")
}

func TestOneHot(t *testing.T) {
	view := NewCatalogView(gardenCatalog())
	enc := NewEncoding(view, []string{"root_depth", "vegetable"})

	assertInt(t, enc.Width([]string{"root_depth", "vegetable"}), 4, "one-hot width")

	// Spinach: Shallow (code 1 of [Deep, Shallow]), Yes (code 1 of [No, Yes]).
	row := enc.OneHot(view.Plant(3), []string{"root_depth", "vegetable"})
	want := []float64{0, 1, 0, 1}
	for i := range want {
		assertNear(t, row[i], want[i], "one-hot cell")
	}
}

func TestOneHotMatrixShape(t *testing.T) {
	view := NewCatalogView(gardenCatalog())
	enc := NewEncoding(view, TraitKeys())

	data, rows, cols := enc.OneHotMatrix(view, []string{"root_type", "root_depth"})
	assertInt(t, rows, 10, "matrix rows")
	assertInt(t, cols, 5, "matrix cols")
	assertInt(t, len(data), 50, "matrix backing length")

	// Every row sums to the number of encoded columns.
	for i := 0; i < rows; i++ {
		var sum float64
		for j := 0; j < cols; j++ {
			sum += data[i*cols+j]
		}
		assertNear(t, sum, 2, "row one-hot sum")
	}
}

func TestVector(t *testing.T) {
	view := NewCatalogView(gardenCatalog())
	enc := NewEncoding(view, TraitKeys())

	// Mango: Tap root(2), Deep(0), Tree(4), Evergreen(3), Flowering(1),
	// Drought tolerant(0), "Thick bark; Waxy leaves"(5), No(0).
	vec := enc.Vector(view.Plant(0), TraitKeys())
	want := []float64{2, 0, 4, 3, 1, 0, 5, 0}
	if len(vec) != len(want) {
		t.Fatalf("vector length %d, want %d", len(vec), len(want))
	}
	for i := range want {
		assertNear(t, vec[i], want[i], "Mango ordinal vector")
	}
}
