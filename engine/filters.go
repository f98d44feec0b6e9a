package engine

import (
	"github.com/verdex-org/verdex/catalog"
)

// ============================================================================
// FILTERS — Query-Based Record Selection via TraitView
// ============================================================================
// Single-pass filter: checks ALL field constraints per record in one loop.
// Returns a SubView (index list into parent) — zero data copy, parent order
// preserved.
// ============================================================================

// ApplyFilters returns a view of records matching the query.
// Fields are AND-combined; values within a field are OR-combined (exact set
// membership). Usage is ANY-of and tag names match case-insensitively.
// An empty query returns the original view untouched.
func ApplyFilters(view TraitView, q Query) TraitView {
	if q.IsEmpty() {
		return view
	}

	plants := toSet(q.Plants)
	roots := toSet(q.RootTypes)
	depths := toSet(q.RootDepths)
	forms := toSet(q.GrowthForms)
	stress := toSet(q.StressTolerances)
	veg := toSet(q.Vegetable)

	n := view.Len()
	indices := make([]int, 0, n)
	for i := 0; i < n; i++ {
		p := view.Plant(i)
		if p == nil {
			continue
		}
		if len(plants) > 0 && !plants[p.ID] {
			continue
		}
		if len(roots) > 0 && !roots[p.RootType] {
			continue
		}
		if len(depths) > 0 && !depths[p.RootDepth] {
			continue
		}
		if len(forms) > 0 && !forms[p.GrowthForm] {
			continue
		}
		if len(stress) > 0 && !stress[p.StressTolerance] {
			continue
		}
		if len(veg) > 0 && !veg[p.VegetableLabel()] {
			continue
		}
		if len(q.Usage) > 0 && !hasAnyTag(p, q.Usage) {
			continue
		}
		indices = append(indices, i)
	}

	return newSubView(view, indices)
}

// toSet converts a value list to an exact-match lookup set.
func toSet(items []string) map[string]bool {
	if len(items) == 0 {
		return nil
	}
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}

func hasAnyTag(p *catalog.Plant, tags []string) bool {
	for _, tag := range tags {
		if p.Usage.Has(tag) {
			return true
		}
	}
	return false
}
