package engine

import (
	"sort"
)

// ============================================================================
// SUNBURST BUILDER — All → growth form → leaf trait → plant
// ============================================================================
// Emits the parallel labels/parents/values arrays the frontend feeds
// straight into its sunburst renderer. Parent linkage is by label string:
// identical leaf-trait labels under different growth forms merge into one
// arc. That is the rendering contract — do not disambiguate them.
// ============================================================================

// BuildSunburst builds the four-level hierarchy for a filtered subset.
func BuildSunburst(view TraitView) *SunburstData {
	n := view.Len()
	data := &SunburstData{
		Labels:  []string{"All"},
		Parents: []string{""},
		Values:  []int{n},
	}

	// Tier 2: growth forms by descending count, ties in encounter order.
	forms := countInOrder(view, "growth_form")
	sort.SliceStable(forms, func(i, j int) bool { return forms[i].count > forms[j].count })
	for _, f := range forms {
		data.Labels = append(data.Labels, f.label)
		data.Parents = append(data.Parents, "All")
		data.Values = append(data.Values, f.count)
	}

	// Tier 3: (growth form, leaf trait) pairs, lexicographic.
	type formLeaf struct {
		form string
		leaf string
	}
	pairCounts := make(map[formLeaf]int)
	for i := 0; i < n; i++ {
		pairCounts[formLeaf{view.Trait(i, "growth_form"), view.Trait(i, "leaf_traits")}]++
	}
	pairs := make([]formLeaf, 0, len(pairCounts))
	for pr := range pairCounts {
		pairs = append(pairs, pr)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].form != pairs[j].form {
			return pairs[i].form < pairs[j].form
		}
		return pairs[i].leaf < pairs[j].leaf
	})
	for _, pr := range pairs {
		data.Labels = append(data.Labels, pr.leaf)
		data.Parents = append(data.Parents, pr.form)
		data.Values = append(data.Values, pairCounts[pr])
	}

	// Tier 4: one leaf per plant in subset order.
	for i := 0; i < n; i++ {
		p := view.Plant(i)
		if p == nil {
			continue
		}
		data.Labels = append(data.Labels, p.ID)
		data.Parents = append(data.Parents, view.Trait(i, "leaf_traits"))
		data.Values = append(data.Values, 1)
	}

	return data
}
