package engine

import (
	"sort"
)

// ============================================================================
// SANKEY BUILDER — stress tolerance → adaptation token → plant
// ============================================================================
// Three node tiers with two independent caps:
//   tokens — top 40 by frequency, counted over the WHOLE filtered subset
//   plants — first 150 in subset order
// The token cap must be computed before the plant cap so that a narrow
// plant window cannot shift which adaptations rank as common.
// ============================================================================

const (
	sankeyTokenCap = 40
	sankeyPlantCap = 150
)

// BuildSankey builds the flow diagram for a filtered subset. Links are
// emitted per occurrence — repeated flows between the same endpoints stay
// as parallel unit links.
func BuildSankey(view TraitView) *SankeyData {
	stressVals := UniqueValues(view, "stress_tolerance")
	sort.Strings(stressVals)

	keep := topTokenSet(view, sankeyTokenCap)
	tokens := make([]string, 0, len(keep))
	for tok := range keep {
		tokens = append(tokens, tok)
	}
	sort.Strings(tokens)

	capN := view.Len()
	if capN > sankeyPlantCap {
		capN = sankeyPlantCap
	}

	data := &SankeyData{
		Nodes: make([]string, 0, len(stressVals)+len(tokens)+capN),
		Links: []SankeyLink{},
	}
	data.Nodes = append(data.Nodes, stressVals...)
	data.Nodes = append(data.Nodes, tokens...)
	for i := 0; i < capN; i++ {
		if p := view.Plant(i); p != nil {
			data.Nodes = append(data.Nodes, p.ID)
		}
	}

	// Label → index; on a label clash across tiers the later node wins.
	index := make(map[string]int, len(data.Nodes))
	for i, n := range data.Nodes {
		index[n] = i
	}

	for i := 0; i < capN; i++ {
		p := view.Plant(i)
		if p == nil {
			continue
		}
		src := index[p.StressTolerance]
		for _, tok := range SplitAdaptations(p.Adaptations) {
			if !keep[tok] {
				continue
			}
			mid := index[tok]
			data.Links = append(data.Links,
				SankeyLink{Source: src, Target: mid, Value: 1},
				SankeyLink{Source: mid, Target: index[p.ID], Value: 1},
			)
		}
	}

	return data
}
