package engine

// ============================================================================
// NETWORK BUILDER — plant/trait bipartite graph
// ============================================================================
// Node ids are content-addressed: "rt::Tap root" is the same node no matter
// how many plants carry it, so shared traits become hubs. Plants link to
// their four categorical trait values plus their adaptation tokens (capped
// to the 30 most frequent across the subset).
// ============================================================================

const networkTokenCap = 30

var networkTraitTiers = []struct {
	prefix string
	key    string
}{
	{"rt::", "root_type"},
	{"rd::", "root_depth"},
	{"gf::", "growth_form"},
	{"st::", "stress_tolerance"},
}

// BuildNetwork builds the trait network for a filtered subset. One link per
// plant-value occurrence; nodes dedupe by id in first-occurrence order.
func BuildNetwork(view TraitView) *NetworkGraph {
	g := &NetworkGraph{
		Nodes: []NetworkNode{},
		Links: []NetworkLink{},
	}
	index := make(map[string]int)
	addNode := func(id, label, group string) {
		if _, ok := index[id]; ok {
			return
		}
		index[id] = len(g.Nodes)
		g.Nodes = append(g.Nodes, NetworkNode{ID: id, Label: label, Group: group})
	}

	keep := topTokenSet(view, networkTokenCap)

	for i := 0; i < view.Len(); i++ {
		p := view.Plant(i)
		if p == nil {
			continue
		}
		pid := "p::" + p.ID
		addNode(pid, p.DisplayName, "plant")

		for _, tier := range networkTraitTiers {
			val := view.Trait(i, tier.key)
			nid := tier.prefix + val
			addNode(nid, val, TraitDisplayName(tier.key))
			g.Links = append(g.Links, NetworkLink{Source: pid, Target: nid})
		}

		for _, tok := range SplitAdaptations(p.Adaptations) {
			if !keep[tok] {
				continue
			}
			nid := "ad::" + tok
			addNode(nid, tok, "Adaptation")
			g.Links = append(g.Links, NetworkLink{Source: pid, Target: nid})
		}
	}

	return g
}
