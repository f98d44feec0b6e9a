package engine

import (
	"math"
	"sort"
)

// ============================================================================
// SIMILARITY — Nearest neighbors over ordinal trait vectors
// ============================================================================
// Distance is Euclidean over the catalog-wide ordinal codes of the eight
// trait columns. Squared distance ranks identically, so the square root is
// taken only for the reported value.
// ============================================================================

// Similar returns the closest plants to the given id, nearest first, capped
// by the context's similar limit. Ties keep catalog order; every record
// sharing the query id is excluded. Unknown ids return an empty slice.
func Similar(ctx *Context, id string) []Neighbor {
	p, ok := ctx.cat.Lookup(id)
	if !ok {
		return []Neighbor{}
	}
	base := ctx.vectors[ctx.indexOf[p]]

	type scored struct {
		index int
		d2    float64
	}
	cands := make([]scored, 0, len(ctx.vectors))
	for i := range ctx.vectors {
		if ctx.cat.Plants[i].ID == p.ID {
			continue
		}
		cands = append(cands, scored{index: i, d2: sqDist(base, ctx.vectors[i])})
	}
	sort.SliceStable(cands, func(a, b int) bool { return cands[a].d2 < cands[b].d2 })

	limit := ctx.similarLimit
	if limit > len(cands) {
		limit = len(cands)
	}
	out := make([]Neighbor, 0, limit)
	for _, c := range cands[:limit] {
		pl := &ctx.cat.Plants[c.index]
		out = append(out, Neighbor{
			ID:          pl.ID,
			DisplayName: pl.DisplayName,
			Distance:    math.Sqrt(c.d2),
		})
	}
	return out
}

func sqDist(a, b []float64) float64 {
	var d float64
	for i := range a {
		diff := a[i] - b[i]
		d += diff * diff
	}
	return d
}
