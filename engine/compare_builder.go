package engine

// ============================================================================
// COMPARE BUILDER — side-by-side tables + radar profiles
// ============================================================================
// Both ops take an explicit ordered id list, not a filter query: the caller
// names exactly which plants sit side by side. Comparison serves raw trait
// strings; radar serves ordinal codes normalized against the catalog-wide
// maximum per column so shapes stay comparable across requests.
// ============================================================================

// BuildComparison returns the raw trait values for an ordered plant
// selection. Request order is echoed; an unknown id keeps its column with
// an empty value map and its id as display name. An empty selection yields
// an empty payload, not an error.
func BuildComparison(ctx *Context, ids []string) *Comparison {
	cmp := &Comparison{
		Plants:       []string{},
		DisplayNames: []string{},
		Traits:       []string{},
		Values:       map[string]map[string]string{},
	}
	if len(ids) == 0 {
		return cmp
	}

	keys := TraitKeys()
	cmp.Traits = make([]string, len(keys))
	for i, k := range keys {
		cmp.Traits[i] = TraitDisplayName(k)
	}

	for _, id := range ids {
		cmp.Plants = append(cmp.Plants, id)
		cmp.DisplayNames = append(cmp.DisplayNames, ctx.cat.DisplayNameOf(id))

		vals := make(map[string]string)
		if p, ok := ctx.cat.Lookup(id); ok {
			for _, k := range keys {
				vals[TraitDisplayName(k)] = TraitOf(p, k)
			}
		}
		cmp.Values[id] = vals
	}
	return cmp
}

// BuildRadar returns normalized trait profiles for an ordered plant
// selection. Unknown ids are skipped; categories are always the eight trait
// labels. Per column, codes divide by max(1, catalog-wide max code).
func BuildRadar(ctx *Context, ids []string) *RadarData {
	keys := TraitKeys()
	data := &RadarData{
		Categories: make([]string, len(keys)),
		Series:     []RadarSeries{},
	}
	for i, k := range keys {
		data.Categories[i] = TraitDisplayName(k)
	}

	for _, id := range ids {
		p, ok := ctx.cat.Lookup(id)
		if !ok {
			continue
		}
		values := make([]float64, len(keys))
		for i, k := range keys {
			code, ok := ctx.enc.Code(k, TraitOf(p, k))
			if !ok {
				code = 0
			}
			maxCode := ctx.enc.Cardinality(k) - 1
			if maxCode < 1 {
				maxCode = 1
			}
			values[i] = float64(code) / float64(maxCode)
		}
		data.Series = append(data.Series, RadarSeries{
			Name:        p.ID,
			DisplayName: p.DisplayName,
			Values:      values,
		})
	}
	return data
}
