// Package verdex provides a trait analytics engine for plant catalogs.
//
// Usage:
//
//	import (
//	    "github.com/verdex-org/verdex/engine"
//	    "github.com/verdex-org/verdex/helpers"
//	)
//
//	cat, err := helpers.LoadCatalog("plants.csv")
//	ectx := engine.NewContext(cat, engine.WithClusterCache(true))
//	result, err := engine.Execute(ectx, engine.Request{
//	    Op:    engine.OpSunburst,
//	    Query: engine.Query{GrowthForms: []string{"Tree", "Shrub"}},
//	})
//
// The engine takes a Request (an operation name plus a trait filter) and a
// context precomputed from the catalog, and returns render-ready output
// (counts, hierarchy/flow/graph structures, profiles, projections).
//
// Serving is handled separately by the server package. The engine never
// calls any external service — all computation is local and deterministic.
package verdex
