package engine

import (
	"strings"
	"testing"

	"github.com/verdex-org/verdex/catalog"
)

// ============================================================================
// EXECUTOR — dispatch, meta, reply lines
// ============================================================================

func runOp(t *testing.T, ctx *Context, req Request) *Result {
	t.Helper()
	res, err := Execute(ctx, req)
	if err != nil {
		t.Fatalf("op %s: %v", req.Op, err)
	}
	return res
}

func TestExecuteMeta(t *testing.T) {
	ctx := gardenContext()
	res := runOp(t, ctx, Request{Op: OpTraits, Query: Query{GrowthForms: []string{"Herb"}}})

	assertEqual(t, res.Op, OpTraits, "op echoed")
	assertInt(t, res.Meta.Total, 10, "total")
	assertInt(t, res.Meta.Matched, 4, "matched")
	assertEqual(t, res.Reply, "Root type distribution across 4 plants.", "reply")

	counts := res.Data.(*RootCounts).Counts
	assertInt(t, counts["Fibrous root"], 4, "filtered counts")
	assertInt(t, len(counts), 1, "herbs share one root type")
}

func TestExecuteUnknownOp(t *testing.T) {
	_, err := Execute(gardenContext(), Request{Op: "histogram"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "histogram") {
		t.Errorf("error should name the op: %v", err)
	}
}

func TestExecuteEveryOp(t *testing.T) {
	ctx := gardenContext()
	for _, op := range Ops() {
		res, err := Execute(ctx, Request{Op: op, Plant: "Mango", Plants: []string{"Mango"}})
		if err != nil {
			t.Errorf("op %s: %v", op, err)
			continue
		}
		if res.Data == nil {
			t.Errorf("op %s: nil payload", op)
		}
		if res.Reply == "" {
			t.Errorf("op %s: empty reply", op)
		}
	}
	assertInt(t, len(Ops()), 16, "op count")
}

func TestExecuteFilterOptions(t *testing.T) {
	res := runOp(t, gardenContext(), Request{Op: OpFilterOptions})

	opts := res.Data.(catalog.FilterOptions)
	assertStrings(t, opts.GrowthForms, []string{"Climber", "Herb", "Shrub", "Succulent", "Tree"}, "growth forms")
	assertEqual(t, res.Reply, "Filter options across 10 plants.", "reply")
}

func TestExecutePlantList(t *testing.T) {
	res := runOp(t, gardenContext(), Request{Op: OpPlantList})

	list := res.Data.([]catalog.Summary)
	assertInt(t, len(list), 10, "summary count")
	assertEqual(t, list[0].ID, "Mango", "catalog order")
	assertEqual(t, list[0].Category, "Tree", "category")
}

func TestExecutePlantSearch(t *testing.T) {
	ctx := gardenContext()

	res := runOp(t, ctx, Request{Op: OpPlantSearch, Q: "  man  "})
	matches := res.Data.([]catalog.Summary)
	assertInt(t, len(matches), 1, "trimmed substring match")
	assertEqual(t, matches[0].ID, "Mango", "match")
	assertEqual(t, res.Reply, `1 plants match "man".`, "reply")

	// A blank query matches nothing, not everything.
	res = runOp(t, ctx, Request{Op: OpPlantSearch, Q: "   "})
	assertInt(t, len(res.Data.([]catalog.Summary)), 0, "blank query")
}

func TestExecutePlantsByCategory(t *testing.T) {
	ctx := gardenContext()

	res := runOp(t, ctx, Request{Op: OpPlantsByCategory, Category: "Tree"})
	assertStrings(t, summaryIDs(res.Data.([]catalog.Summary)), []string{"Mango", "Neem", "Banyan"}, "trees")

	res = runOp(t, ctx, Request{Op: OpPlantsByCategory, Category: "Drought Tolerant"})
	assertInt(t, len(res.Data.([]catalog.Summary)), 5, "derived category")

	res = runOp(t, ctx, Request{Op: OpPlantsByCategory, Category: "Mosses"})
	items := res.Data.([]catalog.Summary)
	assertInt(t, len(items), 0, "unknown category")
	if items == nil {
		t.Error("unknown category should marshal to [] not null")
	}
}

func TestExecuteCountOps(t *testing.T) {
	ctx := gardenContext()

	stress := runOp(t, ctx, Request{Op: OpStress}).Data.(*StressCounts).Counts
	assertInt(t, stress["Drought tolerant"], 4, "stress counts")

	veg := runOp(t, ctx, Request{Op: OpVegetables}).Data.(*VegetableCounts).Counts
	assertInt(t, veg["Yes"], 2, "vegetable counts")
	assertInt(t, veg["No"], 8, "vegetable counts")
}

func TestExecuteWordCloudFiltered(t *testing.T) {
	ctx := gardenContext()
	res := runOp(t, ctx, Request{Op: OpWordCloud, Query: Query{GrowthForms: []string{"Herb"}}})

	cloud := res.Data.(*WordCloud)
	// Herbs: Spinach, Lettuce, Fern, Tulsi → rapid/growth x3 lead.
	assertEqual(t, cloud.Terms[0], "rapid", "top term")
	assertInt(t, cloud.Counts[0], 3, "top count")
}

func TestExecuteAdaptations(t *testing.T) {
	res := runOp(t, gardenContext(), Request{Op: OpAdaptations})

	items := res.Data.(*AdaptationList).Items
	assertInt(t, len(items), 9, "Fern's Unknown text drops out")
	assertEqual(t, items[0].ID, "Mango", "catalog order")
	assertEqual(t, res.Reply, "9 plants with recorded adaptations.", "reply")
}

func TestExecuteCompareAndRadar(t *testing.T) {
	ctx := gardenContext()

	cmp := runOp(t, ctx, Request{Op: OpCompare, Plants: []string{"Mango", "Rose"}}).Data.(*Comparison)
	assertStrings(t, cmp.Plants, []string{"Mango", "Rose"}, "selection passthrough")

	radar := runOp(t, ctx, Request{Op: OpRadar, Plants: []string{"Mango", "Dodo"}})
	assertInt(t, len(radar.Data.(*RadarData).Series), 1, "unknown id skipped")
	assertEqual(t, radar.Reply, "Trait profiles for 1 plants.", "reply counts series, not request")
}

func TestExecuteSimilar(t *testing.T) {
	res := runOp(t, gardenContext(), Request{Op: OpSimilar, Plant: "Mango"})

	similar := res.Data.(*SimilarResult).Similar
	assertInt(t, len(similar), 9, "neighbour count")
	assertEqual(t, similar[0].ID, "Neem", "nearest")
	assertEqual(t, res.Reply, `9 plants similar to "Mango".`, "reply")
}

func TestExecuteClustersDefaultPath(t *testing.T) {
	ctx := gardenContext()
	herbs := Query{GrowthForms: []string{"Herb"}}

	// No mode and k unset (or equal to the default) serve the precomputed
	// full-catalog projection restricted to the subset.
	res := runOp(t, ctx, Request{Op: OpClusters, Query: herbs})
	got := res.Data.(*ClusterResult).Points
	want := ctx.DefaultClusters(ApplyFilters(ctx.View(), herbs))
	assertInt(t, len(got), 4, "herb count")
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("point %d: got %+v, want precomputed %+v", i, got[i], want[i])
		}
	}

	res = runOp(t, ctx, Request{Op: OpClusters, Query: herbs, K: ctx.DefaultClusterK()})
	again := res.Data.(*ClusterResult).Points
	for i := range again {
		if again[i] != want[i] {
			t.Errorf("point %d: explicit default k should serve the same projection", i)
		}
	}
}

func TestExecuteClustersRecompute(t *testing.T) {
	ctx := gardenContext()
	herbs := Query{GrowthForms: []string{"Herb"}}

	res := runOp(t, ctx, Request{Op: OpClusters, Query: herbs, K: 2})
	got := res.Data.(*ClusterResult).Points
	want := BuildClusters(ctx, ApplyFilters(ctx.View(), herbs), "", 2)
	assertInt(t, len(got), 4, "herb count")
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("point %d: got %+v, want fresh run %+v", i, got[i], want[i])
		}
	}

	// A mode always recomputes, even at the default k.
	res = runOp(t, ctx, Request{Op: OpClusters, Mode: "usage", K: ctx.DefaultClusterK()})
	assertInt(t, len(res.Data.(*ClusterResult).Points), 10, "mode run covers the subset")
}

func TestExecuteClustersCache(t *testing.T) {
	ctx := gardenContext(WithClusterCache(true))
	req := Request{Op: OpClusters, Mode: "usage", K: 3}

	first := runOp(t, ctx, req).Data.(*ClusterResult).Points
	key := clusterCacheKey(req.Query, req.Mode, req.K)
	if _, ok := ctx.cache.get(key); !ok {
		t.Fatal("recomputed run should land in the cache")
	}

	second := runOp(t, ctx, req).Data.(*ClusterResult).Points
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("point %d differs on cache hit", i)
		}
	}

	// Default-path requests bypass the cache entirely.
	runOp(t, ctx, Request{Op: OpClusters})
	if _, ok := ctx.cache.get(clusterCacheKey(Query{}, "", ctx.defaultK)); ok {
		t.Error("default projection must not be cached")
	}
}

func TestClusterCacheKeyCanonical(t *testing.T) {
	a := clusterCacheKey(Query{GrowthForms: []string{"Tree", "Herb"}, Usage: []string{"Fruit"}}, " Usage ", 3)
	b := clusterCacheKey(Query{Usage: []string{"Fruit"}, GrowthForms: []string{"Herb", "Tree"}}, "usage", 3)
	assertEqual(t, a, b, "value order and mode spelling are canonical")

	c := clusterCacheKey(Query{GrowthForms: []string{"Tree", "Herb"}, Usage: []string{"Fruit"}}, "usage", 4)
	if a == c {
		t.Error("k must be part of the key")
	}
}

func TestWithDefaultClusterK(t *testing.T) {
	ctx := gardenContext(WithDefaultClusterK(2))
	assertInt(t, ctx.DefaultClusterK(), 2, "override")

	res := runOp(t, ctx, Request{Op: OpClusters, K: 2})
	got := res.Data.(*ClusterResult).Points
	want := ctx.DefaultClusters(ctx.View())
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("point %d: k equal to the configured default should serve the precomputed run", i)
		}
	}
}

func summaryIDs(items []catalog.Summary) []string {
	ids := make([]string, len(items))
	for i, s := range items {
		ids[i] = s.ID
	}
	return ids
}
