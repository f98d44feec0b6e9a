package engine

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/verdex-org/verdex/catalog"
)

// ============================================================================
// EXECUTOR — Operation Dispatch
// ============================================================================
// Entry point: Execute(ctx, req)
//
// Pipeline:
//   1. Apply the query filter → SubView (zero-copy)
//   2. Dispatch to the op's builder
//   3. Wrap the payload in a Result with subset meta and a one-line reply
//
// All computation is local and deterministic. The only error is an unknown
// op name — every builder is total over its inputs.
// ============================================================================

// Operation names.
const (
	OpFilterOptions    = "filter-options"
	OpPlantList        = "plant-list"
	OpPlantSearch      = "plant-search"
	OpPlantsByCategory = "plants-by-category"
	OpTraits           = "traits"
	OpStress           = "stress"
	OpVegetables       = "vegetables"
	OpWordCloud        = "wordcloud"
	OpAdaptations      = "adaptations"
	OpSunburst         = "sunburst"
	OpSankey           = "sankey"
	OpNetwork          = "network"
	OpCompare          = "compare"
	OpRadar            = "radar"
	OpSimilar          = "similar"
	OpClusters         = "clusters"
)

// Ops returns every operation name the executor accepts, in serving order.
func Ops() []string {
	return []string{
		OpFilterOptions, OpPlantList, OpPlantSearch, OpPlantsByCategory,
		OpTraits, OpStress, OpVegetables, OpWordCloud, OpAdaptations,
		OpSunburst, OpSankey, OpNetwork, OpCompare, OpRadar, OpSimilar,
		OpClusters,
	}
}

// Request describes one operation invocation.
type Request struct {
	Op       string   `json:"op"`
	Query    Query    `json:"query"`
	Q        string   `json:"q,omitempty"`        // plant-search substring
	Category string   `json:"category,omitempty"` // plants-by-category key
	Plant    string   `json:"plant,omitempty"`    // similar target id
	Plants   []string `json:"plants,omitempty"`   // compare/radar selection
	Mode     string   `json:"mode,omitempty"`     // clusters focus mode
	K        int      `json:"k,omitempty"`        // clusters partition count
}

// Execute runs one request against the context and returns a render-ready
// Result. Errors only on an unknown op.
func Execute(ctx *Context, req Request) (*Result, error) {
	filtered := ApplyFilters(ctx.view, req.Query)

	result := &Result{
		Op:   req.Op,
		Meta: Meta{Total: ctx.view.Len(), Matched: filtered.Len()},
	}

	log.Printf("🔍 Verdex: op=%s matched=%d/%d", req.Op, filtered.Len(), ctx.view.Len())

	switch req.Op {
	case OpFilterOptions:
		result.Data = ctx.cat.Options
		result.Reply = fmt.Sprintf("Filter options across %s plants.", FormatInt(ctx.cat.Len()))

	case OpPlantList:
		list := ctx.cat.Summaries()
		result.Data = list
		result.Reply = fmt.Sprintf("Catalog lists %s plants.", FormatInt(len(list)))

	case OpPlantSearch:
		q := strings.TrimSpace(req.Q)
		matches := []catalog.Summary{}
		if q != "" {
			matches = ctx.cat.Search(q)
		}
		result.Data = matches
		result.Reply = fmt.Sprintf("%s plants match %q.", FormatInt(len(matches)), q)

	case OpPlantsByCategory:
		items := ctx.cat.ByCategory(req.Category)
		if items == nil {
			items = []catalog.Summary{}
		}
		result.Data = items
		result.Reply = fmt.Sprintf("%s plants in category %q.", FormatInt(len(items)), req.Category)

	case OpTraits:
		result.Data = &RootCounts{Counts: CountByTrait(filtered, "root_type")}
		result.Reply = fmt.Sprintf("Root type distribution across %s plants.", FormatInt(filtered.Len()))

	case OpStress:
		result.Data = &StressCounts{Counts: CountByTrait(filtered, "stress_tolerance")}
		result.Reply = fmt.Sprintf("Stress tolerance distribution across %s plants.", FormatInt(filtered.Len()))

	case OpVegetables:
		result.Data = &VegetableCounts{Counts: CountByTrait(filtered, "vegetable")}
		result.Reply = fmt.Sprintf("Vegetable split across %s plants.", FormatInt(filtered.Len()))

	case OpWordCloud:
		cloud := BuildWordCloud(filtered)
		result.Data = cloud
		result.Reply = fmt.Sprintf("Top %s adaptation terms.", FormatInt(len(cloud.Terms)))

	case OpAdaptations:
		items := AdaptationItems(filtered)
		if items == nil {
			items = []AdaptationItem{}
		}
		result.Data = &AdaptationList{Items: items}
		result.Reply = fmt.Sprintf("%s plants with recorded adaptations.", FormatInt(len(items)))

	case OpSunburst:
		result.Data = BuildSunburst(filtered)
		result.Reply = fmt.Sprintf("Growth form hierarchy across %s plants.", FormatInt(filtered.Len()))

	case OpSankey:
		result.Data = BuildSankey(filtered)
		result.Reply = fmt.Sprintf("Stress-to-adaptation flows across %s plants.", FormatInt(filtered.Len()))

	case OpNetwork:
		graph := BuildNetwork(filtered)
		result.Data = graph
		result.Reply = fmt.Sprintf("Trait network with %s nodes.", FormatInt(len(graph.Nodes)))

	case OpCompare:
		result.Data = BuildComparison(ctx, req.Plants)
		result.Reply = fmt.Sprintf("Comparing %s plants.", FormatInt(len(req.Plants)))

	case OpRadar:
		radar := BuildRadar(ctx, req.Plants)
		result.Data = radar
		result.Reply = fmt.Sprintf("Trait profiles for %s plants.", FormatInt(len(radar.Series)))

	case OpSimilar:
		similar := Similar(ctx, req.Plant)
		result.Data = &SimilarResult{Similar: similar}
		result.Reply = fmt.Sprintf("%s plants similar to %q.", FormatInt(len(similar)), req.Plant)

	case OpClusters:
		points := executeClusters(ctx, filtered, req)
		result.Data = &ClusterResult{Points: points}
		result.Reply = fmt.Sprintf("Projected %s plants.", FormatInt(len(points)))

	default:
		return nil, fmt.Errorf("unknown operation %q", req.Op)
	}

	return result, nil
}

// executeClusters picks between the startup-precomputed projection and a
// fresh run. The default projection serves exactly the (no mode, default k)
// shape; anything else recomputes over the filtered subset, memoized when
// the cache is on.
func executeClusters(ctx *Context, filtered TraitView, req Request) []ClusterPoint {
	if req.Mode == "" && (req.K == 0 || req.K == ctx.defaultK) {
		return ctx.DefaultClusters(filtered)
	}

	k := req.K
	if k == 0 {
		k = ctx.defaultK
	}

	if ctx.cache == nil {
		return BuildClusters(ctx, filtered, req.Mode, k)
	}

	key := clusterCacheKey(req.Query, req.Mode, k)
	if pts, ok := ctx.cache.get(key); ok {
		log.Printf("📋 Verdex: cluster cache hit key=%s", key)
		return pts
	}
	pts := BuildClusters(ctx, filtered, req.Mode, k)
	ctx.cache.put(key, pts)
	return pts
}

// clusterCacheKey canonicalizes a (query, mode, k) triple. Value order
// within a query field is irrelevant to filtering, so values are sorted
// before joining.
func clusterCacheKey(q Query, mode string, k int) string {
	var b strings.Builder
	writeField := func(name string, vals []string) {
		if len(vals) == 0 {
			return
		}
		sorted := append([]string(nil), vals...)
		sort.Strings(sorted)
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(strings.Join(sorted, ","))
		b.WriteByte(';')
	}
	writeField("plants", q.Plants)
	writeField("rootTypes", q.RootTypes)
	writeField("rootDepths", q.RootDepths)
	writeField("growthForms", q.GrowthForms)
	writeField("stressTolerances", q.StressTolerances)
	writeField("vegetable", q.Vegetable)
	writeField("usage", q.Usage)
	b.WriteString("mode=")
	b.WriteString(strings.ToLower(strings.TrimSpace(mode)))
	b.WriteString(";k=")
	b.WriteString(strconv.Itoa(k))
	return b.String()
}
