package engine

import (
	"log"

	"github.com/verdex-org/verdex/catalog"
)

// ============================================================================
// CONTEXT — Immutable startup product
// ============================================================================
// Built once from the catalog, then shared by every request without locks:
// encoder vocabularies, similarity vectors and the default clustering never
// change after NewContext returns. The only mutable member is the optional
// cluster cache, which carries its own lock.
// ============================================================================

// Context ties the catalog to its derived encoder tables and precomputed
// projections. Treat as read-only after construction.
type Context struct {
	cat     *catalog.Catalog
	view    TraitView
	enc     *Encoding
	vectors [][]float64            // catalog-order ordinal vectors over TraitKeys()
	indexOf map[*catalog.Plant]int // plant pointer → catalog position

	defaultK        int
	defaultClusters []ClusterPoint // full-catalog clustering, catalog order

	similarLimit int
	cache        *clusterCache
}

// NewContext fits the encoders over the full catalog, precomputes the
// similarity vectors and the default clustering, and returns the shared
// request context.
func NewContext(cat *catalog.Catalog, opts ...Option) *Context {
	cfg := applyOptions(opts)
	view := NewCatalogView(cat)

	keys := make([]string, 0, len(traitColumns)+len(usageColumns))
	for _, c := range traitColumns {
		keys = append(keys, c.key)
	}
	for _, c := range usageColumns {
		keys = append(keys, c.key)
	}

	ctx := &Context{
		cat:          cat,
		view:         view,
		enc:          NewEncoding(view, keys),
		vectors:      make([][]float64, cat.Len()),
		indexOf:      make(map[*catalog.Plant]int, cat.Len()),
		defaultK:     cfg.DefaultClusterK,
		similarLimit: cfg.SimilarLimit,
	}

	simKeys := TraitKeys()
	for i := range cat.Plants {
		p := &cat.Plants[i]
		ctx.indexOf[p] = i
		ctx.vectors[i] = ctx.enc.Vector(p, simKeys)
	}

	if cfg.ClusterCache {
		ctx.cache = newClusterCache()
	}
	ctx.defaultClusters = BuildClusters(ctx, view, "", ctx.defaultK)

	log.Printf("🔧 Verdex: context ready, %d plants, %d encoded columns, default k=%d",
		cat.Len(), len(keys), ctx.defaultK)
	return ctx
}

// Catalog returns the backing catalog.
func (ctx *Context) Catalog() *catalog.Catalog { return ctx.cat }

// View returns the root view over the full catalog.
func (ctx *Context) View() TraitView { return ctx.view }

// Encoding returns the catalog-fit encoder tables.
func (ctx *Context) Encoding() *Encoding { return ctx.enc }

// DefaultClusterK returns the k of the precomputed clustering.
func (ctx *Context) DefaultClusterK() int { return ctx.defaultK }

// DefaultClusters returns the startup-precomputed cluster points restricted
// to a view's records, in view order. The projection is NOT recomputed —
// coordinates and assignments are those of the full-catalog run.
func (ctx *Context) DefaultClusters(view TraitView) []ClusterPoint {
	points := make([]ClusterPoint, 0, view.Len())
	for i := 0; i < view.Len(); i++ {
		p := view.Plant(i)
		if p == nil {
			continue
		}
		if idx, ok := ctx.indexOf[p]; ok {
			points = append(points, ctx.defaultClusters[idx])
		}
	}
	return points
}
