package engine

import (
	"math"
	"math/rand"
	"strings"
	"sync"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ============================================================================
// CLUSTERING — one-hot → PCA(2) → seeded k-means
// ============================================================================
// The whole pipeline is deterministic for a given subset: encoder
// vocabularies are catalog-fit, PCA is an exact SVD, and k-means runs off a
// constant-seed source with permutation-chosen initial centroids. The same
// request always returns the same picture.
// ============================================================================

const (
	kmeansSeed    = 42
	kmeansMaxIter = 100
	kmeansTol     = 1e-4
)

// clusterModeColumns maps a focus mode to its encoding column subset.
var clusterModeColumns = map[string][]string{
	"morphology": {"root_type", "root_depth", "growth_form", "leaf_traits", "reproductive_traits"},
	"stress":     {"stress_tolerance", "special_adaptations"},
	"usage":      {"vegetable", "fruit", "medicinal", "commercial", "ornamental", "fodder"},
}

// ClusterColumns resolves a mode label to trait columns. Composite modes
// join parts with '+' ("morphology+stress"; "combined" is its alias) and
// union the parts in order. Unrecognized or empty modes fall back to the
// full encoding set.
func ClusterColumns(mode string) []string {
	mode = strings.ToLower(strings.TrimSpace(mode))
	if mode == "combined" {
		mode = "morphology+stress"
	}
	if cols, ok := clusterModeColumns[mode]; ok {
		return cols
	}
	if strings.Contains(mode, "+") {
		seen := make(map[string]bool)
		var out []string
		for _, part := range strings.Split(mode, "+") {
			cols, ok := clusterModeColumns[strings.TrimSpace(part)]
			if !ok {
				out = nil
				break
			}
			for _, c := range cols {
				if !seen[c] {
					seen[c] = true
					out = append(out, c)
				}
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return TraitKeys()
}

// BuildClusters encodes a subset over the mode's columns, projects to two
// components and partitions into min(k, subset size) groups. Points come
// back in subset order with coordinates rounded to 4 places.
func BuildClusters(ctx *Context, view TraitView, mode string, k int) []ClusterPoint {
	n := view.Len()
	if n == 0 {
		return []ClusterPoint{}
	}

	data, rows, width := ctx.enc.OneHotMatrix(view, ClusterColumns(mode))
	coords := projectPCA(data, rows, width)

	effK := k
	if effK < 1 {
		effK = 1
	}
	if effK > n {
		effK = n
	}
	labels := kmeans(coords, n, effK)

	points := make([]ClusterPoint, 0, n)
	for i := 0; i < n; i++ {
		p := view.Plant(i)
		if p == nil {
			continue
		}
		points = append(points, ClusterPoint{
			ID:          p.ID,
			DisplayName: p.DisplayName,
			X:           RoundTo4(coords[2*i]),
			Y:           RoundTo4(coords[2*i+1]),
			Cluster:     labels[i],
		})
	}
	return points
}

// projectPCA maps the rows×cols one-hot matrix onto its first two principal
// components. Degenerate inputs (under 2 rows, zero width, failed
// decomposition) yield all-zero coordinates; a single usable component
// leaves y at 0.
func projectPCA(data []float64, rows, cols int) []float64 {
	out := make([]float64, rows*2)
	if rows < 2 || cols == 0 {
		return out
	}

	m := mat.NewDense(rows, cols, data)
	var pc stat.PC
	if !pc.PrincipalComponents(m, nil) {
		return out
	}

	d := 2
	if cols < 2 {
		d = cols
	}
	var vec mat.Dense
	pc.VectorsTo(&vec)

	var proj mat.Dense
	proj.Mul(m, vec.Slice(0, cols, 0, d))

	for i := 0; i < rows; i++ {
		out[2*i] = proj.At(i, 0)
		if d > 1 {
			out[2*i+1] = proj.At(i, 1)
		}
	}
	return out
}

// kmeans runs Lloyd iterations over 2-D points. Initial centroids are k
// index-distinct points picked by a seeded permutation; an empty cluster
// keeps its previous centroid.
func kmeans(coords []float64, n, k int) []int {
	labels := make([]int, n)
	if k <= 1 || n == 0 {
		return labels
	}

	rng := rand.New(rand.NewSource(kmeansSeed))
	perm := rng.Perm(n)
	centroids := make([][2]float64, k)
	for c := 0; c < k; c++ {
		p := perm[c]
		centroids[c] = [2]float64{coords[2*p], coords[2*p+1]}
	}

	for iter := 0; iter < kmeansMaxIter; iter++ {
		for i := 0; i < n; i++ {
			best, bestD := 0, math.MaxFloat64
			for c := 0; c < k; c++ {
				dx := coords[2*i] - centroids[c][0]
				dy := coords[2*i+1] - centroids[c][1]
				if d := dx*dx + dy*dy; d < bestD {
					bestD = d
					best = c
				}
			}
			labels[i] = best
		}

		counts := make([]int, k)
		sums := make([][2]float64, k)
		for i := 0; i < n; i++ {
			c := labels[i]
			counts[c]++
			sums[c][0] += coords[2*i]
			sums[c][1] += coords[2*i+1]
		}

		var shift float64
		for c := 0; c < k; c++ {
			if counts[c] == 0 {
				continue
			}
			nx := sums[c][0] / float64(counts[c])
			ny := sums[c][1] / float64(counts[c])
			dx := nx - centroids[c][0]
			dy := ny - centroids[c][1]
			shift += dx*dx + dy*dy
			centroids[c] = [2]float64{nx, ny}
		}
		if shift <= kmeansTol {
			break
		}
	}
	return labels
}

// ============================================================================
// CLUSTER CACHE — process-lifetime memo for recomputed clusterings
// ============================================================================

// clusterCache stores finished point sets keyed by (query, mode, k).
// Entries are never evicted; stored slices are read-only by convention.
type clusterCache struct {
	mu      sync.RWMutex
	entries map[string][]ClusterPoint
}

func newClusterCache() *clusterCache {
	return &clusterCache{entries: make(map[string][]ClusterPoint)}
}

func (c *clusterCache) get(key string) ([]ClusterPoint, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	pts, ok := c.entries[key]
	return pts, ok
}

func (c *clusterCache) put(key string, pts []ClusterPoint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = pts
}
