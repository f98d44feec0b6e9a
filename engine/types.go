package engine

// ============================================================================
// VERDEX ENGINE TYPES — Trait Analytics
// ============================================================================
// Query goes in, a render-ready Result comes out. Payload shapes mirror the
// wire format the frontends consume, so builders marshal straight through.
//
// Dependency note: engine depends only on catalog and gonum.
// ============================================================================

// ============================================================================
// QUERY — which records to include
// ============================================================================

// Query selects a catalog subset. Fields are AND-combined; values within a
// field are OR-combined (exact match). Usage is ANY-of, case-insensitive.
// Empty = all records.
type Query struct {
	Plants           []string `json:"plants,omitempty"`
	RootTypes        []string `json:"rootTypes,omitempty"`
	RootDepths       []string `json:"rootDepths,omitempty"`
	GrowthForms      []string `json:"growthForms,omitempty"`
	StressTolerances []string `json:"stressTolerances,omitempty"`
	Vegetable        []string `json:"vegetable,omitempty"`
	Usage            []string `json:"usage,omitempty"`
}

// IsEmpty returns true if no constraints are set.
func (q Query) IsEmpty() bool {
	return len(q.Plants) == 0 &&
		len(q.RootTypes) == 0 &&
		len(q.RootDepths) == 0 &&
		len(q.GrowthForms) == 0 &&
		len(q.StressTolerances) == 0 &&
		len(q.Vegetable) == 0 &&
		len(q.Usage) == 0
}

// ============================================================================
// RESULT — render-ready output
// ============================================================================

// Result is the executor's output envelope. Data holds the op-specific
// payload; handlers and the CLI marshal it as-is.
type Result struct {
	Op    string      `json:"op"`
	Reply string      `json:"reply"`
	Meta  Meta        `json:"meta"`
	Data  interface{} `json:"data"`
}

// Meta carries subset bookkeeping for every op.
type Meta struct {
	Total   int `json:"total"`   // catalog size
	Matched int `json:"matched"` // records after filtering
}

// ============================================================================
// COUNT PAYLOADS
// ============================================================================

// RootCounts is the traits op payload.
type RootCounts struct {
	Counts map[string]int `json:"root_counts"`
}

// StressCounts is the stress op payload.
type StressCounts struct {
	Counts map[string]int `json:"stress_counts"`
}

// VegetableCounts is the vegetables op payload.
type VegetableCounts struct {
	Counts map[string]int `json:"veg_counts"`
}

// ============================================================================
// TEXT PAYLOADS — word cloud + adaptation listing
// ============================================================================

// WordCloud holds parallel term/count arrays, most frequent first.
type WordCloud struct {
	Terms  []string `json:"terms"`
	Counts []int    `json:"counts"`
}

// AdaptationItem is one row of the adaptation listing.
type AdaptationItem struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Adaptations string `json:"adaptations"`
	Vegetable   string `json:"vegetable"`
}

// AdaptationList is the adaptations op payload.
type AdaptationList struct {
	Items []AdaptationItem `json:"items"`
}

// ============================================================================
// GRAPH PAYLOADS — sunburst, sankey, network
// ============================================================================

// SunburstData holds the parallel label/parent/value arrays of a
// four-level hierarchy (All → growth form → leaf trait → plant).
type SunburstData struct {
	Labels  []string `json:"labels"`
	Parents []string `json:"parents"`
	Values  []int    `json:"values"`
}

// SankeyData is a three-tier flow: stress → adaptation token → plant.
// Nodes is the label array; link endpoints are indices into it.
type SankeyData struct {
	Nodes []string     `json:"nodes"`
	Links []SankeyLink `json:"links"`
}

// SankeyLink is one flow edge. One link per occurrence — parallel edges
// between the same endpoints are intentional.
type SankeyLink struct {
	Source int `json:"source"`
	Target int `json:"target"`
	Value  int `json:"value"`
}

// NetworkGraph is the plant/trait bipartite graph.
type NetworkGraph struct {
	Nodes []NetworkNode `json:"nodes"`
	Links []NetworkLink `json:"links"`
}

// NetworkNode ids are content-addressed "prefix::value" strings, so the
// same trait value across plants lands on one shared node.
type NetworkNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Group string `json:"group"`
}

// NetworkLink endpoints reference node ids.
type NetworkLink struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// ============================================================================
// COMPARISON PAYLOADS — compare + radar
// ============================================================================

// Comparison holds raw trait values for an explicit plant selection.
// Values maps id → trait display label → raw value; an unknown id keeps
// an empty inner map so the frontend still renders its column.
type Comparison struct {
	Plants       []string                     `json:"plants"`
	DisplayNames []string                     `json:"displayNames"`
	Traits       []string                     `json:"traits"`
	Values       map[string]map[string]string `json:"values"`
}

// RadarData holds per-plant trait profiles normalized to [0,1].
type RadarData struct {
	Categories []string      `json:"categories"`
	Series     []RadarSeries `json:"series"`
}

// RadarSeries is one plant's normalized profile, values parallel to
// Categories.
type RadarSeries struct {
	Name        string    `json:"name"`
	DisplayName string    `json:"displayName"`
	Values      []float64 `json:"values"`
}

// ============================================================================
// SIMILARITY + CLUSTER PAYLOADS
// ============================================================================

// Neighbor is one nearest-neighbor hit.
type Neighbor struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"displayName"`
	Distance    float64 `json:"distance"`
}

// SimilarResult is the similar op payload.
type SimilarResult struct {
	Similar []Neighbor `json:"similar"`
}

// ClusterPoint is one plant's 2-D projection plus cluster assignment.
type ClusterPoint struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"displayName"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Cluster     int     `json:"cluster"`
}

// ClusterResult is the clusters op payload.
type ClusterResult struct {
	Points []ClusterPoint `json:"points"`
}
