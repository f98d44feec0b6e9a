package engine

// ============================================================================
// ENGINE OPTIONS — Functional options for NewContext()
// ============================================================================

// Option configures engine behavior via functional options pattern.
type Option func(*config)

type config struct {
	DefaultClusterK int  // k for the startup-precomputed clustering
	ClusterCache    bool // cache recomputed cluster results per (query, mode, k)
	SimilarLimit    int  // nearest-neighbor result cap
}

// WithDefaultClusterK sets the partition count of the default clustering
// precomputed over the full catalog at startup.
func WithDefaultClusterK(k int) Option {
	return func(c *config) {
		if k > 0 {
			c.DefaultClusterK = k
		}
	}
}

// WithClusterCache toggles the in-process cache for recomputed clusterings.
// Cached entries live for the process lifetime.
func WithClusterCache(enabled bool) Option {
	return func(c *config) {
		c.ClusterCache = enabled
	}
}

// WithSimilarLimit caps how many neighbors the similar op returns.
func WithSimilarLimit(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.SimilarLimit = n
		}
	}
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		DefaultClusterK: 5,
		SimilarLimit:    10,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
