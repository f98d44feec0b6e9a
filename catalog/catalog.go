package catalog

import (
	"sort"
	"strings"
)

// ============================================================================
// CATALOG — Canonical plant records + startup-derived lookup structures
// ============================================================================
// Built once by Normalize() from the raw table and never mutated afterwards.
// Filtered subsets are views into Plants (see engine package) — the catalog
// itself is the single owner of the data.
// ============================================================================

// Unknown is the sentinel for absent or blank categorical values.
const Unknown = "Unknown"

// Plant is a single catalog row with canonical trait fields.
type Plant struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`

	RootType           string `json:"rootType"`
	RootDepth          string `json:"rootDepth"`
	GrowthForm         string `json:"growthForm"`
	LeafTraits         string `json:"leafTraits"`
	ReproductiveTraits string `json:"reproductiveTraits"`
	StressTolerance    string `json:"stressTolerance"`

	// Adaptations is free text; semantically multi-value (delimiters ; , /).
	// Tokens are derived by consumers, never stored.
	Adaptations string `json:"adaptations"`

	Usage UsageFlags `json:"usage"`
}

// UsageFlags are the derived boolean use categories.
type UsageFlags struct {
	Vegetable  bool `json:"vegetable"`
	Fruit      bool `json:"fruit"`
	Medicinal  bool `json:"medicinal"`
	Commercial bool `json:"commercial"`
	Ornamental bool `json:"ornamental"`
	Fodder     bool `json:"fodder"`
}

// UsageTags is the fixed tag order for Tags() and filter options.
var UsageTags = []string{"Vegetable", "Fruit", "Medicinal", "Commercial", "Ornamental", "Fodder"}

// Tags returns the names of the flags that are set, in UsageTags order.
func (u UsageFlags) Tags() []string {
	flags := []bool{u.Vegetable, u.Fruit, u.Medicinal, u.Commercial, u.Ornamental, u.Fodder}
	var tags []string
	for i, on := range flags {
		if on {
			tags = append(tags, UsageTags[i])
		}
	}
	return tags
}

// Has reports whether the named tag is set. Tag match is case-insensitive.
func (u UsageFlags) Has(tag string) bool {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "vegetable":
		return u.Vegetable
	case "fruit", "fruits":
		return u.Fruit
	case "medicinal":
		return u.Medicinal
	case "commercial":
		return u.Commercial
	case "ornamental":
		return u.Ornamental
	case "fodder":
		return u.Fodder
	}
	return false
}

// VegetableLabel returns the Yes/No label used by filters and encoders.
func (p *Plant) VegetableLabel() string {
	if p.Usage.Vegetable {
		return "Yes"
	}
	return "No"
}

// Summary is the list/search item served to selection UIs.
type Summary struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Category    string `json:"category"`
	Vegetable   string `json:"vegetable"`
}

// FilterOptions holds, per filterable field, the sorted distinct observed
// values (including Unknown). Every value served occurs in at least one record.
type FilterOptions struct {
	RootTypes        []string `json:"rootTypes"`
	RootDepths       []string `json:"rootDepths"`
	GrowthForms      []string `json:"growthForms"`
	StressTolerances []string `json:"stressTolerances"`
	Vegetable        []string `json:"vegetable"`
	Usage            []string `json:"usage"`
}

// Catalog is the immutable startup product: ordered records plus the
// precomputed filter options and category index.
type Catalog struct {
	Plants     []Plant
	Options    FilterOptions
	Categories map[string][]Summary

	byID map[string]int // id → first-occurrence index
}

// Len returns the number of catalog records.
func (c *Catalog) Len() int { return len(c.Plants) }

// Lookup returns the plant with the given id, or false when unknown.
// Duplicate ids resolve to the first occurrence.
func (c *Catalog) Lookup(id string) (*Plant, bool) {
	i, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return &c.Plants[i], true
}

// DisplayNameOf resolves an id to its display name, echoing the id back
// when the plant is unknown.
func (c *Catalog) DisplayNameOf(id string) string {
	if p, ok := c.Lookup(id); ok {
		return p.DisplayName
	}
	return id
}

// Summaries returns the full plant list in catalog order.
func (c *Catalog) Summaries() []Summary {
	out := make([]Summary, 0, len(c.Plants))
	for i := range c.Plants {
		out = append(out, c.summaryOf(&c.Plants[i]))
	}
	return out
}

// Search scans DisplayName and ID for a case-insensitive substring match,
// capped to 10 results in catalog order. An empty query matches everything.
func (c *Catalog) Search(q string) []Summary {
	q = strings.ToLower(strings.TrimSpace(q))
	var out []Summary
	for i := range c.Plants {
		p := &c.Plants[i]
		if strings.Contains(strings.ToLower(p.ID), q) ||
			strings.Contains(strings.ToLower(p.DisplayName), q) {
			out = append(out, c.summaryOf(p))
			if len(out) == 10 {
				break
			}
		}
	}
	return out
}

// ByCategory returns the membership list for a category index key.
// Unknown keys return an empty list, never an error.
func (c *Catalog) ByCategory(name string) []Summary {
	return c.Categories[name]
}

func (c *Catalog) summaryOf(p *Plant) Summary {
	return Summary{
		ID:          p.ID,
		DisplayName: p.DisplayName,
		Category:    CategoryOf(p),
		Vegetable:   p.VegetableLabel(),
	}
}

// ============================================================================
// STARTUP DERIVATIONS — filter options + category index
// ============================================================================

// CategoryOf buckets a plant by growth form substring, first match wins.
func CategoryOf(p *Plant) string {
	form := strings.ToLower(p.GrowthForm)
	switch {
	case strings.Contains(form, "tree"):
		return "Tree"
	case strings.Contains(form, "shrub"):
		return "Shrub"
	case strings.Contains(form, "herb"):
		return "Herb"
	case strings.Contains(form, "vine"), strings.Contains(form, "climber"):
		return "Vine"
	}
	return "Other"
}

func buildOptions(plants []Plant) FilterOptions {
	return FilterOptions{
		RootTypes:        distinctSorted(plants, func(p *Plant) string { return p.RootType }),
		RootDepths:       distinctSorted(plants, func(p *Plant) string { return p.RootDepth }),
		GrowthForms:      distinctSorted(plants, func(p *Plant) string { return p.GrowthForm }),
		StressTolerances: distinctSorted(plants, func(p *Plant) string { return p.StressTolerance }),
		Vegetable:        distinctSorted(plants, func(p *Plant) string { return p.VegetableLabel() }),
		Usage:            observedTags(plants),
	}
}

func distinctSorted(plants []Plant, get func(*Plant) string) []string {
	seen := make(map[string]bool)
	var vals []string
	for i := range plants {
		v := get(&plants[i])
		if v != "" && !seen[v] {
			seen[v] = true
			vals = append(vals, v)
		}
	}
	sort.Strings(vals)
	return vals
}

// observedTags returns the usage tags set on at least one plant, in the
// fixed UsageTags order (not alphabetical — the order is a UI contract).
func observedTags(plants []Plant) []string {
	seen := make(map[string]bool)
	for i := range plants {
		for _, tag := range plants[i].Usage.Tags() {
			seen[tag] = true
		}
	}
	var tags []string
	for _, tag := range UsageTags {
		if seen[tag] {
			tags = append(tags, tag)
		}
	}
	return tags
}

func buildCategories(plants []Plant, summaryOf func(*Plant) Summary) map[string][]Summary {
	cats := make(map[string][]Summary)
	for i := range plants {
		p := &plants[i]
		s := summaryOf(p)
		cats[s.Category] = append(cats[s.Category], s)
		if p.Usage.Vegetable {
			cats["Edible"] = append(cats["Edible"], s)
		}
		if strings.Contains(strings.ToLower(p.StressTolerance), "drought") {
			cats["Drought Tolerant"] = append(cats["Drought Tolerant"], s)
		}
	}
	return cats
}
