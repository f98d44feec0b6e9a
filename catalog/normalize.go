package catalog

import (
	"strings"
)

// ============================================================================
// NORMALIZE — raw table → canonical catalog
// ============================================================================
// Header reconciliation is rule-driven: each logical field lists its header
// candidates in preference order, matched case-insensitively with whitespace
// collapsed. A field whose candidates all miss is filled with Unknown (or
// false for flags) — ingestion never fails on shape.
// ============================================================================

type columnRule struct {
	field      string
	candidates []string
}

// columnRules is ordered; the first candidate present in the header wins.
var columnRules = []columnRule{
	{"plant", []string{"plant", "plant name", "name", "species"}},
	{"common_name", []string{"common name"}},
	{"root_type", []string{"root", "root type"}},
	{"root_depth", []string{"type", "root depth"}},
	{"growth_form", []string{"stem / growth form", "stem/growth form", "growth form"}},
	{"leaf_traits", []string{"leaf traits", "leaf trait"}},
	{"reproductive_traits", []string{"reproductive traits", "reproductive trait"}},
	{"stress_tolerance", []string{"stress tolerance"}},
	{"special_adaptations", []string{"special adaptations", "adaptations"}},
	{"vegetable", []string{"vegetable (yes/no)", "vegetable"}},
	{"fruit", []string{"fruit", "fruits"}},
	{"medicinal", []string{"medicinal plant", "medicinal"}},
	{"commercial", []string{"commercial crop", "commercial"}},
	{"ornamental", []string{"ornamental plant", "ornamental"}},
	{"fodder", []string{"fodder", "fodder crop"}},
}

// Normalize builds the catalog from a parsed table. Header and cell matching
// is total: missing columns become Unknown/false, blank cells become Unknown,
// and rows shorter than the header are padded. It never returns an error.
func Normalize(header []string, rows [][]string) *Catalog {
	cols := resolveColumns(header)

	plants := make([]Plant, 0, len(rows))
	for _, row := range rows {
		cell := func(field string) string {
			i, ok := cols[field]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		name := cell("plant")
		if name == "" {
			name = Unknown
		}
		display := cell("common_name")
		if display == "" || display == Unknown {
			display = name
		}

		plants = append(plants, Plant{
			ID:                 name,
			DisplayName:        display,
			RootType:           orUnknown(cell("root_type")),
			RootDepth:          orUnknown(cell("root_depth")),
			GrowthForm:         orUnknown(cell("growth_form")),
			LeafTraits:         orUnknown(cell("leaf_traits")),
			ReproductiveTraits: orUnknown(cell("reproductive_traits")),
			StressTolerance:    orUnknown(cell("stress_tolerance")),
			Adaptations:        orUnknown(cell("special_adaptations")),
			Usage: UsageFlags{
				Vegetable:  Truthy(cell("vegetable")),
				Fruit:      Truthy(cell("fruit")),
				Medicinal:  Truthy(cell("medicinal")),
				Commercial: Truthy(cell("commercial")),
				Ornamental: Truthy(cell("ornamental")),
				Fodder:     Truthy(cell("fodder")),
			},
		})
	}

	c := &Catalog{
		Plants: plants,
		byID:   make(map[string]int, len(plants)),
	}
	for i := range c.Plants {
		if _, dup := c.byID[c.Plants[i].ID]; !dup {
			c.byID[c.Plants[i].ID] = i
		}
	}
	c.Options = buildOptions(c.Plants)
	c.Categories = buildCategories(c.Plants, c.summaryOf)
	return c
}

// resolveColumns maps each logical field to the index of the first candidate
// header found. Fields with no match are absent from the result.
func resolveColumns(header []string) map[string]int {
	byKey := make(map[string]int, len(header))
	for i, h := range header {
		k := normKey(h)
		if _, taken := byKey[k]; !taken {
			byKey[k] = i
		}
	}

	cols := make(map[string]int, len(columnRules))
	for _, rule := range columnRules {
		for _, cand := range rule.candidates {
			if i, ok := byKey[cand]; ok {
				cols[rule.field] = i
				break
			}
		}
	}
	return cols
}

// normKey lowercases a header and collapses runs of whitespace so that
// "Stem /  Growth Form" and "stem / growth form" compare equal.
func normKey(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func orUnknown(v string) string {
	if v == "" {
		return Unknown
	}
	return v
}

// Truthy interprets a free-form flag cell. Explicit negatives and the
// Unknown sentinel are false; explicit affirmatives are true; any other
// non-empty text (e.g. "Leafy vegetable") counts as true.
func Truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "y", "yes", "true", "1":
		return true
	case "", "n", "no", "false", "0", "unknown", "none", "na", "n/a", "-":
		return false
	}
	return true
}
