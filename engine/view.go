package engine

import (
	"github.com/verdex-org/verdex/catalog"
)

// ============================================================================
// TRAIT VIEW — Zero-Copy Data Access Interface
// ============================================================================
// The engine never owns catalog data. It reads through this interface.
//
// Implementations:
//   CatalogView — wraps *catalog.Catalog (the full dataset)
//   SubView     — filtered subset (indices into parent, zero-copy)
//
// Builders call Plant/Trait in tight loops — keep implementations fast.
// ============================================================================

// TraitView provides indexed access to plant records and their trait columns.
type TraitView interface {
	Len() int
	Plant(index int) *catalog.Plant
	Trait(index int, key string) string
	TraitKeys() []string // encodable trait columns, fixed order
}

// ============================================================================
// TRAIT COLUMNS — the fixed column registry
// ============================================================================

type traitColumn struct {
	key     string
	display string
	get     func(*catalog.Plant) string
}

// traitColumns are the encodable columns, in the order encoders, comparison
// tables and radar categories present them.
var traitColumns = []traitColumn{
	{"root_type", "Root Type", func(p *catalog.Plant) string { return p.RootType }},
	{"root_depth", "Root Depth", func(p *catalog.Plant) string { return p.RootDepth }},
	{"growth_form", "Growth Form", func(p *catalog.Plant) string { return p.GrowthForm }},
	{"leaf_traits", "Leaf Traits", func(p *catalog.Plant) string { return p.LeafTraits }},
	{"reproductive_traits", "Reproductive Traits", func(p *catalog.Plant) string { return p.ReproductiveTraits }},
	{"stress_tolerance", "Stress Tolerance", func(p *catalog.Plant) string { return p.StressTolerance }},
	{"special_adaptations", "Special Adaptations", func(p *catalog.Plant) string { return p.Adaptations }},
	{"vegetable", "Vegetable", func(p *catalog.Plant) string { return p.VegetableLabel() }},
}

// usageColumns expose the remaining use flags as Yes/No pseudo-columns so
// usage-focused clustering can encode them like any other trait.
var usageColumns = []traitColumn{
	{"fruit", "Fruit", func(p *catalog.Plant) string { return yesNo(p.Usage.Fruit) }},
	{"medicinal", "Medicinal", func(p *catalog.Plant) string { return yesNo(p.Usage.Medicinal) }},
	{"commercial", "Commercial", func(p *catalog.Plant) string { return yesNo(p.Usage.Commercial) }},
	{"ornamental", "Ornamental", func(p *catalog.Plant) string { return yesNo(p.Usage.Ornamental) }},
	{"fodder", "Fodder", func(p *catalog.Plant) string { return yesNo(p.Usage.Fodder) }},
}

var columnIndex = buildColumnIndex()

func buildColumnIndex() map[string]traitColumn {
	idx := make(map[string]traitColumn, len(traitColumns)+len(usageColumns))
	for _, c := range traitColumns {
		idx[c.key] = c
	}
	for _, c := range usageColumns {
		idx[c.key] = c
	}
	return idx
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// TraitKeys returns the encodable trait column keys in presentation order.
func TraitKeys() []string {
	keys := make([]string, len(traitColumns))
	for i, c := range traitColumns {
		keys[i] = c.key
	}
	return keys
}

// TraitDisplayName maps a trait key to its human label. Unknown keys echo
// back unchanged.
func TraitDisplayName(key string) string {
	if c, ok := columnIndex[key]; ok {
		return c.display
	}
	return key
}

// TraitOf reads one trait column off a plant. Unknown keys return "".
func TraitOf(p *catalog.Plant, key string) string {
	if c, ok := columnIndex[key]; ok {
		return c.get(p)
	}
	return ""
}

// ============================================================================
// CATALOG VIEW — wraps the full catalog
// ============================================================================

// CatalogView exposes a whole catalog as a TraitView.
type CatalogView struct {
	cat *catalog.Catalog
}

// NewCatalogView creates a TraitView over all catalog records.
func NewCatalogView(cat *catalog.Catalog) TraitView {
	return &CatalogView{cat: cat}
}

func (v *CatalogView) Len() int { return v.cat.Len() }

func (v *CatalogView) Plant(i int) *catalog.Plant {
	if i < 0 || i >= v.cat.Len() {
		return nil
	}
	return &v.cat.Plants[i]
}

func (v *CatalogView) Trait(i int, key string) string {
	p := v.Plant(i)
	if p == nil {
		return ""
	}
	return TraitOf(p, key)
}

func (v *CatalogView) TraitKeys() []string { return TraitKeys() }

// ============================================================================
// SUB VIEW — filtered subset (zero-copy)
// ============================================================================

// SubView is a filtered subset of a parent TraitView.
// Holds indices into the parent — no data copy.
type SubView struct {
	parent  TraitView
	indices []int
}

func newSubView(parent TraitView, indices []int) TraitView {
	return &SubView{parent: parent, indices: indices}
}

func (v *SubView) Len() int { return len(v.indices) }

func (v *SubView) Plant(i int) *catalog.Plant {
	if i < 0 || i >= len(v.indices) {
		return nil
	}
	return v.parent.Plant(v.indices[i])
}

func (v *SubView) Trait(i int, key string) string {
	if i < 0 || i >= len(v.indices) {
		return ""
	}
	return v.parent.Trait(v.indices[i], key)
}

func (v *SubView) TraitKeys() []string { return v.parent.TraitKeys() }
