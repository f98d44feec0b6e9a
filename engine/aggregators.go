package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/verdex-org/verdex/catalog"
)

// ============================================================================
// AGGREGATORS — Counting and Listing via TraitView
// ============================================================================
// All functions operate on TraitView — zero-copy access to the catalog or
// any filtered subset. All are pure; nothing here mutates shared state.
// ============================================================================

// CountByTrait returns the frequency table of one trait column across a
// view. Flag pseudo-columns (fruit, medicinal, ...) count as Yes/No.
func CountByTrait(view TraitView, key string) map[string]int {
	counts := make(map[string]int)
	for i := 0; i < view.Len(); i++ {
		counts[view.Trait(i, key)]++
	}
	return counts
}

// labelCount is a (value, count) pair that remembers encounter order.
type labelCount struct {
	label string
	count int
}

// countInOrder tallies one column keeping first-occurrence order, for
// builders whose tie-breaks depend on encounter order.
func countInOrder(view TraitView, key string) []labelCount {
	index := make(map[string]int)
	var counts []labelCount
	for i := 0; i < view.Len(); i++ {
		v := view.Trait(i, key)
		if at, ok := index[v]; ok {
			counts[at].count++
			continue
		}
		index[v] = len(counts)
		counts = append(counts, labelCount{label: v, count: 1})
	}
	return counts
}

// UniqueValues returns distinct values of a trait column across a view,
// in first-occurrence order. Empty strings are skipped.
func UniqueValues(view TraitView, key string) []string {
	seen := make(map[string]bool)
	var result []string
	for i := 0; i < view.Len(); i++ {
		val := view.Trait(i, key)
		if val != "" && !seen[val] {
			seen[val] = true
			result = append(result, val)
		}
	}
	return result
}

// AdaptationItems lists the plants of a view that carry meaningful
// adaptation text (non-empty and not the Unknown sentinel), in view order.
func AdaptationItems(view TraitView) []AdaptationItem {
	var items []AdaptationItem
	for i := 0; i < view.Len(); i++ {
		p := view.Plant(i)
		if p == nil {
			continue
		}
		text := strings.TrimSpace(p.Adaptations)
		if text == "" || strings.EqualFold(text, catalog.Unknown) {
			continue
		}
		items = append(items, AdaptationItem{
			ID:          p.ID,
			DisplayName: p.DisplayName,
			Adaptations: p.Adaptations,
			Vegetable:   p.VegetableLabel(),
		})
	}
	return items
}

// ============================================================================
// FORMATTING UTILITIES
// ============================================================================

// FormatInt formats an integer with comma separators.
func FormatInt(n int) string {
	if n < 0 {
		return "-" + FormatInt(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s,%03d", FormatInt(n/1000), n%1000)
}

// RoundTo4 rounds to 4 decimal places (projection coordinates).
func RoundTo4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
