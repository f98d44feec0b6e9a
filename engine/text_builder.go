package engine

import (
	"sort"
	"strings"

	"github.com/verdex-org/verdex/catalog"
)

// ============================================================================
// TEXT BUILDER — Adaptation tokenizers + word cloud
// ============================================================================
// Adaptation text is the only free-text column. Two token grammars exist:
//   SplitAdaptations — phrase tokens on ; , / delimiters (sankey, network)
//   wordTokens       — lowercase alphanumeric runs (word cloud)
// ============================================================================

// SplitAdaptations splits adaptation text into phrase tokens on the ';'
// ',' and '/' delimiters. Tokens are trimmed; empties and the Unknown
// sentinel are dropped.
func SplitAdaptations(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == ';' || r == ',' || r == '/'
	})
	var tokens []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || strings.EqualFold(p, catalog.Unknown) {
			continue
		}
		tokens = append(tokens, p)
	}
	return tokens
}

// wordTokens lowercases text and splits it into ASCII alphanumeric runs.
func wordTokens(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'))
	})
}

// BuildWordCloud tallies word tokens across the subset's adaptation text.
// Words of length ≤2 and the literal "unknown" are dropped; the top 50 by
// frequency survive, ties kept in first-encountered order.
func BuildWordCloud(view TraitView) *WordCloud {
	index := make(map[string]int)
	var words []labelCount
	for i := 0; i < view.Len(); i++ {
		p := view.Plant(i)
		if p == nil {
			continue
		}
		for _, w := range wordTokens(p.Adaptations) {
			if len(w) <= 2 || w == "unknown" {
				continue
			}
			if at, ok := index[w]; ok {
				words[at].count++
				continue
			}
			index[w] = len(words)
			words = append(words, labelCount{label: w, count: 1})
		}
	}

	sort.SliceStable(words, func(i, j int) bool { return words[i].count > words[j].count })
	if len(words) > 50 {
		words = words[:50]
	}

	cloud := &WordCloud{
		Terms:  make([]string, len(words)),
		Counts: make([]int, len(words)),
	}
	for i, w := range words {
		cloud.Terms[i] = w.label
		cloud.Counts[i] = w.count
	}
	return cloud
}

// adaptationTokenCounts tallies phrase tokens across a view in
// first-occurrence order.
func adaptationTokenCounts(view TraitView) []labelCount {
	index := make(map[string]int)
	var tokens []labelCount
	for i := 0; i < view.Len(); i++ {
		p := view.Plant(i)
		if p == nil {
			continue
		}
		for _, tok := range SplitAdaptations(p.Adaptations) {
			if at, ok := index[tok]; ok {
				tokens[at].count++
				continue
			}
			index[tok] = len(tokens)
			tokens = append(tokens, labelCount{label: tok, count: 1})
		}
	}
	return tokens
}

// topTokenSet returns the distinct phrase tokens of a view as a membership
// set, capped to the max most frequent when more exist. The cap is computed
// over the whole view, ties in first-occurrence order.
func topTokenSet(view TraitView, max int) map[string]bool {
	counts := adaptationTokenCounts(view)
	if len(counts) > max {
		sort.SliceStable(counts, func(i, j int) bool { return counts[i].count > counts[j].count })
		counts = counts[:max]
	}
	set := make(map[string]bool, len(counts))
	for _, t := range counts {
		set[t.label] = true
	}
	return set
}
