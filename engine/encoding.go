package engine

import (
	"sort"

	"github.com/verdex-org/verdex/catalog"
)

// ============================================================================
// ENCODING — Deterministic ordinal codes per trait column
// ============================================================================
// Vocabulary is fit ONCE over the full catalog at startup: per column, the
// sorted distinct values get codes 0..k-1. Codes are stable for the process
// lifetime, so similarity vectors and cluster projections computed at
// different times stay comparable. Values outside the vocabulary encode to
// an all-zero one-hot block (and code -1).
// ============================================================================

type columnCoder struct {
	codes  map[string]int
	values []string // code → value, sorted
}

// Encoding holds the per-column coders for a fixed key set.
type Encoding struct {
	keys    []string
	byKey   map[string]*columnCoder
	offsets map[string]int // start of each column's one-hot block
}

// NewEncoding fits vocabularies for the given trait keys over every record
// of the view. Pass the FULL catalog view here — encoders fit on subsets
// would drift between requests.
func NewEncoding(view TraitView, keys []string) *Encoding {
	e := &Encoding{
		keys:    append([]string(nil), keys...),
		byKey:   make(map[string]*columnCoder, len(keys)),
		offsets: make(map[string]int, len(keys)),
	}

	n := view.Len()
	for _, key := range e.keys {
		seen := make(map[string]bool)
		var vals []string
		for i := 0; i < n; i++ {
			v := view.Trait(i, key)
			if !seen[v] {
				seen[v] = true
				vals = append(vals, v)
			}
		}
		sort.Strings(vals)

		coder := &columnCoder{codes: make(map[string]int, len(vals)), values: vals}
		for code, v := range vals {
			coder.codes[v] = code
		}
		e.byKey[key] = coder
	}

	offset := 0
	for _, key := range e.keys {
		e.offsets[key] = offset
		offset += len(e.byKey[key].values)
	}
	return e
}

// Keys returns the encoded column keys in fit order.
func (e *Encoding) Keys() []string { return e.keys }

// Cardinality returns the vocabulary size of one column (0 for unknown keys).
func (e *Encoding) Cardinality(key string) int {
	if c, ok := e.byKey[key]; ok {
		return len(c.values)
	}
	return 0
}

// Code returns the ordinal code of a value within a column. Values outside
// the fitted vocabulary return (-1, false).
func (e *Encoding) Code(key, value string) (int, bool) {
	c, ok := e.byKey[key]
	if !ok {
		return -1, false
	}
	code, ok := c.codes[value]
	if !ok {
		return -1, false
	}
	return code, true
}

// Decode is the inverse of Code.
func (e *Encoding) Decode(key string, code int) (string, bool) {
	c, ok := e.byKey[key]
	if !ok || code < 0 || code >= len(c.values) {
		return "", false
	}
	return c.values[code], true
}

// Vector returns the plant's ordinal codes over the given keys as floats.
// Out-of-vocabulary values contribute -1.
func (e *Encoding) Vector(p *catalog.Plant, keys []string) []float64 {
	vec := make([]float64, len(keys))
	for i, key := range keys {
		code, ok := e.Code(key, TraitOf(p, key))
		if !ok {
			code = -1
		}
		vec[i] = float64(code)
	}
	return vec
}

// Width returns the one-hot row width for a key subset.
func (e *Encoding) Width(keys []string) int {
	w := 0
	for _, key := range keys {
		w += e.Cardinality(key)
	}
	return w
}

// OneHot returns the concatenated one-hot encoding of a plant over the
// given keys. An out-of-vocabulary value leaves its block all-zero.
func (e *Encoding) OneHot(p *catalog.Plant, keys []string) []float64 {
	row := make([]float64, e.Width(keys))
	offset := 0
	for _, key := range keys {
		if code, ok := e.Code(key, TraitOf(p, key)); ok {
			row[offset+code] = 1
		}
		offset += e.Cardinality(key)
	}
	return row
}

// OneHotMatrix encodes every record of a view over the given keys into a
// dense row-major matrix (rows × Width(keys)).
func (e *Encoding) OneHotMatrix(view TraitView, keys []string) ([]float64, int, int) {
	rows := view.Len()
	cols := e.Width(keys)
	data := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		p := view.Plant(i)
		if p == nil {
			continue
		}
		offset := 0
		for _, key := range keys {
			if code, ok := e.Code(key, TraitOf(p, key)); ok {
				data[i*cols+offset+code] = 1
			}
			offset += e.Cardinality(key)
		}
	}
	return data, rows, cols
}
