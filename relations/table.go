// Package relations holds the relationship table between labeled entities and the
// loaders that read it from correlation-matrix CSV, JSON and node-list files.
package relations

import "sort"

// Table maps a pair of labels to a signed weight in [-1, 1]. Storage may be
// one-sided: a weight recorded under (a, b) is also returned for (b, a).
type Table struct {
	nodes   []string
	known   map[string]bool
	weights map[string]map[string]float64
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		known:   make(map[string]bool),
		weights: make(map[string]map[string]float64),
	}
}

// Set records the weight for (a, b), clamped to [-1, 1]. Self pairs are ignored.
func (t *Table) Set(a, b string, w float64) {
	if a == b {
		return
	}
	t.AddNode(a)
	t.AddNode(b)
	row, ok := t.weights[a]
	if !ok {
		row = make(map[string]float64)
		t.weights[a] = row
	}
	row[b] = clampWeight(w)
}

// Has reports whether either ordering of the pair is stored.
func (t *Table) Has(a, b string) bool {
	if _, ok := t.weights[a][b]; ok {
		return true
	}
	_, ok := t.weights[b][a]
	return ok
}

// Weight returns the weight stored under (a, b), then (b, a), else 0.
func (t *Table) Weight(a, b string) float64 {
	if w, ok := t.weights[a][b]; ok {
		return w
	}
	if w, ok := t.weights[b][a]; ok {
		return w
	}
	return 0
}

// Nodes returns every label known to the table in insertion order.
func (t *Table) Nodes() []string {
	out := make([]string, len(t.nodes))
	copy(out, t.nodes)
	return out
}

// Len returns the number of stored pairs.
func (t *Table) Len() int {
	n := 0
	for _, row := range t.weights {
		n += len(row)
	}
	return n
}

// Rows returns a copy of the stored weights grouped by first label.
func (t *Table) Rows() map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(t.weights))
	for a, row := range t.weights {
		cp := make(map[string]float64, len(row))
		for b, w := range row {
			cp[b] = w
		}
		out[a] = cp
	}
	return out
}

// Pair is one stored relationship.
type Pair struct {
	A, B   string
	Weight float64
}

// Pairs returns every stored relationship ordered by label.
func (t *Table) Pairs() []Pair {
	pairs := make([]Pair, 0, t.Len())
	for a, row := range t.weights {
		for b, w := range row {
			pairs = append(pairs, Pair{A: a, B: b, Weight: w})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})
	return pairs
}

// AddNode registers a label without any relationships.
func (t *Table) AddNode(label string) {
	if t.known[label] {
		return
	}
	t.known[label] = true
	t.nodes = append(t.nodes, label)
}

func clampWeight(w float64) float64 {
	if w < -1 {
		return -1
	}
	if w > 1 {
		return 1
	}
	return w
}
