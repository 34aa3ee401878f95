package relations

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/constellation/layout"
)

// ErrEmptyMatrix is returned when a matrix file has no header row.
var ErrEmptyMatrix = errors.New("relations: matrix has no header row")

// document is the JSON form of a table.
type document struct {
	Nodes        []string                      `json:"nodes"`
	Correlations map[string]map[string]float64 `json:"correlations"`
}

// NodeRecord is one row of a node list CSV.
type NodeRecord struct {
	Label   string `csv:"label"`
	Display int    `csv:"display"`
}

// LoadMatrixCSV reads a correlation matrix: the header row names the columns
// (its first cell is ignored), the first cell of every other row names the row.
// Only cells above the diagonal by position are read: the i-th data row keeps
// columns j > i. Blank and non-numeric cells are skipped, as are self pairs.
func LoadMatrixCSV(r io.Reader) (*Table, error) {
	reader := gocsv.DefaultCSVReader(r)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading matrix: %w", err)
	}
	if len(rows) == 0 || len(rows[0]) < 2 {
		return nil, ErrEmptyMatrix
	}

	headers := make([]string, len(rows[0])-1)
	t := NewTable()
	for j, h := range rows[0][1:] {
		headers[j] = strings.TrimSpace(h)
		t.AddNode(headers[j])
	}

	for i, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		name := strings.TrimSpace(row[0])
		for j, cell := range row[1:] {
			if j >= len(headers) {
				break
			}
			if j <= i {
				continue
			}
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			w, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				continue
			}
			t.Set(name, headers[j], w)
		}
	}
	return t, nil
}

// LoadJSON reads the {"nodes": [...], "correlations": {a: {b: w}}} format.
func LoadJSON(r io.Reader) (*Table, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding relations: %w", err)
	}
	t := NewTable()
	for _, n := range doc.Nodes {
		t.AddNode(n)
	}
	for a, row := range doc.Correlations {
		t.AddNode(a)
		for b, w := range row {
			t.Set(a, b, w)
		}
	}
	return t, nil
}

// WriteJSON writes t in the format LoadJSON reads. Every label gets a
// correlations entry, empty when it has no stored weights of its own.
func WriteJSON(w io.Writer, t *Table) error {
	rows := t.Rows()
	for _, n := range t.Nodes() {
		if _, ok := rows[n]; !ok {
			rows[n] = map[string]float64{}
		}
	}
	doc := document{Nodes: t.Nodes(), Correlations: rows}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding relations: %w", err)
	}
	return nil
}

// LoadFile reads a table from a .csv matrix or a .json document.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening relations file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadMatrixCSV(f)
	case ".json":
		return LoadJSON(f)
	default:
		return nil, fmt.Errorf("relations file %q: unsupported extension", path)
	}
}

// LoadNodes reads a node list CSV with label and display columns.
func LoadNodes(r io.Reader) ([]layout.NodeSpec, error) {
	var records []NodeRecord
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return nil, fmt.Errorf("reading node list: %w", err)
	}
	specs := make([]layout.NodeSpec, 0, len(records))
	for _, rec := range records {
		label := strings.TrimSpace(rec.Label)
		if label == "" {
			continue
		}
		specs = append(specs, layout.NodeSpec{Label: label, Display: rec.Display == 1})
	}
	return specs, nil
}

// LoadNodesFile reads a node list CSV from disk.
func LoadNodesFile(path string) ([]layout.NodeSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening node list: %w", err)
	}
	defer f.Close()
	return LoadNodes(f)
}

// AllNodes displays every label known to t.
func AllNodes(t *Table) []layout.NodeSpec {
	labels := t.Nodes()
	specs := make([]layout.NodeSpec, len(labels))
	for i, l := range labels {
		specs[i] = layout.NodeSpec{Label: l, Display: true}
	}
	return specs
}
