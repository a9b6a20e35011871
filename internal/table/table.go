// Package table arranges ephemeris records into labeled columns.
package table

import (
	"encoding/json"
	"fmt"
	"strings"

	"horizons/internal/models"
)

// FieldCount is the number of fields per record: epoch, calendar, three
// position and three velocity components.
const FieldCount = 8

type Kind int

const (
	Numeric Kind = iota
	Text
)

func (k Kind) String() string {
	if k == Text {
		return "text"
	}
	return "numeric"
}

// Column holds one field for every row. Exactly one of Numbers and Strings
// is populated, according to Kind.
type Column struct {
	Label   string
	Kind    Kind
	Numbers []float64
	Strings []string
}

func (c Column) Len() int {
	if c.Kind == Text {
		return len(c.Strings)
	}
	return len(c.Numbers)
}

// Value returns row i as float64 or string.
func (c Column) Value(i int) any {
	if c.Kind == Text {
		return c.Strings[i]
	}
	return c.Numbers[i]
}

func (c Column) MarshalJSON() ([]byte, error) {
	out := struct {
		Label  string `json:"label"`
		Kind   string `json:"kind"`
		Values any    `json:"values"`
	}{Label: c.Label, Kind: c.Kind.String()}
	if c.Kind == Text {
		out.Values = nonNil(c.Strings)
	} else {
		out.Values = nonNil(c.Numbers)
	}
	return json.Marshal(out)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

type LabeledTable struct {
	columns []Column
	index   map[string]int
	rows    int
}

// Assemble lays records out under labels, one label per field in record
// order. Row order follows records.
func Assemble(records []models.Record, labels []string) (*LabeledTable, error) {
	if len(labels) != FieldCount {
		return nil, &models.InvalidQueryError{
			Field:      "header",
			Value:      strings.Join(labels, ","),
			Constraint: fmt.Sprintf("header arity mismatch: got %d labels, want %d", len(labels), FieldCount),
		}
	}

	index := make(map[string]int, len(labels))
	for i, label := range labels {
		if strings.TrimSpace(label) == "" {
			return nil, &models.InvalidQueryError{Field: "header", Constraint: fmt.Sprintf("label %d is empty", i+1)}
		}
		if _, dup := index[label]; dup {
			return nil, &models.InvalidQueryError{Field: "header", Value: label, Constraint: "duplicate label"}
		}
		index[label] = i
	}

	n := len(records)
	cols := make([]Column, FieldCount)
	for i, label := range labels {
		cols[i] = Column{Label: label, Kind: Numeric, Numbers: make([]float64, n)}
	}
	cols[1] = Column{Label: labels[1], Kind: Text, Strings: make([]string, n)}

	for r, rec := range records {
		cols[0].Numbers[r] = rec.Epoch
		cols[1].Strings[r] = rec.Calendar
		for axis := 0; axis < 3; axis++ {
			cols[2+axis].Numbers[r] = rec.Position[axis]
			cols[5+axis].Numbers[r] = rec.Velocity[axis]
		}
	}

	return &LabeledTable{columns: cols, index: index, rows: n}, nil
}

func (t *LabeledTable) Rows() int { return t.rows }

func (t *LabeledTable) Labels() []string {
	labels := make([]string, len(t.columns))
	for i, c := range t.columns {
		labels[i] = c.Label
	}
	return labels
}

// Columns returns the columns in header order. Callers must not modify the
// returned slices.
func (t *LabeledTable) Columns() []Column {
	return append([]Column(nil), t.columns...)
}

func (t *LabeledTable) Column(label string) (Column, bool) {
	i, ok := t.index[label]
	if !ok {
		return Column{}, false
	}
	return t.columns[i], true
}

// Row returns the values of row i in column order.
func (t *LabeledTable) Row(i int) []any {
	row := make([]any, len(t.columns))
	for c, col := range t.columns {
		row[c] = col.Value(i)
	}
	return row
}

func (t *LabeledTable) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Rows    int      `json:"rows"`
		Columns []Column `json:"columns"`
	}{Rows: t.rows, Columns: t.columns})
}
