package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"horizons/internal/table"
)

// CSV writes a header row of labels followed by one row per record.
// Numbers use the shortest representation that parses back exactly.
type CSV struct{}

func (CSV) ContentType() string { return "text/csv; charset=utf-8" }

func (CSV) Extension() string { return "csv" }

func (CSV) Encode(w io.Writer, t *table.LabeledTable) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(t.Labels()); err != nil {
		return err
	}

	cols := t.Columns()
	row := make([]string, len(cols))
	for r := 0; r < t.Rows(); r++ {
		for c, col := range cols {
			if col.Kind == table.Text {
				row[c] = col.Strings[r]
			} else {
				row[c] = strconv.FormatFloat(col.Numbers[r], 'g', -1, 64)
			}
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
