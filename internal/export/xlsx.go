package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"horizons/internal/table"
)

const (
	dataSheet = "Ephemeris"
	infoSheet = "Info"
)

// XLSX writes the table to an "Ephemeris" sheet with a frozen header row and
// an "Info" sheet summarizing the span. Tables with more than one row also
// get a scatter chart of the first two position columns.
type XLSX struct{}

func (XLSX) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (XLSX) Extension() string { return "xlsx" }

func (XLSX) Encode(w io.Writer, t *table.LabeledTable) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", dataSheet); err != nil {
		return err
	}

	labels := t.Labels()
	header := make([]interface{}, len(labels))
	for i, l := range labels {
		header[i] = l
	}
	if err := f.SetSheetRow(dataSheet, "A1", &header); err != nil {
		return err
	}

	for r := 0; r < t.Rows(); r++ {
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		row := t.Row(r)
		if err := f.SetSheetRow(dataSheet, cell, &row); err != nil {
			return err
		}
	}

	if err := styleColumns(f, t); err != nil {
		return err
	}

	if err := f.SetPanes(dataSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	if t.Rows() > 1 {
		if err := addOrbitChart(f, t); err != nil {
			return err
		}
	}

	if err := writeInfoSheet(f, t); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	return f.Write(w)
}

func styleColumns(f *excelize.File, t *table.LabeledTable) error {
	epochFmt := "0.000000"
	epochStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &epochFmt})
	if err != nil {
		return err
	}
	// Built-in format 11 is "0.00E+00".
	vectorStyle, err := f.NewStyle(&excelize.Style{NumFmt: 11})
	if err != nil {
		return err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	lastCol, _ := excelize.ColumnNumberToName(len(t.Labels()))
	if err := f.SetCellStyle(dataSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}

	for i, col := range t.Columns() {
		name, _ := excelize.ColumnNumberToName(i + 1)
		width := 22.0
		if col.Kind == table.Text {
			width = 32
		}
		if err := f.SetColWidth(dataSheet, name, name, width); err != nil {
			return err
		}
		if col.Kind == table.Text || t.Rows() == 0 {
			continue
		}

		style := vectorStyle
		if i == 0 {
			style = epochStyle
		}
		top := fmt.Sprintf("%s2", name)
		bottom := fmt.Sprintf("%s%d", name, t.Rows()+1)
		if err := f.SetCellStyle(dataSheet, top, bottom, style); err != nil {
			return err
		}
	}
	return nil
}

func addOrbitChart(f *excelize.File, t *table.LabeledTable) error {
	labels := t.Labels()
	last := t.Rows() + 1
	chart := &excelize.Chart{
		Type: excelize.Scatter,
		Series: []excelize.ChartSeries{
			{
				Name:       fmt.Sprintf("%s!$D$1", dataSheet),
				Categories: fmt.Sprintf("%s!$C$2:$C$%d", dataSheet, last),
				Values:     fmt.Sprintf("%s!$D$2:$D$%d", dataSheet, last),
			},
		},
		Title: []excelize.RichTextRun{
			{Text: fmt.Sprintf("%s vs %s", labels[3], labels[2])},
		},
		XAxis:     excelize.ChartAxis{MajorGridLines: true},
		YAxis:     excelize.ChartAxis{MajorGridLines: true},
		Dimension: excelize.ChartDimension{Width: 600, Height: 600},
	}
	return f.AddChart(dataSheet, "J2", chart)
}

func writeInfoSheet(f *excelize.File, t *table.LabeledTable) error {
	if _, err := f.NewSheet(infoSheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Rows", t.Rows()},
		{"Columns", len(t.Labels())},
	}
	if t.Rows() > 0 {
		epoch := t.Columns()[0]
		cal := t.Columns()[1]
		rows = append(rows,
			[]interface{}{"First " + epoch.Label, epoch.Value(0)},
			[]interface{}{"Last " + epoch.Label, epoch.Value(t.Rows() - 1)},
			[]interface{}{"First " + cal.Label, cal.Value(0)},
			[]interface{}{"Last " + cal.Label, cal.Value(t.Rows() - 1)},
		)
	}

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(infoSheet, cell, &row); err != nil {
			return err
		}
	}
	return f.SetColWidth(infoSheet, "A", "B", 32)
}
