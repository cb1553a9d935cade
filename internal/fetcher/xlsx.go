// Package fetcher reads guest-registration exports (XLSX, CSV, delimited
// text) into the in-memory tabular model the conversion engine consumes.
package fetcher

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/sire-cli/internal/dataset"
)

// XLSXOptions configures the XLSX reader.
type XLSXOptions struct {
	SheetIndex int    // default 0
	SheetName  string // if set, overrides SheetIndex
}

// ReadXLSX reads a spreadsheet into a Dataset. The first row is the header;
// date-formatted cells keep their native timestamps so the date parser can
// format them at full confidence.
func ReadXLSX(path string, opts XLSXOptions) (*dataset.Dataset, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "xlsx: open file")
	}

	sheet, err := getSheet(f, opts)
	if err != nil {
		return nil, err
	}
	if len(sheet.Rows) == 0 {
		return nil, eris.Errorf("xlsx: sheet %q is empty", sheet.Name)
	}

	header := make([]string, len(sheet.Rows[0].Cells))
	for j, cell := range sheet.Rows[0].Cells {
		header[j] = cell.String()
	}

	ds := dataset.New(header)
	for _, row := range sheet.Rows[1:] {
		cells := make([]dataset.Cell, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = convertCell(cell)
		}
		ds.AppendRow(cells)
	}

	return ds, nil
}

func convertCell(cell *xlsx.Cell) dataset.Cell {
	if cell.IsTime() {
		if f, err := cell.Float(); err == nil {
			return dataset.Time(xlsx.TimeFromExcelTime(f, false))
		}
	}
	s := cell.String()
	if s == "" {
		return dataset.Empty()
	}
	return dataset.String(s)
}

func getSheet(f *xlsx.File, opts XLSXOptions) (*xlsx.Sheet, error) {
	if opts.SheetName != "" {
		sheet, ok := f.Sheet[opts.SheetName]
		if !ok {
			return nil, eris.Errorf("xlsx: sheet %q not found", opts.SheetName)
		}
		return sheet, nil
	}

	if opts.SheetIndex >= len(f.Sheets) {
		return nil, eris.Errorf("xlsx: sheet index %d out of range (file has %d sheets)", opts.SheetIndex, len(f.Sheets))
	}

	return f.Sheets[opts.SheetIndex], nil
}
