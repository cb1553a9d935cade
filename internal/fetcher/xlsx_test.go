package fetcher

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
)

func createTestXLSX(t *testing.T, sheets map[string][][]string) string {
	t.Helper()
	f := xlsx.NewFile()
	for name, rows := range sheets {
		sheet, err := f.AddSheet(name)
		require.NoError(t, err)
		for _, rowData := range rows {
			row := sheet.AddRow()
			for _, cellData := range rowData {
				cell := row.AddCell()
				cell.SetString(cellData)
			}
		}
	}
	path := filepath.Join(t.TempDir(), "test.xlsx")
	err := f.Save(path)
	require.NoError(t, err)
	return path
}

func TestReadXLSX_Basic(t *testing.T) {
	path := createTestXLSX(t, map[string][][]string{
		"Sheet1": {
			{"Name", "Nationality"},
			{"Maria", "Peru"},
			{"Carlos", "Chile"},
		},
	})

	ds, err := ReadXLSX(path, XLSXOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Nationality"}, ds.Columns)
	require.Equal(t, 2, ds.NumRows())
	assert.Equal(t, "Maria", ds.Value(0, "Name").String())
	assert.Equal(t, "Chile", ds.Value(1, "Nationality").String())
}

func TestReadXLSX_SheetName(t *testing.T) {
	path := createTestXLSX(t, map[string][][]string{
		"First":  {{"a"}, {"1"}},
		"Second": {{"x"}, {"9"}},
	})

	ds, err := ReadXLSX(path, XLSXOptions{SheetName: "Second"})
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, ds.Columns)
	assert.Equal(t, "9", ds.Value(0, "x").String())
}

func TestReadXLSX_SheetNameNotFound(t *testing.T) {
	path := createTestXLSX(t, map[string][][]string{
		"Sheet1": {{"a"}},
	})

	_, err := ReadXLSX(path, XLSXOptions{SheetName: "Missing"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestReadXLSX_SheetIndexOutOfRange(t *testing.T) {
	path := createTestXLSX(t, map[string][][]string{
		"Sheet1": {{"a"}},
	})

	_, err := ReadXLSX(path, XLSXOptions{SheetIndex: 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestReadXLSX_NativeDates(t *testing.T) {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Sheet1")
	require.NoError(t, err)

	header := sheet.AddRow()
	header.AddCell().SetString("Birth Date")

	row := sheet.AddRow()
	row.AddCell().SetDate(time.Date(1990, time.March, 15, 0, 0, 0, 0, time.UTC))

	path := filepath.Join(t.TempDir(), "dates.xlsx")
	require.NoError(t, f.Save(path))

	ds, err := ReadXLSX(path, XLSXOptions{})
	require.NoError(t, err)

	cell := ds.Value(0, "Birth Date")
	ts, ok := cell.Time()
	require.True(t, ok, "date cell should keep its native timestamp")
	assert.Equal(t, 1990, ts.Year())
	assert.Equal(t, time.March, ts.Month())
	assert.Equal(t, 15, ts.Day())
}

func TestReadFile_UnsupportedFormat(t *testing.T) {
	_, err := ReadFile("guests.pdf", FileOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}
