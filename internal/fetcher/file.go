package fetcher

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/sire-cli/internal/dataset"
)

// FileOptions configures ReadFile.
type FileOptions struct {
	XLSX XLSXOptions
	CSV  CSVOptions
}

// ReadFile reads a registration export into a Dataset, dispatching on the
// file extension. Supported: .xlsx, .csv, .txt (delimiter sniffed).
func ReadFile(path string, opts FileOptions) (*dataset.Dataset, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var (
		ds  *dataset.Dataset
		err error
	)
	switch ext {
	case ".xlsx":
		ds, err = ReadXLSX(path, opts.XLSX)
	case ".csv":
		ds, err = readCSVFile(path, CSVOptions{Delimiter: ',', Encoding: opts.CSV.Encoding})
	case ".txt":
		ds, err = readCSVFile(path, opts.CSV)
	default:
		return nil, eris.Errorf("fetcher: unsupported format %q (use .xlsx, .csv or .txt)", ext)
	}
	if err != nil {
		return nil, err
	}

	zap.L().Info("fetcher: file read",
		zap.String("path", path),
		zap.Int("rows", ds.NumRows()),
		zap.Int("columns", len(ds.Columns)),
	)
	return ds, nil
}

func readCSVFile(path string, opts CSVOptions) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "fetcher: open file")
	}
	defer f.Close()
	return ReadCSV(f, opts)
}
