package fetcher

import (
	"bufio"
	"encoding/csv"
	"io"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/sells-group/sire-cli/internal/dataset"
)

// CSVOptions configures the delimited-text reader.
type CSVOptions struct {
	Delimiter rune   // 0 means sniff from the first line
	Encoding  string // IANA charset name for legacy exports, "" means UTF-8
}

// ReadCSV reads delimited text into a Dataset. The first record is the
// header. Variable-width rows are tolerated; short rows pad with absent
// cells.
func ReadCSV(r io.Reader, opts CSVOptions) (*dataset.Dataset, error) {
	if opts.Encoding != "" {
		enc, err := htmlindex.Get(opts.Encoding)
		if err != nil {
			return nil, eris.Wrapf(err, "csv: unsupported charset %q", opts.Encoding)
		}
		r = enc.NewDecoder().Reader(r)
	}

	br := bufio.NewReader(r)

	delimiter := opts.Delimiter
	if delimiter == 0 {
		first, err := br.Peek(4096)
		if err != nil && err != io.EOF {
			return nil, eris.Wrap(err, "csv: peek first line")
		}
		delimiter = sniffDelimiter(string(first))
	}

	reader := csv.NewReader(br)
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1 // allow variable fields

	var ds *dataset.Dataset
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "csv: read row")
		}

		for i, field := range record {
			record[i] = strings.TrimSpace(field)
		}

		if ds == nil {
			ds = dataset.New(record)
			continue
		}
		ds.AppendStringRow(record)
	}

	if ds == nil {
		return nil, eris.New("csv: input is empty")
	}
	return ds, nil
}

// sniffDelimiter inspects the first line: tab wins, then semicolon, then
// comma. Mirrors how the legacy registration exports are produced.
func sniffDelimiter(head string) rune {
	if i := strings.IndexByte(head, '\n'); i >= 0 {
		head = head[:i]
	}
	switch {
	case strings.ContainsRune(head, '\t'):
		return '\t'
	case strings.ContainsRune(head, ';'):
		return ';'
	default:
		return ','
	}
}
