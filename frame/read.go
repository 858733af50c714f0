package frame

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/charmap"
)

// ReadCSV loads a delimited file into a Table. The first row is the header.
// The file is decoded as Latin-1: survey extracts carry free-text fields
// with non-ASCII bytes that are not valid UTF-8, and a strict decode would
// abort the whole load. Every single-byte value maps to some rune under
// Latin-1, so the read cannot fail on encoding.
func ReadCSV(name, fileName string) (*Table, error) {
	var (
		f *os.File
		e error
	)
	if f, e = os.Open(fileName); e != nil {
		return nil, e
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(f))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var (
		header []string
		eh     error
	)
	if header, eh = r.Read(); eh != nil {
		if eh == io.EOF {
			return nil, fmt.Errorf("file %s is empty", fileName)
		}

		return nil, fmt.Errorf("cannot read header of %s: %w", fileName, eh)
	}

	var rows [][]string
	for {
		rec, er := r.Read()
		if er == io.EOF {
			break
		}

		if er != nil {
			return nil, fmt.Errorf("cannot read %s: %w", fileName, er)
		}

		// a record wider than the header has fields with no name to
		// address them by
		if len(rec) > len(header) {
			return nil, fmt.Errorf("file %s row %d has %d fields, header has %d",
				fileName, len(rows)+1, len(rec), len(header))
		}

		rows = append(rows, rec)
	}

	return NewTable(name, header, rows)
}
