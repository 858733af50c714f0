// Package frame implements the small tabular layer the meritaid pipeline
// runs on: column-addressed tables read from delimited survey extracts,
// nullable numeric cells, and the quantile helpers the ranking stages share.
//
// A Table is immutable after load apart from two in-place passes that run
// before any computation touches it: Scrub, which blanks the survey sentinel
// codes, and Rename, which normalizes a header name. Absent numeric cells
// surface as nil pointers so that arithmetic can never pick up a sentinel
// by accident.
package frame

import (
	"fmt"
	"strconv"
	"strings"
)

type Table struct {
	name string
	cols []string
	rows [][]string
}

// NewTable builds a table over header cols and row-major cells. Short rows
// are padded so every cell access is in range; long rows are an error since
// they indicate a malformed extract.
func NewTable(name string, cols []string, rows [][]string) (*Table, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("table %s has no columns", name)
	}

	for ind := 0; ind < len(rows); ind++ {
		if len(rows[ind]) > len(cols) {
			return nil, fmt.Errorf("table %s row %d has %d fields, header has %d", name, ind, len(rows[ind]), len(cols))
		}

		for len(rows[ind]) < len(cols) {
			rows[ind] = append(rows[ind], "")
		}
	}

	return &Table{name: name, cols: cols, rows: rows}, nil
}

func (t *Table) Name() string {
	return t.name
}

func (t *Table) ColumnNames() []string {
	return t.cols
}

func (t *Table) RowCount() int {
	return len(t.rows)
}

func (t *Table) ColumnCount() int {
	return len(t.cols)
}

// Column returns the index of colName.
func (t *Table) Column(colName string) (int, error) {
	if pos := position(colName, t.cols); pos >= 0 {
		return pos, nil
	}

	return -1, fmt.Errorf("column %s not found in table %s", colName, t.name)
}

func (t *Table) Has(colName string) bool {
	return position(colName, t.cols) >= 0
}

// Missing returns the first of colNames absent from the table, or "" if all
// are present. Callers turn a non-empty return into a schema error.
func (t *Table) Missing(colNames ...string) string {
	for _, c := range colNames {
		if !t.Has(c) {
			return c
		}
	}

	return ""
}

// Rename changes a header name in place. Renaming to an existing name is an
// error since it would make Column ambiguous.
func (t *Table) Rename(from, to string) error {
	var (
		pos int
		e   error
	)
	if pos, e = t.Column(from); e != nil {
		return e
	}

	if t.Has(to) {
		return fmt.Errorf("table %s already has column %s", t.name, to)
	}

	t.cols[pos] = to

	return nil
}

// Str returns the raw cell at (row, col). col comes from Column.
func (t *Table) Str(row, col int) string {
	return t.rows[row][col]
}

// Float returns the cell as a nullable float. Blank and unparseable cells
// are absent.
func (t *Table) Float(row, col int) *float64 {
	s := strings.TrimSpace(t.rows[row][col])
	if s == "" {
		return nil
	}

	var (
		f float64
		e error
	)
	if f, e = strconv.ParseFloat(s, 64); e != nil {
		return nil
	}

	return &f
}

// Int returns the cell as a nullable int. Integer-valued floats (a common
// artifact of survey extracts round-tripped through a float column) are
// accepted; anything else is absent.
func (t *Table) Int(row, col int) *int {
	s := strings.TrimSpace(t.rows[row][col])
	if s == "" {
		return nil
	}

	if i, e := strconv.Atoi(s); e == nil {
		return &i
	}

	var (
		f float64
		e error
	)
	if f, e = strconv.ParseFloat(s, 64); e != nil {
		return nil
	}

	if f != float64(int(f)) {
		return nil
	}

	i := int(f)

	return &i
}

// Scrub blanks every cell whose numeric value is one of the sentinels.
// Non-numeric cells are left alone, so free-text columns pass through
// unharmed even when the pass runs over a whole table.
func (t *Table) Scrub(sentinels ...float64) {
	for r := 0; r < len(t.rows); r++ {
		for c := 0; c < len(t.cols); c++ {
			s := strings.TrimSpace(t.rows[r][c])
			if s == "" {
				continue
			}

			var (
				f float64
				e error
			)
			if f, e = strconv.ParseFloat(s, 64); e != nil {
				continue
			}

			if has(f, sentinels) {
				t.rows[r][c] = ""
			}
		}
	}
}

// *********** Helpers ***********

func has[C comparable](needle C, haystack []C) bool {
	return position(needle, haystack) >= 0
}

func position[C comparable](needle C, haystack []C) int {
	for ind, straw := range haystack {
		if needle == straw {
			return ind
		}
	}

	return -1
}
