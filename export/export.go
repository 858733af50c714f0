package export

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/invertedv/meritaid/frame"
)

// ConnectionError is fatal for the whole export: the catalog could not be
// read at all, usually a driver or connectivity problem.
type ConnectionError struct {
	Dialect string
	Err     error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("cannot read table catalog: %v; check that the database is reachable and the %s driver is configured", e.Err, e.Dialect)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

type Exporter struct {
	dialect *Dialect
	outDir  string
	// skip system/temporary tables by name prefix
	exclude []string

	lg *zap.SugaredLogger
}

func NewExporter(dialect *Dialect, outDir string, exclude []string, lg *zap.SugaredLogger) *Exporter {
	if lg == nil {
		lg = zap.NewNop().Sugar()
	}

	return &Exporter{dialect: dialect, outDir: outDir, exclude: exclude, lg: lg}
}

// Keep reports whether a catalog name survives the exclusion rules.
func Keep(name string, exclude []string) bool {
	for _, p := range exclude {
		if strings.HasPrefix(name, p) {
			return false
		}
	}

	return true
}

// Run exports every surviving table to one CSV under outDir. A table that
// fails is logged and skipped; the remaining tables still export. The
// returned count is the number of tables written.
func (ex *Exporter) Run() (int, error) {
	names, e := ex.dialect.TableNames()
	if e != nil {
		return 0, &ConnectionError{Dialect: ex.dialect.DialectName(), Err: e}
	}

	var keep []string
	for _, nm := range names {
		if Keep(nm, ex.exclude) {
			keep = append(keep, nm)
		}
	}
	ex.lg.Infow("tables to export", "count", len(keep))

	exported := 0
	for ind, nm := range keep {
		ex.lg.Infof("(%d/%d) exporting table %s", ind+1, len(keep), nm)

		n, e := ex.exportTable(nm)
		if e != nil {
			ex.lg.Warnw("table not exported", "table", nm, "err", e)
			continue
		}

		ex.lg.Infow("table exported", "table", nm, "rows", n)
		exported++
	}

	return exported, nil
}

func (ex *Exporter) exportTable(table string) (int, error) {
	rows, row2read, fieldNames, e := ex.dialect.Rows(table)
	if e != nil {
		return 0, e
	}
	defer func() { _ = rows.Close() }()

	f := frame.NewFiles()
	f.FieldNames = fieldNames
	if e := f.Create(filepath.Join(ex.outDir, table+".csv")); e != nil {
		return 0, e
	}
	defer func() { _ = f.Close() }()

	if e := f.WriteHeader(); e != nil {
		return 0, e
	}

	n := 0
	for rows.Next() {
		if e := rows.Scan(row2read...); e != nil {
			return n, e
		}

		line := make([]any, len(row2read))
		for ind := 0; ind < len(row2read); ind++ {
			line[ind] = cell(*row2read[ind].(*any))
		}

		if e := f.WriteLine(line); e != nil {
			return n, e
		}

		n++
	}

	return n, rows.Err()
}

// cell normalizes a scanned value to something WriteLine serializes
// losslessly.
func cell(v any) any {
	switch d := v.(type) {
	case nil:
		return nil
	case []byte:
		return string(d)
	case time.Time:
		return d.Format("2006-01-02 15:04:05")
	default:
		return v
	}
}
