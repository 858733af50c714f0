// Package export implements the table-to-flat-file boundary: enumerate the
// user tables of an administrative database and dump each one to a
// delimited file, no size or type transformation beyond serialization.
// Unlike the analysis pipeline, failures here are isolated per table.
package export

import (
	"database/sql"
	"fmt"
	"strings"
)

// All code interacting with a database is here

const (
	ch = "clickhouse"
	pg = "postgres"
)

type Dialect struct {
	db      *sql.DB
	dialect string
}

func NewDialect(dialect string, db *sql.DB) (*Dialect, error) {
	dialect = strings.ToLower(dialect)

	switch dialect {
	case ch, pg:
	default:
		return nil, fmt.Errorf("unsupported database %s", dialect)
	}

	return &Dialect{db: db, dialect: dialect}, nil
}

func (d *Dialect) DialectName() string {
	return d.dialect
}

func (d *Dialect) DB() *sql.DB {
	return d.db
}

// TableNames lists the user tables of the connected database from its
// catalog.
func (d *Dialect) TableNames() ([]string, error) {
	var qry string
	switch d.dialect {
	case ch:
		qry = "SELECT name FROM system.tables WHERE database = currentDatabase() ORDER BY name"
	case pg:
		qry = "SELECT tablename FROM pg_catalog.pg_tables WHERE schemaname = 'public' ORDER BY tablename"
	}

	rows, e := d.db.Query(qry)
	if e != nil {
		return nil, e
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var nm string
		if e := rows.Scan(&nm); e != nil {
			return nil, e
		}

		names = append(names, nm)
	}

	return names, rows.Err()
}

// Quote wraps a table name for use in a query.
func (d *Dialect) Quote(table string) string {
	return `"` + strings.ReplaceAll(table, `"`, ``) + `"`
}

// Rows starts a full scan of table, returning the column names and a
// scan-target slice sized to the result width.
func (d *Dialect) Rows(table string) (rows *sql.Rows, row2read []any, fieldNames []string, err error) {
	qry := "SELECT * FROM " + d.Quote(table)

	if rows, err = d.db.Query(qry); err != nil {
		return nil, nil, nil, err
	}

	if fieldNames, err = rows.Columns(); err != nil {
		_ = rows.Close()
		return nil, nil, nil, err
	}

	for ind := 0; ind < len(fieldNames); ind++ {
		var x any
		row2read = append(row2read, &x)
	}

	return rows, row2read, fieldNames, nil
}
