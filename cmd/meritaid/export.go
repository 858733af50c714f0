package main

import (
	"database/sql"
	"fmt"

	_ "github.com/ClickHouse/clickhouse-go/v2"
	_ "github.com/jackc/pgx/stdlib"
	"github.com/spf13/cobra"

	"github.com/invertedv/meritaid/export"
)

var (
	flagDSN     string
	flagDialect string
	flagOutDir  string
	flagExclude []string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump every user table of a database to one CSV per table",
	RunE: func(cmd *cobra.Command, args []string) error {
		var driver string
		switch flagDialect {
		case "clickhouse":
			driver = "clickhouse"
		case "postgres":
			driver = "pgx"
		default:
			return fmt.Errorf("unsupported dialect %s", flagDialect)
		}

		db, e := sql.Open(driver, flagDSN)
		if e != nil {
			return e
		}
		defer func() { _ = db.Close() }()

		dialect, e := export.NewDialect(flagDialect, db)
		if e != nil {
			return e
		}

		lg := newLogger()
		defer func() { _ = lg.Sync() }()

		n, e := export.NewExporter(dialect, flagOutDir, flagExclude, lg).Run()
		if e != nil {
			return e
		}

		lg.Infow("export complete", "tables", n, "dir", flagOutDir)

		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&flagDSN, "dsn", "", "database connection string")
	exportCmd.Flags().StringVar(&flagDialect, "dialect", "postgres", "database dialect: clickhouse or postgres")
	exportCmd.Flags().StringVar(&flagOutDir, "out", ".", "output directory for the CSV files")
	exportCmd.Flags().StringSliceVar(&flagExclude, "exclude", []string{"MSys", "Temporary"}, "table name prefixes to skip")
	_ = exportCmd.MarkFlagRequired("dsn")
}
