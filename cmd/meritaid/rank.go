package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/invertedv/meritaid/pipeline"
)

var (
	flagDataDir  string
	flagOutFile  string
	flagChartDir string
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Run the analysis over the CSV extracts and write the ranked report",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := pipeline.DefaultConfig()
		if cfgFile != "" {
			var e error
			if cfg, e = pipeline.LoadConfig(cfgFile); e != nil {
				return e
			}
		}

		if flagDataDir != "" {
			cfg.BaseDir = flagDataDir
		}
		if flagOutFile != "" {
			cfg.OutputFile = flagOutFile
		}
		if flagChartDir != "" {
			cfg.ChartDir = flagChartDir
		}

		lg := newLogger()
		defer func() { _ = lg.Sync() }()

		if e := pipeline.Run(cfg, lg); e != nil {
			// a starved pool is a result, not a failure
			if errors.Is(e, pipeline.ErrEmptyReport) {
				fmt.Println("No colleges met the criteria. Review the filters.")
				return nil
			}

			return e
		}

		return nil
	},
}

func init() {
	rankCmd.Flags().StringVar(&flagDataDir, "data", "", "directory holding the CSV extracts")
	rankCmd.Flags().StringVar(&flagOutFile, "out", "", "report filename (written under the data directory)")
	rankCmd.Flags().StringVar(&flagChartDir, "charts", "", "directory for the chart artifacts")
}
