// meritaid runs the two-stage merit-aid batch pipeline: "export" dumps the
// user tables of an administrative database to CSV, "rank" runs the
// analysis over those extracts and writes the ranked report and charts.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:           "meritaid",
	Short:         "Rank colleges by merit-aid value from IPEDS extracts",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file (defaults are built in)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "debug logging")

	rootCmd.AddCommand(rankCmd, exportCmd)
}

func newLogger() *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	lg, e := cfg.Build()
	if e != nil {
		panic(e)
	}

	return lg.Sugar()
}
