// Package pipeline implements the merit-aid analysis over IPEDS survey
// extracts: load the fixed table set, filter to 4-year degree-granting
// institutions, join the aid, admissions, outcome and mission tables on
// UNITID, derive the affordability metrics, and rank with a two-tier
// acceptance filter. The stages run strictly forward and the run is
// all-or-nothing: a fatal error in an early stage means no report.
package pipeline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// short names of the required tables
const (
	KeyDirectory = "hd"
	KeyAidOne    = "sfa_p1"
	KeyAidTwo    = "sfa_p2"
	KeyTuition   = "ic"
	KeyScores    = "adm_sat"
	KeyRates     = "adm_rate"
	KeyOutcomes  = "gr"
	KeyMission   = "mission"
)

// Config enumerates every path and policy constant the pipeline uses.
// One Config is built up front and passed through; nothing reads globals.
type Config struct {
	// BaseDir holds the per-table CSV extracts.
	BaseDir string `yaml:"base_dir"`
	// OutputFile is the ranked report, written under BaseDir.
	OutputFile string `yaml:"output_file"`
	// ChartDir receives the two chart artifacts; empty means no charts.
	ChartDir string `yaml:"chart_dir"`

	// Files maps the short table names to filenames under BaseDir.
	Files map[string]string `yaml:"files"`

	// AffordabilityCeiling is the tier-1 net-price cutoff.
	AffordabilityCeiling float64 `yaml:"affordability_ceiling"`
	// MGIQuantile sets the tier-1 MGI threshold over the full pool.
	MGIQuantile float64 `yaml:"mgi_quantile"`
	// FallbackNetQuantile and FallbackMGIQuantile define the relaxed tier.
	FallbackNetQuantile float64 `yaml:"fallback_net_quantile"`
	FallbackMGIQuantile float64 `yaml:"fallback_mgi_quantile"`
	// MinCohort is the tier-1 survivor count below which the fallback runs.
	MinCohort int `yaml:"min_cohort"`
	// ReportRows and ChartRows size the report and its chart subset.
	ReportRows int `yaml:"report_rows"`
	ChartRows  int `yaml:"chart_rows"`
}

func DefaultConfig() Config {
	return Config{
		BaseDir:    ".",
		OutputFile: "final_merit_college_rankings.csv",
		ChartDir:   "",
		Files: map[string]string{
			KeyDirectory: "HD2022.csv",
			KeyAidOne:    "SFA2122_P1.csv",
			KeyAidTwo:    "SFA2122_P2.csv",
			KeyTuition:   "IC2022_AY.csv",
			KeyScores:    "ADM2022.csv",
			KeyRates:     "DRVADM2022.csv",
			KeyOutcomes:  "DRVGR2022.csv",
			KeyMission:   "IC2022Mission.csv",
		},
		AffordabilityCeiling: 25000,
		MGIQuantile:          0.5,
		FallbackNetQuantile:  0.3,
		FallbackMGIQuantile:  0.8,
		MinCohort:            10,
		ReportRows:           20,
		ChartRows:            10,
	}
}

// LoadConfig overlays a YAML file on the defaults.
func LoadConfig(fileName string) (Config, error) {
	cfg := DefaultConfig()

	var (
		b []byte
		e error
	)
	if b, e = os.ReadFile(fileName); e != nil {
		return cfg, e
	}

	if e = yaml.Unmarshal(b, &cfg); e != nil {
		return cfg, fmt.Errorf("cannot parse config %s: %w", fileName, e)
	}

	return cfg, cfg.check()
}

func (cfg Config) check() error {
	for _, key := range []string{KeyDirectory, KeyAidOne, KeyAidTwo, KeyTuition, KeyScores, KeyRates, KeyOutcomes, KeyMission} {
		if cfg.Files[key] == "" {
			return fmt.Errorf("config names no file for table %s", key)
		}
	}

	for _, q := range []float64{cfg.MGIQuantile, cfg.FallbackNetQuantile, cfg.FallbackMGIQuantile} {
		if q < 0 || q > 1 {
			return fmt.Errorf("quantile %v out of [0,1]", q)
		}
	}

	if cfg.ReportRows <= 0 || cfg.ChartRows <= 0 || cfg.MinCohort <= 0 {
		return fmt.Errorf("report_rows, chart_rows and min_cohort must be positive")
	}

	return nil
}
