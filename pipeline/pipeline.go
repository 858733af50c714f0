package pipeline

import (
	"path/filepath"

	"go.uber.org/zap"

	"github.com/invertedv/meritaid/chart"
)

// chart artifact names under Config.ChartDir
const (
	dumbbellFile  = "discount_gap.html"
	parcoordsFile = "sweet_spot.html"
)

// Run executes the analysis end to end: load, filter, metrics, insights,
// report, charts. Stages run strictly forward and any fatal error stops the
// run before a report is written. A pool that empties under both tiers
// returns ErrEmptyReport after logging; chart failures are demoted to
// warnings because the persisted report does not depend on them.
func Run(cfg Config, lg *zap.SugaredLogger) error {
	if lg == nil {
		lg = zap.NewNop().Sugar()
	}

	// cfg may arrive flag-built rather than through LoadConfig
	if e := cfg.check(); e != nil {
		return e
	}

	tabs, e := LoadTables(cfg)
	if e != nil {
		return e
	}
	lg.Infow("tables loaded", "count", len(tabs))

	insts, e := FilterInstitutions(tabs[KeyDirectory])
	if e != nil {
		return e
	}
	lg.Infow("institutions after 4-year/degree filter", "count", len(insts))

	pool, e := CalcMetrics(insts, tabs)
	if e != nil {
		return e
	}
	lg.Infow("candidates with complete financial data", "count", len(pool))

	rows, relaxed := GenerateInsights(pool, cfg)
	if relaxed {
		lg.Warnw("tier-1 filter starved the pool, relaxed tier applied",
			"min_cohort", cfg.MinCohort,
			"net_quantile", cfg.FallbackNetQuantile,
			"mgi_quantile", cfg.FallbackMGIQuantile)
	}

	if len(rows) == 0 {
		lg.Info("no institutions met the criteria; no report written")
		return ErrEmptyReport
	}

	outPath := filepath.Join(cfg.BaseDir, cfg.OutputFile)
	if e := WriteReport(outPath, rows); e != nil {
		return e
	}
	lg.Infow("report written", "file", outPath, "rows", len(rows))

	top := cfg.ChartRows
	if top > len(rows) {
		top = len(rows)
	}
	for _, r := range rows[:top] {
		lg.Infow("ranked", "name", r.Name, "net_price", r.NetPrice, "mgi", r.MGI, "composite", r.Composite)
	}

	if cfg.ChartDir != "" {
		renderCharts(cfg, rows[:top], lg)
	}

	return nil
}

func renderCharts(cfg Config, rows []ReportRow, lg *zap.SugaredLogger) {
	cr := make([]chart.Row, len(rows))
	for ind, r := range rows {
		cr[ind] = chart.Row{
			Name:      r.Name,
			Sticker:   r.Sticker,
			Grant:     r.Grant,
			NetPrice:  r.NetPrice,
			GradRate:  r.GradRate,
			AdmitRate: r.AdmitRate,
			Composite: r.Composite,
		}
	}

	d := chart.Dumbbell(cr,
		chart.WithTitle("1. The 'Discount Gap': Sticker Price vs. What You Actually Pay"),
		chart.WithXlabel("Cost ($)"),
		chart.WithYlabel("Institution"),
		chart.WithLegend(true))
	if e := d.Save(filepath.Join(cfg.ChartDir, dumbbellFile)); e != nil {
		lg.Warnw("dumbbell chart not written", "err", e)
	}

	p := chart.Parcoords(cr,
		chart.WithTitle("2. Finding the Sweet Spot: Balancing Cost, Quality, and Aid"))
	if e := p.Save(filepath.Join(cfg.ChartDir, parcoordsFile)); e != nil {
		lg.Warnw("parallel-coordinates chart not written", "err", e)
	}
}
