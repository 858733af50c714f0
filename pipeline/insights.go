package pipeline

import (
	"math"
	"sort"

	"github.com/invertedv/meritaid/frame"
)

// ReportRow is the fixed projection of a ranked institution.
type ReportRow struct {
	UnitID    int
	Name      string
	Control   int
	Sticker   float64
	Grant     float64
	NetPrice  float64
	MGI       float64
	GradRate  float64
	AdmitRate *float64
	SATVerbal *float64
	SATMath   *float64
	Composite float64
	Mission   string
}

// GenerateInsights applies the two-tier acceptance filter, scores and ranks
// the survivors, and truncates to the report size.
//
// Tier 1 keeps rows with net price at or under the affordability ceiling
// and MGI at or above the MGI quantile of the entire pool -- the threshold
// always comes from the unfiltered baseline so the filter cannot feed back
// into its own cutoff. If fewer than cfg.MinCohort rows survive, the tier-1
// result is discarded and the relaxed tier selects on the pool's net-price
// and MGI quantiles instead. relaxed reports which tier produced the result.
//
// Rows whose Composite Score is not finite (a zero net price ratio) are
// excluded before ranking; undefined values never reach the report.
// Ties keep pool order: the sort is stable and no further tie-break exists.
func GenerateInsights(pool []Candidate, cfg Config) (rows []ReportRow, relaxed bool) {
	if len(pool) == 0 {
		return nil, false
	}

	mgis := make([]float64, len(pool))
	nets := make([]float64, len(pool))
	for ind, c := range pool {
		mgis[ind] = c.MGI
		nets[ind] = c.NetPrice
	}

	mgiCut := frame.Quantile(cfg.MGIQuantile, mgis)

	var keep []Candidate
	for _, c := range pool {
		if c.NetPrice <= cfg.AffordabilityCeiling && c.MGI >= mgiCut {
			keep = append(keep, c)
		}
	}

	if len(keep) < cfg.MinCohort {
		relaxed = true
		netCut := frame.Quantile(cfg.FallbackNetQuantile, nets)
		mgiCutHigh := frame.Quantile(cfg.FallbackMGIQuantile, mgis)

		keep = nil
		for _, c := range pool {
			if c.NetPrice <= netCut && c.MGI >= mgiCutHigh {
				keep = append(keep, c)
			}
		}
	}

	for _, c := range keep {
		score := (c.MGI + c.GradRate) / c.NetPriceRatio
		if math.IsNaN(score) || math.IsInf(score, 0) {
			continue
		}

		rows = append(rows, ReportRow{
			UnitID:    c.UnitID,
			Name:      c.Name,
			Control:   c.Control,
			Sticker:   c.Sticker,
			Grant:     c.Grant,
			NetPrice:  c.NetPrice,
			MGI:       c.MGI,
			GradRate:  c.GradRate,
			AdmitRate: c.AdmitRate,
			SATVerbal: c.SATVerbal,
			SATMath:   c.SATMath,
			Composite: score,
			Mission:   c.Mission,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Composite > rows[j].Composite })

	if len(rows) > cfg.ReportRows {
		rows = rows[:cfg.ReportRows]
	}

	return rows, relaxed
}
