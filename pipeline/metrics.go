package pipeline

import (
	"github.com/invertedv/meritaid/frame"
)

// Candidate is one scored institution: the join of the directory projection
// with the aid, admissions, outcome and mission tables plus the derived
// metrics. Rates are 0-1 fractions. AdmitRate and the score bands stay
// nullable: open-admission institutions legitimately have no rate.
type Candidate struct {
	UnitID   int
	Name     string
	Control  int
	Sticker  float64
	Grant    float64
	NetPrice float64

	MGI           float64
	NetPriceRatio float64
	GradRate      float64

	AdmitRate *float64
	SATVerbal *float64
	SATMath   *float64
	Mission   string
}

// merged is a join row before the essential-field drop, everything still
// nullable.
type merged struct {
	inst Institution

	sticker  *float64
	grant    *float64
	netPrice *float64
	satV     *float64
	satM     *float64
	admit    *float64
	gradRate *float64
	mission  string
}

type aidRec struct {
	unitID   int
	grant    *float64
	netPrice *float64
}

type admRec struct {
	unitID int
	satV   *float64
	satM   *float64
	rate   *float64
}

// CalcMetrics joins the filtered institution set with the auxiliary tables
// and derives the financial metrics. The join order and semantics fix the
// result shape:
//
//  1. aid part 1 with part 2, inner: both sides are needed for the net
//     price ratio, so unmatched rows are useless.
//  2. scores with admission rates, left: the rate may be absent.
//  3. institutions left-joined with tuition, aid, admissions, outcomes and
//     mission, in that order, preserving institution order throughout.
//
// Duplicate identifiers fan out; that is a property of the source data, not
// something this stage repairs. Rows missing sticker price, grant or net
// price are silently excluded (sparsity is normal, not an error), as are
// rows with a zero sticker price, which would make every ratio undefined.
func CalcMetrics(insts []Institution, tabs Tables) ([]Candidate, error) {
	var (
		grants   []grantRec
		nets     []netPriceRec
		tuitions []tuitionRec
		scores   []scoreRec
		admits   []admitRec
		outcomes []outcomeRec
		missions []missionRec
		e        error
	)

	if grants, e = grantRecords(tabs[KeyAidOne]); e != nil {
		return nil, e
	}
	if nets, e = netPriceRecords(tabs[KeyAidTwo]); e != nil {
		return nil, e
	}
	if tuitions, e = tuitionRecords(tabs[KeyTuition]); e != nil {
		return nil, e
	}
	if scores, e = scoreRecords(tabs[KeyScores]); e != nil {
		return nil, e
	}
	if admits, e = admitRecords(tabs[KeyRates]); e != nil {
		return nil, e
	}
	if outcomes, e = outcomeRecords(tabs[KeyOutcomes]); e != nil {
		return nil, e
	}
	if missions, e = missionRecords(tabs[KeyMission]); e != nil {
		return nil, e
	}

	aid := mergeAid(grants, nets)
	adm := mergeAdmissions(scores, admits)

	rows := joinAll(insts, tuitions, aid, adm, outcomes, missions)

	// drop rows lacking the load-bearing financial fields
	var kept []merged
	for _, r := range rows {
		if r.sticker == nil || *r.sticker == 0 || r.grant == nil || r.netPrice == nil {
			continue
		}

		kept = append(kept, r)
	}

	return derive(kept), nil
}

// mergeAid inner-joins the two financial-aid parts on identifier.
func mergeAid(grants []grantRec, nets []netPriceRec) []aidRec {
	byID := groupBy(nets, func(n netPriceRec) int { return n.unitID })

	var out []aidRec
	for _, g := range grants {
		for _, n := range byID[g.unitID] {
			out = append(out, aidRec{unitID: g.unitID, grant: g.grant, netPrice: n.netPrice})
		}
	}

	return out
}

// mergeAdmissions left-joins the admission rate onto the score bands.
func mergeAdmissions(scores []scoreRec, admits []admitRec) []admRec {
	byID := groupBy(admits, func(a admitRec) int { return a.unitID })

	var out []admRec
	for _, s := range scores {
		matches := byID[s.unitID]
		if matches == nil {
			out = append(out, admRec{unitID: s.unitID, satV: s.satV, satM: s.satM})
			continue
		}

		for _, a := range matches {
			out = append(out, admRec{unitID: s.unitID, satV: s.satV, satM: s.satM, rate: a.rate})
		}
	}

	return out
}

// joinAll runs the left-join chain off the institution set.
func joinAll(insts []Institution, tuitions []tuitionRec, aid []aidRec, adm []admRec, outcomes []outcomeRec, missions []missionRec) []merged {
	tuitionBy := groupBy(tuitions, func(t tuitionRec) int { return t.unitID })
	aidBy := groupBy(aid, func(a aidRec) int { return a.unitID })
	admBy := groupBy(adm, func(a admRec) int { return a.unitID })
	outcomeBy := groupBy(outcomes, func(o outcomeRec) int { return o.unitID })
	missionBy := groupBy(missions, func(m missionRec) int { return m.unitID })

	rows := make([]merged, 0, len(insts))
	for _, inst := range insts {
		rows = append(rows, merged{inst: inst})
	}

	rows = leftJoin(rows, tuitionBy, func(r *merged, t tuitionRec) { r.sticker = t.sticker })
	rows = leftJoin(rows, aidBy, func(r *merged, a aidRec) { r.grant, r.netPrice = a.grant, a.netPrice })
	rows = leftJoin(rows, admBy, func(r *merged, a admRec) { r.satV, r.satM, r.admit = a.satV, a.satM, a.rate })
	rows = leftJoin(rows, outcomeBy, func(r *merged, o outcomeRec) { r.gradRate = o.gradRate })
	rows = leftJoin(rows, missionBy, func(r *merged, m missionRec) { r.mission = m.mission })

	return rows
}

// leftJoin keeps every left row; matches fan out, absent matches leave the
// fields nil.
func leftJoin[T any](rows []merged, byID map[int][]T, fill func(*merged, T)) []merged {
	var out []merged
	for _, r := range rows {
		matches := byID[r.inst.UnitID]
		if matches == nil {
			out = append(out, r)
			continue
		}

		for _, m := range matches {
			rx := r
			fill(&rx, m)
			out = append(out, rx)
		}
	}

	return out
}

// derive computes the metric columns in dependency order: MGI, the median
// gap-fill for graduation rate, net price ratio, then the percent-to-
// fraction rescale of the two rates. The imputation median comes from
// whatever rows remain in this run, not a global constant.
func derive(rows []merged) []Candidate {
	var gradVals []*float64
	for _, r := range rows {
		gradVals = append(gradVals, r.gradRate)
	}
	gradMedian := frame.Median(frame.Present(gradVals))

	out := make([]Candidate, 0, len(rows))
	for _, r := range rows {
		c := Candidate{
			UnitID:    r.inst.UnitID,
			Name:      r.inst.Name,
			Control:   r.inst.Control,
			Sticker:   *r.sticker,
			Grant:     *r.grant,
			NetPrice:  *r.netPrice,
			SATVerbal: r.satV,
			SATMath:   r.satM,
			Mission:   r.mission,
		}

		c.MGI = c.Grant / c.Sticker

		grad := gradMedian
		if r.gradRate != nil {
			grad = *r.gradRate
		}

		c.NetPriceRatio = c.NetPrice / c.Sticker
		c.GradRate = grad / 100

		if r.admit != nil {
			a := *r.admit / 100
			c.AdmitRate = &a
		}

		out = append(out, c)
	}

	return out
}
