package pipeline

import (
	"github.com/invertedv/meritaid/frame"
)

// IPEDS column names. These are fixed by the survey file format; if one is
// absent the file is a different vintage and the run stops rather than
// guessing.
const (
	ColID       = "UNITID"
	ColName     = "INSTNM"
	ColControl  = "CONTROL"
	ColLevel    = "ICLEVEL"
	ColHighDeg  = "HDEGOFR1"
	ColGrant    = "IGRNT_A"
	ColNetPrice = "NPT442"
	ColSticker  = "TUITION2"
	ColSATV     = "SATVR75"
	ColSATM     = "SATMT75"
	ColAdmRate  = "DVADM01"
	ColGradRate = "GBA4RTT"
	ColMission  = "mission"
)

// Each input table gets a statically declared record type, built once with
// the required columns validated up front. Rows without a usable UNITID are
// skipped: they can never match a join.

type grantRec struct {
	unitID int
	grant  *float64
}

type netPriceRec struct {
	unitID   int
	netPrice *float64
}

type tuitionRec struct {
	unitID  int
	sticker *float64
}

type scoreRec struct {
	unitID int
	satV   *float64
	satM   *float64
}

type admitRec struct {
	unitID int
	rate   *float64
}

type outcomeRec struct {
	unitID   int
	gradRate *float64
}

type missionRec struct {
	unitID  int
	mission string
}

// require maps a missing column to a SchemaError naming table and column.
func require(t *frame.Table, colNames ...string) error {
	if m := t.Missing(colNames...); m != "" {
		return &SchemaError{Table: t.Name(), Column: m}
	}

	return nil
}

func grantRecords(t *frame.Table) ([]grantRec, error) {
	if e := require(t, ColID, ColGrant); e != nil {
		return nil, e
	}

	id, _ := t.Column(ColID)
	g, _ := t.Column(ColGrant)

	var out []grantRec
	for r := 0; r < t.RowCount(); r++ {
		if uid := t.Int(r, id); uid != nil {
			out = append(out, grantRec{unitID: *uid, grant: t.Float(r, g)})
		}
	}

	return out, nil
}

func netPriceRecords(t *frame.Table) ([]netPriceRec, error) {
	if e := require(t, ColID, ColNetPrice); e != nil {
		return nil, e
	}

	id, _ := t.Column(ColID)
	np, _ := t.Column(ColNetPrice)

	var out []netPriceRec
	for r := 0; r < t.RowCount(); r++ {
		if uid := t.Int(r, id); uid != nil {
			out = append(out, netPriceRec{unitID: *uid, netPrice: t.Float(r, np)})
		}
	}

	return out, nil
}

func tuitionRecords(t *frame.Table) ([]tuitionRec, error) {
	if e := require(t, ColID, ColSticker); e != nil {
		return nil, e
	}

	id, _ := t.Column(ColID)
	tu, _ := t.Column(ColSticker)

	var out []tuitionRec
	for r := 0; r < t.RowCount(); r++ {
		if uid := t.Int(r, id); uid != nil {
			out = append(out, tuitionRec{unitID: *uid, sticker: t.Float(r, tu)})
		}
	}

	return out, nil
}

func scoreRecords(t *frame.Table) ([]scoreRec, error) {
	if e := require(t, ColID, ColSATV, ColSATM); e != nil {
		return nil, e
	}

	id, _ := t.Column(ColID)
	v, _ := t.Column(ColSATV)
	m, _ := t.Column(ColSATM)

	var out []scoreRec
	for r := 0; r < t.RowCount(); r++ {
		if uid := t.Int(r, id); uid != nil {
			out = append(out, scoreRec{unitID: *uid, satV: t.Float(r, v), satM: t.Float(r, m)})
		}
	}

	return out, nil
}

func admitRecords(t *frame.Table) ([]admitRec, error) {
	if e := require(t, ColID, ColAdmRate); e != nil {
		return nil, e
	}

	id, _ := t.Column(ColID)
	a, _ := t.Column(ColAdmRate)

	var out []admitRec
	for r := 0; r < t.RowCount(); r++ {
		if uid := t.Int(r, id); uid != nil {
			out = append(out, admitRec{unitID: *uid, rate: t.Float(r, a)})
		}
	}

	return out, nil
}

func outcomeRecords(t *frame.Table) ([]outcomeRec, error) {
	if e := require(t, ColID, ColGradRate); e != nil {
		return nil, e
	}

	id, _ := t.Column(ColID)
	g, _ := t.Column(ColGradRate)

	var out []outcomeRec
	for r := 0; r < t.RowCount(); r++ {
		if uid := t.Int(r, id); uid != nil {
			out = append(out, outcomeRec{unitID: *uid, gradRate: t.Float(r, g)})
		}
	}

	return out, nil
}

func missionRecords(t *frame.Table) ([]missionRec, error) {
	if e := require(t, ColID, ColMission); e != nil {
		return nil, e
	}

	id, _ := t.Column(ColID)
	m, _ := t.Column(ColMission)

	var out []missionRec
	for r := 0; r < t.RowCount(); r++ {
		if uid := t.Int(r, id); uid != nil {
			out = append(out, missionRec{unitID: *uid, mission: t.Str(r, m)})
		}
	}

	return out, nil
}

// groupBy indexes rows by key, preserving input order within a key.
// Duplicate keys are kept: joins fan out rather than deduplicate.
func groupBy[T any](rows []T, key func(T) int) map[int][]T {
	out := make(map[int][]T, len(rows))
	for _, r := range rows {
		out[key(r)] = append(out[key(r)], r)
	}

	return out
}
