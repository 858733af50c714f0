package pipeline

import (
	"github.com/invertedv/meritaid/frame"
)

// institution level / highest-degree codes for the eligibility filter
const (
	levelFourYear   = 1
	degreeBachelors = 3
)

// Institution is the projection of the directory table the rest of the
// pipeline keys on.
type Institution struct {
	UnitID  int
	Name    string
	Control int
}

// FilterInstitutions selects 4-year, bachelor's-or-above institutions with
// a present identifier from the directory table, preserving file order.
func FilterInstitutions(hd *frame.Table) ([]Institution, error) {
	if e := require(hd, ColID, ColName, ColControl, ColLevel, ColHighDeg); e != nil {
		return nil, e
	}

	id, _ := hd.Column(ColID)
	nm, _ := hd.Column(ColName)
	ct, _ := hd.Column(ColControl)
	lv, _ := hd.Column(ColLevel)
	dg, _ := hd.Column(ColHighDeg)

	var out []Institution
	for r := 0; r < hd.RowCount(); r++ {
		uid := hd.Int(r, id)
		if uid == nil {
			continue
		}

		level := hd.Int(r, lv)
		if level == nil || *level != levelFourYear {
			continue
		}

		deg := hd.Int(r, dg)
		if deg == nil || *deg < degreeBachelors {
			continue
		}

		control := 0
		if c := hd.Int(r, ct); c != nil {
			control = *c
		}

		out = append(out, Institution{UnitID: *uid, Name: hd.Str(r, nm), Control: control})
	}

	return out, nil
}
