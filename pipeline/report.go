package pipeline

import (
	"github.com/invertedv/meritaid/frame"
)

// ReportColumns is the fixed header of the persisted report.
var ReportColumns = []string{
	ColID, ColName, ColControl,
	"Sticker_Price", "Avg_Inst_Grant", "Net_Price_MidClass",
	"MGI", "Graduation_Rate_4yr", "Admissions_Rate",
	ColSATV, ColSATM,
	"Composite_Score", "MISSION",
}

// WriteReport persists the ranked rows as a delimited file. Identifiers are
// written as integers, never through a float format, so they survive a
// round trip exactly.
func WriteReport(fileName string, rows []ReportRow) error {
	f := frame.NewFiles()
	f.FieldNames = ReportColumns

	if e := f.Create(fileName); e != nil {
		return e
	}
	defer func() { _ = f.Close() }()

	if e := f.WriteHeader(); e != nil {
		return e
	}

	for _, r := range rows {
		line := []any{
			r.UnitID, r.Name, r.Control,
			r.Sticker, r.Grant, r.NetPrice,
			r.MGI, r.GradRate, r.AdmitRate,
			r.SATVerbal, r.SATMath,
			r.Composite, r.Mission,
		}

		if e := f.WriteLine(line); e != nil {
			return e
		}
	}

	return nil
}
