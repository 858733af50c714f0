package pipeline

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/invertedv/meritaid/frame"
)

func TestWriteReport_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "report.csv")

	admit := 0.4
	satV, satM := 600.0, 650.0
	rows := []ReportRow{
		{
			UnitID: 999888777, Name: "Beta", Control: 2,
			Sticker: 50000, Grant: 30000, NetPrice: 15000,
			MGI: 0.6, GradRate: 0.9, AdmitRate: &admit,
			SATVerbal: &satV, SATMath: &satM,
			Composite: 5.0, Mission: "research, mostly",
		},
		{
			UnitID: 100654, Name: "Alpha", Control: 1,
			Sticker: 20000, Grant: 8000, NetPrice: 18000,
			MGI: 0.4, GradRate: 0.6,
			Composite: 1.0 / 0.9, Mission: "",
		},
	}

	assert.Nil(t, WriteReport(fileName, rows))

	tab, e := frame.ReadCSV("report", fileName)
	assert.Nil(t, e)
	assert.Equal(t, ReportColumns, tab.ColumnNames())
	assert.Equal(t, 2, tab.RowCount())

	id, _ := tab.Column(ColID)
	adm, _ := tab.Column("Admissions_Rate")
	cs, _ := tab.Column("Composite_Score")
	ms, _ := tab.Column("MISSION")

	// identifiers exact, row order preserved
	assert.Equal(t, "999888777", tab.Str(0, id))
	assert.Equal(t, "100654", tab.Str(1, id))

	assert.Equal(t, 0.4, *tab.Float(0, adm))
	assert.Nil(t, tab.Float(1, adm))

	assert.Equal(t, 1.0/0.9, *tab.Float(1, cs))
	assert.Equal(t, "research, mostly", tab.Str(0, ms))
}
