package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/invertedv/meritaid/frame"
)

// endToEndSet builds institutions A and B plus ten fillers so tier 1 is
// never starved: every row is under the affordability ceiling and the
// filler MGI of zero pins the pool's median MGI to zero.
func endToEndSet() map[string]string {
	hd := "UNITID,INSTNM,CONTROL,ICLEVEL,HDEGOFR1\n1,A,1,1,3\n2,B,2,1,4\n90,TwoYear CC,1,2,3\n"
	p1 := "UNITID,IGRNT_A\n1,8000\n2,30000\n"
	p2 := "UNITID,NPT442\n1,18000\n2,15000\n"
	ic := "UNITID,TUITION2\n1,20000\n2,50000\n"
	adm := "UNITID,SATVR75,SATMT75\n1,500,510\n2,600,650\n"
	rate := "UNITID,DVADM01\n2,40\n"
	gr := "UNITID,GBA4RTT\n1,60\n2,90\n"
	mission := "unitid,mission\n1,teach\n2,research\n"

	for ind := 0; ind < 10; ind++ {
		id := 100 + ind
		hd += fmt.Sprintf("%d,Filler %d,1,1,3\n", id, ind)
		p1 += fmt.Sprintf("%d,0\n", id)
		p2 += fmt.Sprintf("%d,10000\n", id)
		ic += fmt.Sprintf("%d,10000\n", id)
		gr += fmt.Sprintf("%d,0\n", id)
	}

	return map[string]string{
		"HD2022.csv":        hd,
		"SFA2122_P1.csv":    p1,
		"SFA2122_P2.csv":    p2,
		"IC2022_AY.csv":     ic,
		"ADM2022.csv":       adm,
		"DRVADM2022.csv":    rate,
		"DRVGR2022.csv":     gr,
		"IC2022Mission.csv": mission,
	}
}

func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir, endToEndSet())

	cfg := DefaultConfig()
	cfg.BaseDir = dir
	cfg.ChartDir = filepath.Join(dir, "charts")

	assert.Nil(t, Run(cfg, nil))

	tab, e := frame.ReadCSV("report", filepath.Join(dir, cfg.OutputFile))
	assert.Nil(t, e)
	assert.Equal(t, ReportColumns, tab.ColumnNames())
	// A, B and the ten fillers qualify; the 2-year school never entered
	assert.Equal(t, 12, tab.RowCount())

	nm, _ := tab.Column(ColName)
	cs, _ := tab.Column("Composite_Score")
	adm, _ := tab.Column("Admissions_Rate")

	// B: (0.6+0.9)/0.3 = 5.0 beats A: (0.4+0.6)/0.9
	assert.Equal(t, "B", tab.Str(0, nm))
	assert.InDelta(t, 5.0, *tab.Float(0, cs), 1e-9)
	assert.Equal(t, "A", tab.Str(1, nm))
	assert.InDelta(t, 1.0/0.9, *tab.Float(1, cs), 1e-9)

	// A's admission rate was never reported
	assert.Nil(t, tab.Float(1, adm))
	assert.InDelta(t, 0.4, *tab.Float(0, adm), 1e-12)

	// both chart artifacts rendered from the report
	for _, f := range []string{dumbbellFile, parcoordsFile} {
		_, e := os.Stat(filepath.Join(cfg.ChartDir, f))
		assert.Nil(t, e)
	}
}

func TestRun_EmptyReport(t *testing.T) {
	dir := t.TempDir()
	files := endToEndSet()
	// nothing matches part 2: every row loses its net price in the inner
	// join and the candidate pool is empty
	files["SFA2122_P2.csv"] = "UNITID,NPT442\n7777,12000\n"
	writeFixtures(t, dir, files)

	cfg := DefaultConfig()
	cfg.BaseDir = dir

	e := Run(cfg, nil)
	assert.True(t, errors.Is(e, ErrEmptyReport))

	// no partial report
	_, se := os.Stat(filepath.Join(dir, cfg.OutputFile))
	assert.True(t, os.IsNotExist(se))
}

func TestRun_HaltsOnSchema(t *testing.T) {
	dir := t.TempDir()
	files := endToEndSet()
	files["DRVGR2022.csv"] = "UNITID,WRONG\n1,60\n"
	writeFixtures(t, dir, files)

	cfg := DefaultConfig()
	cfg.BaseDir = dir

	e := Run(cfg, nil)

	var se *SchemaError
	assert.True(t, errors.As(e, &se))

	// later stages never ran
	_, st := os.Stat(filepath.Join(dir, cfg.OutputFile))
	assert.True(t, os.IsNotExist(st))
}

func TestRun_HaltsOnBadConfig(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir, endToEndSet())

	cfg := DefaultConfig()
	cfg.BaseDir = dir
	cfg.MGIQuantile = 1.5

	e := Run(cfg, nil)
	assert.NotNil(t, e)
	assert.Contains(t, e.Error(), "quantile")

	// no table was loaded and no report was written
	_, st := os.Stat(filepath.Join(dir, cfg.OutputFile))
	assert.True(t, os.IsNotExist(st))

	cfg = DefaultConfig()
	cfg.BaseDir = dir
	cfg.Files[KeyMission] = ""

	assert.NotNil(t, Run(cfg, nil))
}
