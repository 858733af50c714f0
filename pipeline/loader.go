package pipeline

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/invertedv/meritaid/frame"
)

// Sentinels are the survey codes for "not reported / not applicable".
// They must become absent before any arithmetic, or ratios silently absorb
// them as real values.
var Sentinels = []float64{-1, -2, -9}

// surveyTables carry the sentinel codes; the directory and mission tables
// do not and are left untouched.
var surveyTables = []string{KeyAidOne, KeyAidTwo, KeyTuition, KeyScores, KeyRates, KeyOutcomes}

// Tables is the loaded input set, one table per short name.
type Tables map[string]*frame.Table

// LoadTables reads every required file under cfg.BaseDir, scrubs the
// sentinel codes from the survey tables, and normalizes the mission table's
// lower-case key. Any absent file is a MissingFileError and nothing is
// returned: the analysis is all-or-nothing.
func LoadTables(cfg Config) (Tables, error) {
	tabs := make(Tables, len(cfg.Files))

	for key, fileName := range cfg.Files {
		t, e := frame.ReadCSV(key, filepath.Join(cfg.BaseDir, fileName))
		if e != nil {
			if errors.Is(e, fs.ErrNotExist) {
				return nil, &MissingFileError{File: fileName}
			}

			return nil, e
		}

		tabs[key] = t
	}

	for _, key := range surveyTables {
		tabs[key].Scrub(Sentinels...)
	}

	// the mission extract keys on lower-case unitid
	if m := tabs[KeyMission]; m.Has("unitid") && !m.Has(ColID) {
		if e := m.Rename("unitid", ColID); e != nil {
			return nil, e
		}
	}

	return tabs, nil
}
