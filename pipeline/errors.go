package pipeline

import (
	"errors"
	"fmt"
)

// MissingFileError is fatal: an expected input file is absent, so the run
// aborts before any computation. No partial results.
type MissingFileError struct {
	File string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("required file not found: %s", e.File)
}

// SchemaError is fatal for the stage that needed the column: the input is
// an incompatible file version, and guessing alternate column names would
// silently score the wrong data.
type SchemaError struct {
	Table  string
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("table %s is missing required column %s", e.Table, e.Column)
}

// ErrEmptyReport signals that no institution qualified even under the
// relaxed tier. Graceful: no output file is written and the run is not a
// crash.
var ErrEmptyReport = errors.New("no institutions met the criteria, even under the relaxed tier")
