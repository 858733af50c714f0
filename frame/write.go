package frame

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// All code writing delimited files is here

const (
	Sep         = ','
	EOL         = '\n'
	StringDelim = '"'
	Header      = true
)

type Files struct {
	FieldNames  []string
	EOL         byte
	Sep         byte
	StringDelim byte
	Header      bool

	file     *os.File
	fileName string
}

func NewFiles() *Files {
	f := &Files{
		EOL:         byte(EOL),
		Sep:         byte(Sep),
		StringDelim: byte(StringDelim),
		Header:      Header,
	}

	return f
}

func (f *Files) Create(fileName string) error {
	var e error
	f.fileName = fileName
	f.file, e = os.Create(fileName)

	return e
}

func (f *Files) FileName() string {
	return f.fileName
}

func (f *Files) Close() error {
	if f.file != nil {
		return f.file.Close()
	}

	return fmt.Errorf("no open files")
}

// WriteLine writes one delimited row. Integers go out verbatim so that
// large identifiers survive a round trip without scientific-notation
// coercion; floats use the shortest exact representation. nil pointers and
// untyped nils become empty fields.
func (f *Files) WriteLine(v []any) error {
	var line []byte
	for ind := 0; ind < len(v); ind++ {
		var lx []byte
		switch d := v[ind].(type) {
		case float64:
			lx = []byte(strconv.FormatFloat(d, 'f', -1, 64))
		case int:
			lx = []byte(strconv.Itoa(d))
		case int64:
			lx = []byte(strconv.FormatInt(d, 10))
		case string:
			lx = f.quote(d)
		case *float64:
			if d != nil {
				lx = []byte(strconv.FormatFloat(*d, 'f', -1, 64))
			}
		case *int:
			if d != nil {
				lx = []byte(strconv.Itoa(*d))
			}
		case *string:
			if d != nil {
				lx = f.quote(*d)
			}
		case nil:
		default:
			lx = f.quote(fmt.Sprintf("%v", d))
		}

		line = append(line, lx...)
		if ind < len(v)-1 {
			line = append(line, f.Sep)
		}
	}

	if _, e := f.file.Write(line); e != nil {
		return e
	}
	_, e := f.file.Write([]byte{f.EOL})

	return e
}

func (f *Files) WriteHeader() error {
	if !f.Header {
		return nil
	}

	if f.FieldNames == nil {
		return fmt.Errorf("field names not set in *Files")
	}

	_, e := f.file.WriteString(strings.Join(f.FieldNames, string(rune(f.Sep))) + string(rune(f.EOL)))

	return e
}

// quote delimits a string field, doubling any embedded delimiter so the
// file reads back through a standard CSV parser.
func (f *Files) quote(s string) []byte {
	d := string(rune(f.StringDelim))
	s = strings.ReplaceAll(s, d, d+d)

	return []byte(d + s + d)
}
