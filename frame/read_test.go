package frame

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadCSV(t *testing.T) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "hd.csv")

	e := os.WriteFile(fileName, []byte("UNITID,INSTNM\n1,\"Alpha, The College\"\n2,Beta\n"), os.ModePerm)
	assert.Nil(t, e)

	tab, e := ReadCSV("hd", fileName)
	assert.Nil(t, e)
	assert.Equal(t, 2, tab.RowCount())
	assert.Equal(t, []string{"UNITID", "INSTNM"}, tab.ColumnNames())

	nm, _ := tab.Column("INSTNM")
	assert.Equal(t, "Alpha, The College", tab.Str(0, nm))
}

func TestReadCSV_Latin1(t *testing.T) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "mission.csv")

	// 0xE9 is é in Latin-1 and an invalid byte in UTF-8
	raw := append([]byte("unitid,mission\n1,"), []byte{'c', 'a', 'f', 0xE9, '\n'}...)
	e := os.WriteFile(fileName, raw, os.ModePerm)
	assert.Nil(t, e)

	tab, e := ReadCSV("mission", fileName)
	assert.Nil(t, e)

	m, _ := tab.Column("mission")
	assert.Equal(t, "café", tab.Str(0, m))
}

func TestReadCSV_NotThere(t *testing.T) {
	_, e := ReadCSV("hd", filepath.Join(t.TempDir(), "HD2022.csv"))
	assert.ErrorIs(t, e, fs.ErrNotExist)
}

func TestReadCSV_ShortRowsPad(t *testing.T) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "r.csv")

	e := os.WriteFile(fileName, []byte("a,b,c\n1,2\n3,4,5\n"), os.ModePerm)
	assert.Nil(t, e)

	tab, e := ReadCSV("r", fileName)
	assert.Nil(t, e)
	assert.Equal(t, 2, tab.RowCount())

	cb, _ := tab.Column("b")
	cc, _ := tab.Column("c")
	assert.Equal(t, "2", tab.Str(0, cb))
	assert.Equal(t, "", tab.Str(0, cc))
	assert.Equal(t, "5", tab.Str(1, cc))
}

func TestReadCSV_WideRowFails(t *testing.T) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "r.csv")

	e := os.WriteFile(fileName, []byte("a,b,c\n1,2,3\n3,4,5,6\n"), os.ModePerm)
	assert.Nil(t, e)

	_, e = ReadCSV("r", fileName)
	assert.NotNil(t, e)
	assert.Contains(t, e.Error(), "row 2")
}

func TestReadCSV_Empty(t *testing.T) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "e.csv")

	assert.Nil(t, os.WriteFile(fileName, nil, os.ModePerm))

	_, e := ReadCSV("e", fileName)
	assert.NotNil(t, e)
}
