package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeep(t *testing.T) {
	exclude := []string{"MSys", "Temporary"}

	assert.True(t, Keep("HD2022", exclude))
	assert.False(t, Keep("MSysObjects", exclude))
	assert.False(t, Keep("Temporary", exclude))
	assert.False(t, Keep("TemporaryImport", exclude))
	assert.True(t, Keep("hd", nil))
}

func TestNewDialect(t *testing.T) {
	d, e := NewDialect("ClickHouse", nil)
	assert.Nil(t, e)
	assert.Equal(t, "clickhouse", d.DialectName())

	_, e = NewDialect("access", nil)
	assert.NotNil(t, e)
}

func TestQuote(t *testing.T) {
	d, _ := NewDialect("postgres", nil)

	assert.Equal(t, `"HD2022"`, d.Quote("HD2022"))
	// embedded quotes cannot break out of the name
	assert.Equal(t, `"x"`, d.Quote(`x"`))
}

func TestCell(t *testing.T) {
	assert.Nil(t, cell(nil))
	assert.Equal(t, "abc", cell([]byte("abc")))
	assert.Equal(t, int64(7), cell(int64(7)))
}
