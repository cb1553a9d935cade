package dataset

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCell_IsEmpty(t *testing.T) {
	assert.True(t, Empty().IsEmpty())
	assert.True(t, String("").IsEmpty())
	assert.True(t, String("   ").IsEmpty())
	assert.True(t, Number(math.NaN()).IsEmpty())

	assert.False(t, String("x").IsEmpty())
	assert.False(t, Number(0).IsEmpty())
	assert.False(t, Time(time.Now()).IsEmpty())
}

func TestCell_String(t *testing.T) {
	assert.Equal(t, "hello", String("hello").String())
	assert.Equal(t, "42", Number(42).String())
	assert.Equal(t, "3.5", Number(3.5).String())
	assert.Equal(t, "", Empty().String())
	assert.Equal(t, "", Number(math.NaN()).String())

	ts := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "01/06/2024", Time(ts).String())
}

func TestCell_Time(t *testing.T) {
	ts := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	got, ok := Time(ts).Time()
	assert.True(t, ok)
	assert.Equal(t, ts, got)

	_, ok = String("01/06/2024").Time()
	assert.False(t, ok)
}

func TestDataset_Value(t *testing.T) {
	ds := New([]string{"a", "b"})
	ds.AppendStringRow([]string{"1", "2"})

	assert.Equal(t, "1", ds.Value(0, "a").String())
	assert.Equal(t, "2", ds.Value(0, "b").String())
	assert.True(t, ds.Value(0, "missing").IsEmpty())
	assert.True(t, ds.Value(5, "a").IsEmpty())
	assert.True(t, ds.Value(-1, "a").IsEmpty())
}

func TestDataset_AppendRowPadsShortRows(t *testing.T) {
	ds := New([]string{"a", "b", "c"})
	ds.AppendRow([]Cell{String("1")})

	assert.Equal(t, 1, ds.NumRows())
	assert.True(t, ds.Value(0, "b").IsEmpty())
	assert.True(t, ds.Value(0, "c").IsEmpty())
}

func TestDataset_AppendStringRowBlanksAreEmpty(t *testing.T) {
	ds := New([]string{"a", "b"})
	ds.AppendStringRow([]string{"  ", "x"})

	assert.True(t, ds.Value(0, "a").IsEmpty())
	assert.False(t, ds.Value(0, "b").IsEmpty())
}

func TestDataset_Column(t *testing.T) {
	ds := New([]string{"a", "b"})
	ds.AppendStringRow([]string{"1", "2"})
	ds.AppendStringRow([]string{"3", "4"})

	col := ds.Column("b")
	assert.Len(t, col, 2)
	assert.Equal(t, "2", col[0].String())
	assert.Equal(t, "4", col[1].String())

	assert.Nil(t, ds.Column("missing"))
}
