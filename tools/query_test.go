package tools

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePage(t *testing.T) {
	cases := []struct {
		page, size         string
		wantPage, wantSize int
	}{
		{"", "", 1, 10},
		{"3", "20", 3, 20},
		{"0", "-5", 1, 10},
		{"abc", "x", 1, 10},
		{" 2 ", "5", 2, 5},
		{"1", "100000", 1, MaxSize},
		{"99999999999999", "10", math.MaxInt32, 10},
	}
	for _, c := range cases {
		page, size := ParsePage(c.page, c.size)
		assert.Equal(t, c.wantPage, page)
		assert.Equal(t, c.wantSize, size)
	}
	assert.Equal(t, 20, Offset(3, 10))
	assert.Equal(t, 0, Offset(1, 10))
}

func TestOffset_Overflow(t *testing.T) {
	assert.Equal(t, math.MaxInt, Offset(math.MaxInt, 1000))
	assert.Equal(t, math.MaxInt, Offset(math.MaxInt/2, 3))

	page, size := ParsePage("9223372036854775807", "9223372036854775807")
	off := Offset(page, size)
	assert.Positive(t, off)
	assert.Equal(t, (math.MaxInt32-1)*MaxSize, off)
}

func TestParseIntFilter(t *testing.T) {
	n, ok := ParseIntFilter("0")
	assert.True(t, ok)
	assert.EqualValues(t, 0, n)

	_, ok = ParseIntFilter("")
	assert.False(t, ok)
	_, ok = ParseIntFilter("1a")
	assert.False(t, ok)
}

func TestParseID(t *testing.T) {
	id, ok := ParseID("42")
	assert.True(t, ok)
	assert.EqualValues(t, 42, id)

	for _, raw := range []string{"", "0", "-1", "abc", "1.5"} {
		_, ok := ParseID(raw)
		assert.False(t, ok, raw)
	}
}

func TestLike(t *testing.T) {
	assert.Equal(t, "%张%", Like("张"))
}
