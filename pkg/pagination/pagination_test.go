package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	zero := int64(0)
	r := Request{Page: -1, Size: 500, CursorID: &zero}.Normalize()
	assert.Equal(t, 0, r.Page)
	assert.Equal(t, MaxSize, r.Size)
	assert.Nil(t, r.CursorID)

	r = Request{}.Normalize()
	assert.Equal(t, DefaultSize, r.Size)

	c := int64(42)
	r = Request{Page: 2, Size: 5, CursorID: &c}.Normalize()
	require.NotNil(t, r.CursorID)
	assert.Equal(t, int64(42), *r.CursorID)
	assert.Equal(t, 10, r.Offset())
}

func TestOfCursor(t *testing.T) {
	p := OfCursor([]int{1, 2, 3}, 2, 10)
	assert.False(t, p.Last)
	assert.Equal(t, []int{1, 2}, p.Content)
	assert.Equal(t, int64(10), p.TotalElements)

	p = OfCursor([]int{1, 2}, 2, 2)
	assert.True(t, p.Last)
	assert.Len(t, p.Content, 2)

	var none []int
	p = OfCursor(none, 2, 0)
	assert.True(t, p.Last)
	assert.NotNil(t, p.Content)
}

func TestOfOffsetAndMap(t *testing.T) {
	p := OfOffset([]int{1, 2}, Request{Page: 0, Size: 2}, 3)
	assert.False(t, p.Last)

	p = OfOffset([]int{3}, Request{Page: 1, Size: 2}, 3)
	assert.True(t, p.Last)

	m := Map(p, func(v int) string { return string(rune('a' + v)) })
	assert.Equal(t, []string{"d"}, m.Content)
	assert.True(t, m.Last)
}
