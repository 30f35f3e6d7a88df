package scroll

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliverListLineCount(t *testing.T) {
	tests := []struct {
		name       string
		count      int
		itemHeight int
		want       int
	}{
		{name: "one line per item", count: 5, want: 5},
		{name: "two lines per item", count: 5, itemHeight: 2, want: 10},
		{name: "empty", count: 0, itemHeight: 3, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSliverList(tt.count, numberedBuilder)
			s.ItemHeight = tt.itemHeight
			assert.Equal(t, tt.want, s.LineCount(80))
		})
	}
}

func TestSliverListRenderLines(t *testing.T) {
	s := NewSliverList(4, func(i int) string { return fmt.Sprintf("s%d", i) })
	s.ItemHeight = 2

	lines := s.RenderLines(80, 1, 5)
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"", "s1", "", "s2"}, lines, "single-line items pad to the item height")
}

func TestSliverListItemRange(t *testing.T) {
	s := NewSliverList(10, numberedBuilder)
	s.ItemHeight = 2

	tests := []struct {
		name     string
		lineFrom int
		lineTo   int
		wantFrom int
		wantTo   int
	}{
		{name: "empty window", lineFrom: 0, lineTo: 0, wantFrom: 0, wantTo: 0},
		{name: "aligned window", lineFrom: 0, lineTo: 4, wantFrom: 0, wantTo: 2},
		{name: "partial items count as visible", lineFrom: 1, lineTo: 5, wantFrom: 0, wantTo: 3},
		{name: "tail window clamps to count", lineFrom: 18, lineTo: 20, wantFrom: 9, wantTo: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := s.ItemRange(tt.lineFrom, tt.lineTo)
			assert.Equal(t, tt.wantFrom, from)
			assert.Equal(t, tt.wantTo, to)
		})
	}
}

func TestSliverGridGeometry(t *testing.T) {
	s := NewSliverGrid(5, 2, cellBuilder)

	assert.Equal(t, 3, s.LineCount(20), "five items in two columns are three rows")

	lines := s.RenderLines(20, 0, 1)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "c0")
	assert.Contains(t, lines[0], "c1")

	lines = s.RenderLines(20, 2, 3)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "c4")
	assert.NotContains(t, lines[0], "c3")
}

func TestSliverGridItemRange(t *testing.T) {
	s := NewSliverGrid(5, 2, cellBuilder)

	from, to := s.ItemRange(1, 3)
	assert.Equal(t, 2, from)
	assert.Equal(t, 5, to)

	from, to = s.ItemRange(0, 0)
	assert.Equal(t, 0, from)
	assert.Equal(t, 0, to)
}

func TestSliverStaticForms(t *testing.T) {
	sl := NewSliverListItems([]string{"a", "b"})
	assert.True(t, sl.Static())
	assert.Equal(t, []string{"a", "b"}, sl.RenderLines(80, 0, 2))

	sg := NewSliverGridItems([]string{"a", "b", "c"}, 2)
	assert.True(t, sg.Static())
	assert.Equal(t, 2, sg.LineCount(20))
}
