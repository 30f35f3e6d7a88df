package scroll

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numberedBuilder(i int) string {
	return fmt.Sprintf("item-%d", i)
}

func TestListVisibleRange(t *testing.T) {
	tests := []struct {
		name       string
		count      int
		height     int
		itemHeight int
		gap        int
		offset     int
		wantFrom   int
		wantTo     int
	}{
		{
			name:     "unsized list is empty",
			count:    50,
			height:   0,
			wantFrom: 0,
			wantTo:   0,
		},
		{
			name:     "single-line items fill the viewport",
			count:    50,
			height:   10,
			wantFrom: 0,
			wantTo:   10,
		},
		{
			name:     "offset shifts the window",
			count:    50,
			height:   10,
			offset:   5,
			wantFrom: 5,
			wantTo:   15,
		},
		{
			name:     "short list is fully visible",
			count:    3,
			height:   10,
			wantFrom: 0,
			wantTo:   3,
		},
		{
			name:       "tall items include the partial trailing one",
			count:      50,
			height:     10,
			itemHeight: 3,
			wantFrom:   0,
			wantTo:     4,
		},
		{
			name:     "gaps reduce the visible count",
			count:    50,
			height:   10,
			gap:      1,
			wantFrom: 0,
			wantTo:   5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewList(tt.count, numberedBuilder)
			l.ItemHeight = tt.itemHeight
			l.Gap = tt.gap
			l.SetSize(20, tt.height)
			l.ScrollTo(tt.offset)

			from, to := l.VisibleRange()
			assert.Equal(t, tt.wantFrom, from)
			assert.Equal(t, tt.wantTo, to)
		})
	}
}

func TestListScrollClamping(t *testing.T) {
	l := NewList(50, numberedBuilder)
	l.SetSize(20, 10)

	l.ScrollTo(1000)
	assert.Equal(t, 40, l.Offset(), "offset clamps to count minus viewport")
	assert.True(t, l.AtBottom())

	l.ScrollBy(-1000)
	assert.Equal(t, 0, l.Offset())

	l.GotoBottom()
	assert.Equal(t, 40, l.Offset())
	l.GotoTop()
	assert.Equal(t, 0, l.Offset())
}

func TestListViewWindow(t *testing.T) {
	l := NewList(50, numberedBuilder)
	l.SetSize(20, 5)
	l.ScrollTo(10)

	out := l.View()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "item-10", lines[0])
	assert.Equal(t, "item-14", lines[4])
	assert.NotContains(t, out, "item-15")
}

func TestListViewReverse(t *testing.T) {
	l := NewList(50, numberedBuilder)
	l.Reverse = true
	l.SetSize(20, 5)

	lines := strings.Split(l.View(), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "item-4", lines[0])
	assert.Equal(t, "item-0", lines[4])
}

func TestListItemHeightNormalization(t *testing.T) {
	l := NewList(3, func(i int) string { return "a\nb\nc\nd" })
	l.ItemHeight = 2
	l.SetSize(20, 10)

	lines := strings.Split(l.View(), "\n")
	require.Len(t, lines, 6, "each item truncates to two lines")
	assert.Equal(t, []string{"a", "b"}, lines[:2])
}

func TestListStaticItems(t *testing.T) {
	l := NewListItems([]string{"one", "two", "three"})
	l.SetSize(20, 10)

	assert.True(t, l.Static())
	assert.Equal(t, 3, l.Count)
	assert.Equal(t, "one\ntwo\nthree", l.View())
}

func TestListUpdateNavigation(t *testing.T) {
	l := NewList(50, numberedBuilder)
	l.SetSize(20, 10)

	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, l.Offset())

	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, l.Offset())

	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 10, l.Offset())

	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, 40, l.Offset())

	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, 0, l.Offset())

	l, _ = l.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	assert.Equal(t, DefaultWheelDelta, l.Offset())

	l, _ = l.Update(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	assert.Equal(t, 0, l.Offset())

	l, _ = l.Update(tea.WindowSizeMsg{Width: 30, Height: 50})
	assert.Equal(t, 30, l.Width)
	assert.Equal(t, 50, l.Height)
}

func TestListSetCountReclamps(t *testing.T) {
	l := NewList(50, numberedBuilder)
	l.SetSize(20, 10)
	l.GotoBottom()
	require.Equal(t, 40, l.Offset())

	l.SetCount(20)
	assert.Equal(t, 10, l.Offset(), "shrinking the list pulls the offset back")
}

func TestListCloneSharesIdentity(t *testing.T) {
	l := NewList(50, numberedBuilder)
	l.SetSize(20, 10)
	l.ScrollTo(7)

	c := l.Clone()
	assert.Equal(t, l.ID(), c.ID())
	assert.Equal(t, 7, c.Offset())

	c.ScrollTo(3)
	assert.Equal(t, 7, l.Offset(), "clone scrolling leaves the original untouched")
}
