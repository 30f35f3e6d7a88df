package scroll

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/oklog/ulid/v2"
	"github.com/samber/lo"
)

// Sliver is a scrollable-content fragment composed inside a View. A sliver
// does not own a viewport or handle input; it only reports its total height
// and renders requested line ranges. The hosting View owns the scroll offset.
type Sliver interface {
	// ID returns the stable identity of the sliver instance.
	ID() string
	// LineCount returns the total rendered height in lines at the given width.
	LineCount(width int) int
	// RenderLines renders the half-open line range [start, end), which the
	// caller guarantees lies inside [0, LineCount(width)).
	RenderLines(width, start, end int) []string
}

// WindowObserver is an optional interface for slivers that react to the
// window of their content currently inside the hosting View's viewport. The
// View invokes it after every update with the sliver-local line range
// [start, end) that is visible; (0, 0) means the sliver is offscreen. The
// returned command, if any, is dispatched by the View.
type WindowObserver interface {
	OnWindow(start, end int) tea.Cmd
}

// SliverList is the sliver counterpart of List: a builder-style item sequence
// rendered as ItemHeight lines per item.
type SliverList struct {
	// Count is the number of items the builder can produce.
	Count int
	// Build produces the item at a given index (builder form).
	Build ItemBuilder
	// Items holds pre-rendered items (static form).
	Items []string

	// ItemHeight is the rendered height of every item in lines (minimum 1).
	ItemHeight int

	id string
}

// NewSliverList creates a builder-form sliver list over count items.
func NewSliverList(count int, build ItemBuilder) *SliverList {
	return &SliverList{Count: count, Build: build, id: ulid.Make().String()}
}

// NewSliverListItems creates a static-form sliver list.
func NewSliverListItems(items []string) *SliverList {
	return &SliverList{Count: len(items), Items: items, id: ulid.Make().String()}
}

// ID returns the stable identity of this sliver instance.
func (s *SliverList) ID() string { return s.id }

// Clone returns a shallow copy sharing the receiver's identity.
func (s *SliverList) Clone() *SliverList {
	c := *s
	return &c
}

// Static reports whether the sliver uses the static (pre-rendered) item form.
func (s *SliverList) Static() bool { return s.Build == nil }

// LineCount implements Sliver.
func (s *SliverList) LineCount(int) int {
	return s.Count * s.itemHeight()
}

// RenderLines implements Sliver.
func (s *SliverList) RenderLines(_, start, end int) []string {
	ih := s.itemHeight()
	lines := make([]string, 0, end-start)

	itemIdx := -1
	var itemLines []string
	for line := start; line < end; line++ {
		if i := line / ih; i != itemIdx {
			itemIdx = i
			itemLines = blockLines(s.item(i), ih)
		}
		lines = append(lines, itemLines[line%ih])
	}
	return lines
}

// ItemRange converts a sliver-local line range to the half-open item index
// range it covers.
func (s *SliverList) ItemRange(start, end int) (from, to int) {
	if end <= start {
		return 0, 0
	}
	ih := s.itemHeight()
	return start / ih, min(s.Count, ceilDiv(end, ih))
}

func (s *SliverList) item(i int) string {
	if s.Build != nil {
		return s.Build(i)
	}
	return s.Items[i]
}

func (s *SliverList) itemHeight() int {
	if s.ItemHeight < defaultItemHeight {
		return defaultItemHeight
	}
	return s.ItemHeight
}

// SliverGrid is the sliver counterpart of Grid: items flow into rows of
// Columns cells, each row rendered as ItemHeight lines.
type SliverGrid struct {
	// Count is the number of items the builder can produce.
	Count int
	// Build produces the item at a given index (builder form).
	Build ItemBuilder
	// Items holds pre-rendered items (static form).
	Items []string

	// Columns is the number of cells per row (minimum 1).
	Columns int
	// ItemHeight is the rendered height of every cell in lines (minimum 1).
	ItemHeight int
	// CellStyle is applied to every cell before the row is joined.
	CellStyle lipgloss.Style

	id string
}

// NewSliverGrid creates a builder-form sliver grid over count items with the
// given number of columns.
func NewSliverGrid(count, columns int, build ItemBuilder) *SliverGrid {
	return &SliverGrid{Count: count, Columns: columns, Build: build, id: ulid.Make().String()}
}

// NewSliverGridItems creates a static-form sliver grid.
func NewSliverGridItems(items []string, columns int) *SliverGrid {
	return &SliverGrid{Count: len(items), Columns: columns, Items: items, id: ulid.Make().String()}
}

// ID returns the stable identity of this sliver instance.
func (s *SliverGrid) ID() string { return s.id }

// Clone returns a shallow copy sharing the receiver's identity.
func (s *SliverGrid) Clone() *SliverGrid {
	c := *s
	return &c
}

// Static reports whether the sliver uses the static (pre-rendered) item form.
func (s *SliverGrid) Static() bool { return s.Build == nil }

// LineCount implements Sliver.
func (s *SliverGrid) LineCount(int) int {
	return ceilDiv(s.Count, s.cols()) * s.itemHeight()
}

// RenderLines implements Sliver.
func (s *SliverGrid) RenderLines(width, start, end int) []string {
	ih := s.itemHeight()
	lines := make([]string, 0, end-start)

	rowIdx := -1
	var rowLines []string
	for line := start; line < end; line++ {
		if r := line / ih; r != rowIdx {
			rowIdx = r
			rowLines = blockLines(s.renderRow(width, r), ih)
		}
		lines = append(lines, rowLines[line%ih])
	}
	return lines
}

// ItemRange converts a sliver-local line range to the half-open item index
// range whose rows it covers.
func (s *SliverGrid) ItemRange(start, end int) (from, to int) {
	if end <= start {
		return 0, 0
	}
	ih := s.itemHeight()
	cols := s.cols()
	return (start / ih) * cols, min(s.Count, ceilDiv(end, ih)*cols)
}

func (s *SliverGrid) renderRow(width, row int) string {
	cols := s.cols()
	start := row * cols
	count := min(cols, s.Count-start)

	style := s.CellStyle.Height(s.itemHeight())
	if width > 0 {
		style = style.Width(width / cols)
	}

	cells := lo.Map(lo.RangeFrom(start, count), func(i, _ int) string {
		return style.Render(s.item(i))
	})
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (s *SliverGrid) item(i int) string {
	if s.Build != nil {
		return s.Build(i)
	}
	return s.Items[i]
}

func (s *SliverGrid) cols() int {
	return max(1, s.Columns)
}

func (s *SliverGrid) itemHeight() int {
	if s.ItemHeight < defaultItemHeight {
		return defaultItemHeight
	}
	return s.ItemHeight
}
