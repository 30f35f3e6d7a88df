package scroll

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/oklog/ulid/v2"
	"github.com/samber/lo"
)

// Grid is a builder-style virtual grid. Items flow left to right into rows of
// Columns cells, and the grid scrolls by whole rows. Like List, only rows
// intersecting the viewport are produced and rendered.
type Grid struct {
	// Count is the number of items the builder can produce.
	Count int
	// Build produces the item at a given index (builder form).
	Build ItemBuilder
	// Items holds pre-rendered items (static form).
	Items []string

	// Columns is the number of cells per row (minimum 1).
	Columns int

	Width  int
	Height int

	// Gap is the number of blank lines between consecutive rows.
	Gap int
	// ItemHeight is the rendered height of every cell in lines (minimum 1).
	ItemHeight int
	// WheelDelta is the number of rows scrolled per wheel tick.
	// Zero means DefaultWheelDelta.
	WheelDelta int

	KeyMap KeyMap
	// Style frames the rendered viewport.
	Style lipgloss.Style
	// CellStyle is applied to every cell before the row is joined. Its width
	// is overridden with the computed cell width when the grid has one.
	CellStyle lipgloss.Style

	id     string
	offset int // in rows
}

// NewGrid creates a builder-form grid over count items with the given number
// of columns.
func NewGrid(count, columns int, build ItemBuilder) *Grid {
	return &Grid{
		Count:   count,
		Columns: columns,
		Build:   build,
		KeyMap:  DefaultKeyMap(),
		id:      ulid.Make().String(),
	}
}

// NewGridItems creates a static-form grid over pre-rendered items.
func NewGridItems(items []string, columns int) *Grid {
	return &Grid{
		Count:   len(items),
		Columns: columns,
		Items:   items,
		KeyMap:  DefaultKeyMap(),
		id:      ulid.Make().String(),
	}
}

// ID returns the stable identity of this grid instance.
func (g *Grid) ID() string { return g.id }

// Clone returns a shallow copy sharing the receiver's identity and scroll
// position.
func (g *Grid) Clone() *Grid {
	c := *g
	return &c
}

// Static reports whether the grid uses the static (pre-rendered) item form.
func (g *Grid) Static() bool { return g.Build == nil }

// Init implements the Bubble Tea component convention.
func (g *Grid) Init() tea.Cmd { return nil }

// Update handles key, mouse wheel, and window size messages.
func (g *Grid) Update(msg tea.Msg) (*Grid, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, g.KeyMap.Up):
			g.ScrollBy(-1)
		case key.Matches(msg, g.KeyMap.Down):
			g.ScrollBy(1)
		case key.Matches(msg, g.KeyMap.PageUp):
			g.ScrollBy(-g.visibleRows())
		case key.Matches(msg, g.KeyMap.PageDown):
			g.ScrollBy(g.visibleRows())
		case key.Matches(msg, g.KeyMap.Top):
			g.ScrollTo(0)
		case key.Matches(msg, g.KeyMap.Bottom):
			g.ScrollTo(g.maxOffset())
		}
	case tea.MouseMsg:
		switch msg.Button { //nolint:exhaustive // Only wheel buttons scroll.
		case tea.MouseButtonWheelUp:
			g.ScrollBy(-g.wheelDelta())
		case tea.MouseButtonWheelDown:
			g.ScrollBy(g.wheelDelta())
		}
	case tea.WindowSizeMsg:
		g.SetSize(msg.Width, msg.Height)
	}
	return g, nil
}

// View renders the visible rows of the grid.
func (g *Grid) View() string {
	if g.Height <= 0 || g.Count <= 0 {
		return g.Style.Render("")
	}

	gapLines := strings.Repeat("\n", g.Gap)
	last := min(g.rows(), g.offset+g.visibleRows())
	rows := make([]string, 0, last-g.offset)
	for r := g.offset; r < last; r++ {
		rows = append(rows, g.renderRow(r))
	}
	return g.Style.Render(strings.Join(rows, "\n"+gapLines))
}

// renderRow renders one row of cells joined horizontally.
func (g *Grid) renderRow(row int) string {
	cols := g.cols()
	start := row * cols
	count := min(cols, g.Count-start)

	style := g.CellStyle.Height(g.itemHeight())
	if cw := g.cellWidth(); cw > 0 {
		style = style.Width(cw)
	}

	cells := lo.Map(lo.RangeFrom(start, count), func(i, _ int) string {
		return style.Render(g.item(i))
	})
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// VisibleRange returns the half-open item index range [from, to) whose rows
// currently intersect the viewport. An unsized grid reports an empty range.
func (g *Grid) VisibleRange() (from, to int) {
	if g.Height <= 0 || g.Count <= 0 {
		return g.offset * g.cols(), g.offset * g.cols()
	}
	from = g.offset * g.cols()
	to = min(g.Count, (g.offset+g.visibleRows())*g.cols())
	return from, to
}

// SetSize sets the viewport dimensions and re-clamps the scroll position.
func (g *Grid) SetSize(width, height int) {
	g.Width = width
	g.Height = height
	g.clamp()
}

// SetCount changes the item count and re-clamps the scroll position.
func (g *Grid) SetCount(count int) {
	g.Count = count
	g.clamp()
}

// Offset returns the index of the first visible row.
func (g *Grid) Offset() int { return g.offset }

// ScrollBy scrolls by delta rows, clamping to the valid range.
func (g *Grid) ScrollBy(delta int) { g.ScrollTo(g.offset + delta) }

// ScrollTo scrolls so that the given row is the first visible one, clamping
// to the valid range.
func (g *Grid) ScrollTo(row int) {
	g.offset = row
	g.clamp()
}

// AtBottom reports whether the grid is scrolled to its end.
func (g *Grid) AtBottom() bool { return g.offset >= g.maxOffset() }

func (g *Grid) item(i int) string {
	if g.Build != nil {
		return g.Build(i)
	}
	return g.Items[i]
}

func (g *Grid) cols() int {
	return max(1, g.Columns)
}

// rows is the total row count.
func (g *Grid) rows() int {
	return ceilDiv(g.Count, g.cols())
}

func (g *Grid) cellWidth() int {
	if g.Width <= 0 {
		return 0
	}
	return g.Width / g.cols()
}

func (g *Grid) itemHeight() int {
	if g.ItemHeight < defaultItemHeight {
		return defaultItemHeight
	}
	return g.ItemHeight
}

func (g *Grid) wheelDelta() int {
	if g.WheelDelta < 1 {
		return DefaultWheelDelta
	}
	return g.WheelDelta
}

func (g *Grid) visibleRows() int {
	if g.Height <= 0 {
		return 0
	}
	step := g.itemHeight() + g.Gap
	return (g.Height-1)/step + 1
}

func (g *Grid) maxOffset() int {
	return max(0, g.rows()-g.visibleRows())
}

func (g *Grid) clamp() {
	g.offset = lo.Clamp(g.offset, 0, g.maxOffset())
}
