package scroll

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/oklog/ulid/v2"
	"github.com/samber/lo"
)

// Rendering defaults shared by the scrollable components.
const (
	// DefaultWheelDelta is the number of items scrolled per mouse wheel tick.
	DefaultWheelDelta = 3
	// defaultItemHeight is assumed when ItemHeight is left at its zero value.
	defaultItemHeight = 1
)

// ItemBuilder produces the rendered content for the item at the given index.
// It is only invoked for indices inside [0, Count).
type ItemBuilder func(index int) string

// List is a builder-style virtual list. Only the items intersecting the
// viewport are produced and rendered on each View call.
//
// The item source is exactly one of Build (builder form, NewList) or Items
// (static form, NewListItems). The builder form is required by layers that
// extend the sequence with synthetic items, such as scrolltail.
type List struct {
	// Count is the number of items the builder can produce.
	Count int
	// Build produces the item at a given index (builder form).
	Build ItemBuilder
	// Items holds pre-rendered items (static form).
	Items []string

	// Width and Height bound the viewport. A zero Height renders nothing;
	// both are usually driven from tea.WindowSizeMsg.
	Width  int
	Height int

	// Reverse flips the presentation order so item 0 renders at the bottom.
	Reverse bool
	// Gap is the number of blank lines between consecutive items.
	Gap int
	// ItemHeight is the rendered height of every item in lines (minimum 1).
	// Shorter items are padded, taller ones truncated.
	ItemHeight int
	// WheelDelta is the number of items scrolled per wheel tick.
	// Zero means DefaultWheelDelta.
	WheelDelta int

	KeyMap KeyMap
	// Style frames the rendered viewport (borders, padding, colors).
	Style lipgloss.Style

	id     string
	offset int
}

// NewList creates a builder-form list over count items.
func NewList(count int, build ItemBuilder) *List {
	return &List{
		Count:  count,
		Build:  build,
		KeyMap: DefaultKeyMap(),
		id:     ulid.Make().String(),
	}
}

// NewListItems creates a static-form list over pre-rendered items.
func NewListItems(items []string) *List {
	return &List{
		Count:  len(items),
		Items:  items,
		KeyMap: DefaultKeyMap(),
		id:     ulid.Make().String(),
	}
}

// ID returns the stable identity of this list instance. Copies made with
// Clone share it, which is how derived lists are recognized as the same
// scrollable across rebuilds.
func (l *List) ID() string { return l.id }

// Clone returns a shallow copy sharing the receiver's identity and scroll
// position.
func (l *List) Clone() *List {
	c := *l
	return &c
}

// Static reports whether the list uses the static (pre-rendered) item form.
func (l *List) Static() bool { return l.Build == nil }

// Init implements the Bubble Tea component convention. Lists have no
// startup work.
func (l *List) Init() tea.Cmd { return nil }

// Update handles key, mouse wheel, and window size messages.
func (l *List) Update(msg tea.Msg) (*List, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, l.KeyMap.Up):
			l.ScrollBy(-1)
		case key.Matches(msg, l.KeyMap.Down):
			l.ScrollBy(1)
		case key.Matches(msg, l.KeyMap.PageUp):
			l.ScrollBy(-l.visibleCount())
		case key.Matches(msg, l.KeyMap.PageDown):
			l.ScrollBy(l.visibleCount())
		case key.Matches(msg, l.KeyMap.Top):
			l.GotoTop()
		case key.Matches(msg, l.KeyMap.Bottom):
			l.GotoBottom()
		}
	case tea.MouseMsg:
		switch msg.Button { //nolint:exhaustive // Only wheel buttons scroll.
		case tea.MouseButtonWheelUp:
			l.ScrollBy(-l.wheelDelta())
		case tea.MouseButtonWheelDown:
			l.ScrollBy(l.wheelDelta())
		}
	case tea.WindowSizeMsg:
		l.SetSize(msg.Width, msg.Height)
	}
	return l, nil
}

// View renders the visible window of the list.
func (l *List) View() string {
	from, to := l.VisibleRange()
	if to <= from {
		return l.Style.Render("")
	}

	indices := lo.RangeFrom(from, to-from)
	if l.Reverse {
		indices = lo.Reverse(indices)
	}

	gapLines := strings.Repeat("\n", l.Gap)
	blocks := make([]string, 0, len(indices))
	for _, i := range indices {
		blocks = append(blocks, strings.Join(blockLines(l.item(i), l.itemHeight()), "\n"))
	}
	return l.Style.Render(strings.Join(blocks, "\n"+gapLines))
}

// VisibleRange returns the half-open item index range [from, to) currently
// inside the viewport, including partially visible items. An unsized list
// reports an empty range.
func (l *List) VisibleRange() (from, to int) {
	if l.Height <= 0 || l.Count <= 0 {
		return l.offset, l.offset
	}
	return l.offset, min(l.Count, l.offset+l.visibleCount())
}

// SetSize sets the viewport dimensions and re-clamps the scroll position.
func (l *List) SetSize(width, height int) {
	l.Width = width
	l.Height = height
	l.clamp()
}

// SetCount changes the item count and re-clamps the scroll position. The
// builder must be able to produce every index in [0, count).
func (l *List) SetCount(count int) {
	l.Count = count
	l.clamp()
}

// Offset returns the index of the first visible item.
func (l *List) Offset() int { return l.offset }

// ScrollBy scrolls by delta items, clamping to the valid range.
func (l *List) ScrollBy(delta int) { l.ScrollTo(l.offset + delta) }

// ScrollTo scrolls so that the given item index is the first visible one,
// clamping to the valid range.
func (l *List) ScrollTo(index int) {
	l.offset = index
	l.clamp()
}

// GotoTop scrolls to the beginning of the list.
func (l *List) GotoTop() { l.ScrollTo(0) }

// GotoBottom scrolls to the end of the list.
func (l *List) GotoBottom() { l.ScrollTo(l.maxOffset()) }

// AtBottom reports whether the list is scrolled to its end.
func (l *List) AtBottom() bool { return l.offset >= l.maxOffset() }

func (l *List) item(i int) string {
	if l.Build != nil {
		return l.Build(i)
	}
	return l.Items[i]
}

func (l *List) itemHeight() int {
	if l.ItemHeight < defaultItemHeight {
		return defaultItemHeight
	}
	return l.ItemHeight
}

func (l *List) wheelDelta() int {
	if l.WheelDelta < 1 {
		return DefaultWheelDelta
	}
	return l.WheelDelta
}

// visibleCount is the number of items, including a trailing partial one, that
// fit in the viewport.
func (l *List) visibleCount() int {
	if l.Height <= 0 {
		return 0
	}
	step := l.itemHeight() + l.Gap
	return (l.Height-1)/step + 1
}

func (l *List) maxOffset() int {
	return max(0, l.Count-l.visibleCount())
}

func (l *List) clamp() {
	l.offset = lo.Clamp(l.offset, 0, l.maxOffset())
}
