package scroll

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/oklog/ulid/v2"
	"github.com/samber/lo"
)

// View is a composite scroll view hosting a sequence of slivers under a
// single line-based scroll offset. It owns key and mouse handling and
// stitches the visible line ranges of its slivers into one viewport.
type View struct {
	Width  int
	Height int

	// WheelDelta is the number of lines scrolled per wheel tick.
	// Zero means DefaultWheelDelta.
	WheelDelta int

	KeyMap KeyMap
	// Style frames the rendered viewport.
	Style lipgloss.Style

	slivers []Sliver
	offset  int
	id      string
}

// viewSyncMsg asks a View to re-dispatch sliver windows after startup, so
// observers see their initial visibility without waiting for user input.
type viewSyncMsg struct{ id string }

// NewView creates a composite scroll view over the given slivers.
func NewView(slivers ...Sliver) *View {
	return &View{
		slivers: slivers,
		KeyMap:  DefaultKeyMap(),
		id:      ulid.Make().String(),
	}
}

// ID returns the stable identity of this view instance.
func (v *View) ID() string { return v.id }

// Slivers returns the hosted slivers in order.
func (v *View) Slivers() []Sliver { return v.slivers }

// SetSlivers replaces the hosted slivers and re-clamps the scroll position.
func (v *View) SetSlivers(slivers ...Sliver) {
	v.slivers = slivers
	v.clamp()
}

// Init schedules one post-startup window dispatch.
func (v *View) Init() tea.Cmd {
	id := v.id
	return func() tea.Msg { return viewSyncMsg{id: id} }
}

// Update handles key, mouse wheel, and window size messages, then dispatches
// the resulting sliver windows to any WindowObserver slivers. Observer
// commands are returned batched.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.KeyMap.Up):
			v.ScrollBy(-1)
		case key.Matches(msg, v.KeyMap.Down):
			v.ScrollBy(1)
		case key.Matches(msg, v.KeyMap.PageUp):
			v.ScrollBy(-v.Height)
		case key.Matches(msg, v.KeyMap.PageDown):
			v.ScrollBy(v.Height)
		case key.Matches(msg, v.KeyMap.Top):
			v.ScrollTo(0)
		case key.Matches(msg, v.KeyMap.Bottom):
			v.ScrollTo(v.maxOffset())
		}
	case tea.MouseMsg:
		switch msg.Button { //nolint:exhaustive // Only wheel buttons scroll.
		case tea.MouseButtonWheelUp:
			v.ScrollBy(-v.wheelDelta())
		case tea.MouseButtonWheelDown:
			v.ScrollBy(v.wheelDelta())
		}
	case tea.WindowSizeMsg:
		v.SetSize(msg.Width, msg.Height)
	case viewSyncMsg:
		if msg.id != v.id {
			return v, nil
		}
	}
	return v, tea.Batch(v.dispatchWindows()...)
}

// View renders the slivers' lines intersecting the viewport.
func (v *View) View() string {
	if v.Height <= 0 {
		return v.Style.Render("")
	}

	lines := make([]string, 0, v.Height)
	acc := 0
	for _, s := range v.slivers {
		n := s.LineCount(v.Width)
		start := lo.Clamp(v.offset-acc, 0, n)
		end := lo.Clamp(v.offset+v.Height-acc, 0, n)
		if end > start {
			lines = append(lines, s.RenderLines(v.Width, start, end)...)
		}
		acc += n
	}
	return v.Style.Render(strings.Join(lines, "\n"))
}

// SetSize sets the viewport dimensions and re-clamps the scroll position.
func (v *View) SetSize(width, height int) {
	v.Width = width
	v.Height = height
	v.clamp()
}

// Offset returns the first visible line.
func (v *View) Offset() int { return v.offset }

// ScrollBy scrolls by delta lines, clamping to the valid range.
func (v *View) ScrollBy(delta int) { v.ScrollTo(v.offset + delta) }

// ScrollTo scrolls so that the given line is the first visible one, clamping
// to the valid range.
func (v *View) ScrollTo(line int) {
	v.offset = line
	v.clamp()
}

// AtBottom reports whether the view is scrolled to its end.
func (v *View) AtBottom() bool { return v.offset >= v.maxOffset() }

// TotalLines returns the combined line count of all slivers.
func (v *View) TotalLines() int {
	return lo.SumBy(v.slivers, func(s Sliver) int { return s.LineCount(v.Width) })
}

// dispatchWindows reports each observer sliver's visible line window and
// collects their commands.
func (v *View) dispatchWindows() []tea.Cmd {
	var cmds []tea.Cmd
	acc := 0
	for _, s := range v.slivers {
		n := s.LineCount(v.Width)
		start, end := 0, 0
		if v.Height > 0 {
			start = lo.Clamp(v.offset-acc, 0, n)
			end = lo.Clamp(v.offset+v.Height-acc, 0, n)
			if end <= start {
				start, end = 0, 0
			}
		}
		if obs, ok := s.(WindowObserver); ok {
			if cmd := obs.OnWindow(start, end); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		acc += n
	}
	return cmds
}

func (v *View) wheelDelta() int {
	if v.WheelDelta < 1 {
		return DefaultWheelDelta
	}
	return v.WheelDelta
}

func (v *View) maxOffset() int {
	return max(0, v.TotalLines()-v.Height)
}

func (v *View) clamp() {
	v.offset = lo.Clamp(v.offset, 0, v.maxOffset())
}
