package scroll

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSliver wraps a SliverList and records the windows reported to it.
type recordingSliver struct {
	*SliverList
	windows [][2]int
	cmd     tea.Cmd
}

func (r *recordingSliver) OnWindow(start, end int) tea.Cmd {
	r.windows = append(r.windows, [2]int{start, end})
	return r.cmd
}

func prefixedSliver(prefix string, count int) *SliverList {
	return NewSliverList(count, func(i int) string {
		return fmt.Sprintf("%s%d", prefix, i)
	})
}

func TestViewStitchesSlivers(t *testing.T) {
	v := NewView(prefixedSliver("a", 5), prefixedSliver("b", 5))
	v.SetSize(20, 4)

	assert.Equal(t, 10, v.TotalLines())
	assert.Equal(t, "a0\na1\na2\na3", v.View())

	v.ScrollTo(3)
	assert.Equal(t, "a3\na4\nb0\nb1", v.View(), "the window spans the sliver boundary")

	v.ScrollTo(6)
	assert.Equal(t, "b1\nb2\nb3\nb4", v.View())
}

func TestViewScrollClamping(t *testing.T) {
	v := NewView(prefixedSliver("a", 5), prefixedSliver("b", 5))
	v.SetSize(20, 4)

	v.ScrollTo(100)
	assert.Equal(t, 6, v.Offset())
	assert.True(t, v.AtBottom())

	v.ScrollBy(-100)
	assert.Equal(t, 0, v.Offset())
}

func TestViewUpdateNavigation(t *testing.T) {
	v := NewView(prefixedSliver("a", 20))
	v.SetSize(20, 5)

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, v.Offset())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 6, v.Offset())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, 15, v.Offset())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, 0, v.Offset())

	v, _ = v.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	assert.Equal(t, DefaultWheelDelta, v.Offset())
}

func TestViewDispatchesWindows(t *testing.T) {
	first := &recordingSliver{SliverList: prefixedSliver("a", 5)}
	second := &recordingSliver{SliverList: prefixedSliver("b", 5)}
	v := NewView(first, second)

	// Unsized: both slivers are offscreen.
	v, _ = v.Update(tea.WindowSizeMsg{Width: 20, Height: 0})
	require.NotEmpty(t, first.windows)
	assert.Equal(t, [2]int{0, 0}, first.windows[len(first.windows)-1])

	// Sized to four lines: only the first sliver is visible.
	v, _ = v.Update(tea.WindowSizeMsg{Width: 20, Height: 4})
	assert.Equal(t, [2]int{0, 4}, first.windows[len(first.windows)-1])
	assert.Equal(t, [2]int{0, 0}, second.windows[len(second.windows)-1])

	// Scrolled across the boundary: both partially visible.
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, [2]int{0, 0}, first.windows[len(first.windows)-1])
	assert.Equal(t, [2]int{1, 5}, second.windows[len(second.windows)-1])
}

func TestViewCollectsObserverCommands(t *testing.T) {
	probe := func() tea.Msg { return "probe" }
	s := &recordingSliver{SliverList: prefixedSliver("a", 5), cmd: probe}
	v := NewView(s)
	v.SetSize(20, 4)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.NotNil(t, cmd)

	msgs := drainCmd(cmd)
	require.Len(t, msgs, 1)
	assert.Equal(t, "probe", msgs[0])
}

func TestViewInitRequestsSync(t *testing.T) {
	s := &recordingSliver{SliverList: prefixedSliver("a", 5)}
	v := NewView(s)
	v.SetSize(20, 4)

	cmd := v.Init()
	require.NotNil(t, cmd)

	v, _ = v.Update(cmd())
	require.NotEmpty(t, s.windows, "the startup sync dispatches initial windows")
	assert.Equal(t, [2]int{0, 4}, s.windows[len(s.windows)-1])
}

func TestViewIgnoresForeignSync(t *testing.T) {
	s := &recordingSliver{SliverList: prefixedSliver("a", 5)}
	v := NewView(s)
	v.SetSize(20, 4)

	v, _ = v.Update(viewSyncMsg{id: "someone-else"})
	assert.Empty(t, s.windows)
}

// drainCmd executes a command tree, flattening batches into the messages they
// produce.
func drainCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, drainCmd(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}
