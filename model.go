package scrolltail

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuikit/scrolltail/scroll"
)

// childKind tags the closed set of supported scrollable kinds. Dispatch is a
// switch over this tag rather than open-ended polymorphism: the supported set
// is fixed and every switch over it is exhaustive.
type childKind int

const (
	kindPassthrough childKind = iota
	kindList
	kindGrid
	kindSliverList
	kindSliverGrid
)

// visibilityCheckMsg asks a Model to re-evaluate trailing-item visibility
// after the program has started, so a loader that is visible without any
// scrolling still fires.
type visibilityCheckMsg struct{ id string }

// Model wraps a scrollable with trailing load-more items. It is produced by
// Wrap and is never constructed directly.
//
// When wrapping a List or Grid, Model is a tea.Model that delegates input and
// rendering to the extended scrollable. When wrapping a SliverList or
// SliverGrid, Model is a scroll.Sliver to embed in a scroll.View; its
// tea.Model methods are inert.
type Model struct {
	cfg  Config
	kind childKind

	// n is the wrapped scrollable's original item count; extra is the number
	// of synthetic trailing items currently appended after it.
	n     int
	extra int
	trig  *trigger

	list       *scroll.List
	grid       *scroll.Grid
	sliverList *scroll.SliverList
	sliverGrid *scroll.SliverGrid

	// raw is the child exactly as passed to Wrap; passthrough is raw when it
	// happens to be a tea.Model and the kind is unsupported.
	raw         any
	passthrough tea.Model

	// Last observed visible item range, maintained by OnWindow for sliver
	// kinds.
	visFrom, visTo int

	id string
}

// Unwrap returns the child exactly as it was passed to Wrap.
func (m *Model) Unwrap() any { return m.raw }

// Count returns the wrapped scrollable's original item count.
func (m *Model) Count() int { return m.n }

// ExtraCount returns the number of synthetic trailing items currently
// appended.
func (m *Model) ExtraCount() int { return m.extra }

// deferredCheck returns a command that re-evaluates trailing-item visibility
// on the next scheduler tick, after the current render pass has committed.
func (m *Model) deferredCheck() tea.Cmd {
	id := m.id
	return func() tea.Msg { return visibilityCheckMsg{id: id} }
}

// Init schedules one deferred visibility check so that a trailing loader
// already inside the viewport fires without user input. Sliver kinds are
// checked by their hosting scroll.View instead.
func (m *Model) Init() tea.Cmd {
	switch m.kind {
	case kindList, kindGrid:
		return m.deferredCheck()
	case kindPassthrough:
		if m.passthrough != nil {
			return m.passthrough.Init()
		}
	case kindSliverList, kindSliverGrid:
	}
	return nil
}

// Update delegates to the extended scrollable, then fires the fetch command
// if the first trailing item has become visible and this trailing-item
// instance has not fired yet.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if check, ok := msg.(visibilityCheckMsg); ok {
		if check.id == m.id {
			return m, m.maybeFire()
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.kind {
	case kindList:
		m.list, cmd = m.list.Update(msg)
	case kindGrid:
		m.grid, cmd = m.grid.Update(msg)
	case kindPassthrough:
		if m.passthrough != nil {
			m.passthrough, cmd = m.passthrough.Update(msg)
		}
		return m, cmd
	case kindSliverList, kindSliverGrid:
		// Slivers are driven by their hosting scroll.View.
		return m, nil
	}

	if fire := m.maybeFire(); fire != nil {
		if cmd != nil {
			return m, tea.Batch(cmd, fire)
		}
		return m, fire
	}
	return m, cmd
}

// View renders the extended scrollable. Sliver kinds render through their
// hosting scroll.View and return an empty string here.
func (m *Model) View() string {
	switch m.kind {
	case kindList:
		return m.list.View()
	case kindGrid:
		return m.grid.View()
	case kindPassthrough:
		if m.passthrough != nil {
			return m.passthrough.View()
		}
	case kindSliverList, kindSliverGrid:
	}
	return ""
}

// ID implements scroll.Sliver; the wrapped sliver's identity is preserved.
func (m *Model) ID() string { return m.id }

// LineCount implements scroll.Sliver for sliver kinds.
func (m *Model) LineCount(width int) int {
	switch m.kind {
	case kindSliverList:
		return m.sliverList.LineCount(width)
	case kindSliverGrid:
		return m.sliverGrid.LineCount(width)
	case kindPassthrough:
		if s, ok := m.raw.(scroll.Sliver); ok {
			return s.LineCount(width)
		}
	case kindList, kindGrid:
	}
	return 0
}

// RenderLines implements scroll.Sliver for sliver kinds.
func (m *Model) RenderLines(width, start, end int) []string {
	switch m.kind {
	case kindSliverList:
		return m.sliverList.RenderLines(width, start, end)
	case kindSliverGrid:
		return m.sliverGrid.RenderLines(width, start, end)
	case kindPassthrough:
		if s, ok := m.raw.(scroll.Sliver); ok {
			return s.RenderLines(width, start, end)
		}
	case kindList, kindGrid:
	}
	return nil
}

// OnWindow implements scroll.WindowObserver: the hosting scroll.View reports
// the sliver-local line window after every update, which is converted to an
// item range and checked against the trailing index.
func (m *Model) OnWindow(start, end int) tea.Cmd {
	switch m.kind {
	case kindSliverList:
		m.visFrom, m.visTo = m.sliverList.ItemRange(start, end)
	case kindSliverGrid:
		m.visFrom, m.visTo = m.sliverGrid.ItemRange(start, end)
	case kindPassthrough, kindList, kindGrid:
		return nil
	}
	return m.maybeFire()
}

// SetCount informs the wrapper that the caller's item count changed (a page
// arrived, or the sequence was rebuilt). A changed count replaces the
// trailing-item instance, re-arming the fetch trigger, and returns a
// deferred visibility check for the caller to dispatch: if the fresh loader
// is already inside the viewport, the check fires the fetch without waiting
// for further input. No-op on a passthrough or zero-item wrapper.
func (m *Model) SetCount(count int) tea.Cmd {
	if m.dormant() || count == m.n {
		return nil
	}
	m.n = count
	m.trig = &trigger{}
	m.refresh()
	return m.deferredCheck()
}

// SetError toggles the error state. Entering it collapses the trailing items
// to a single error slot and suspends fetching; leaving it restores the
// loaders with a re-armed trigger, which is how callers retry. Like
// SetCount, a transition returns a deferred visibility check for the caller
// to dispatch. Returns a ConfigError if no ErrorBuilder was configured.
func (m *Model) SetError(hasError bool) (tea.Cmd, error) {
	if hasError && m.cfg.ErrorBuilder == nil {
		return nil, newConfigError(ErrMissingErrorBuilder, "")
	}
	if m.dormant() || hasError == m.cfg.HasError {
		m.cfg.HasError = hasError
		return nil, nil
	}
	m.cfg.HasError = hasError
	m.trig = &trigger{}
	m.refresh()
	return m.deferredCheck(), nil
}

// SetCanFetchNextPage toggles whether more pages are available. Disabling
// removes all trailing items; re-enabling appends fresh loaders with a
// re-armed trigger. Like SetCount, a transition returns a deferred
// visibility check for the caller to dispatch.
func (m *Model) SetCanFetchNextPage(ok bool) tea.Cmd {
	if m.dormant() || ok == m.cfg.CanFetchNextPage {
		m.cfg.CanFetchNextPage = ok
		return nil
	}
	m.cfg.CanFetchNextPage = ok
	m.trig = &trigger{}
	m.refresh()
	return m.deferredCheck()
}

// refresh re-runs the tail policy and pushes the extended count into the
// underlying scrollable.
func (m *Model) refresh() {
	m.extra = extraItemCount(m.cfg.HasError, m.cfg.CanFetchNextPage, m.cfg.LoadersCount)
	total := m.n + m.extra
	switch m.kind {
	case kindList:
		m.list.SetCount(total)
	case kindGrid:
		m.grid.SetCount(total)
	case kindSliverList:
		m.sliverList.Count = total
	case kindSliverGrid:
		m.sliverGrid.Count = total
	case kindPassthrough:
	}
}

// maybeFire produces the fetch command when the first trailing item is inside
// the visible range and this trailing-item instance has not fired yet.
func (m *Model) maybeFire() tea.Cmd {
	if m.extra == 0 || m.cfg.HasError {
		return nil
	}
	from, to := m.visibleItems()
	if m.n < from || m.n >= to {
		return nil
	}
	return m.trig.fire(m.cfg.OnFetchNextPage)
}

// visibleItems returns the item index range currently inside the viewport.
func (m *Model) visibleItems() (from, to int) {
	switch m.kind {
	case kindList:
		return m.list.VisibleRange()
	case kindGrid:
		return m.grid.VisibleRange()
	case kindSliverList, kindSliverGrid:
		return m.visFrom, m.visTo
	case kindPassthrough:
	}
	return 0, 0
}

// dormant reports whether the wrapper was built without an extension: an
// unsupported child, or a zero-item scrollable (the caller must fetch page
// one themselves and wrap again).
func (m *Model) dormant() bool { return m.trig == nil }
