package scrolltail

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/oklog/ulid/v2"

	"github.com/tuikit/scrolltail/scroll"
)

// Wrap composes load-more behavior onto a scrollable. The supported kinds
// are the closed set scroll.List, scroll.Grid, scroll.SliverList, and
// scroll.SliverGrid; any other child is passed through unchanged (rendered
// as-is, no trailing items, no trigger).
//
// The wrapped scrollable itself is not modified: the Model operates on a
// derived copy that shares the original's identity, scroll position, and
// every other configuration field, with its item count extended by the tail
// policy and trailing indices routed to the loader or error renderer.
//
// A scrollable with zero items is also passed through unchanged, regardless
// of the pagination flags: fetching page one is the caller's job, after
// which the populated scrollable can be wrapped.
//
// Wrap fails with a *ConfigError for invalid configuration, and for a
// supported kind whose item source is not the builder form.
func Wrap(child any, cfg Config) (*Model, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	m := &Model{cfg: cfg, raw: child, trig: &trigger{}}

	switch c := child.(type) {
	case *scroll.List:
		m.kind = kindList
		m.id = c.ID()
		m.n = c.Count
		if m.n == 0 {
			m.list = c
			m.trig = nil
			return m, nil
		}
		m.extra = extraItemCount(cfg.HasError, cfg.CanFetchNextPage, cfg.LoadersCount)
		if err := m.adaptList(c); err != nil {
			return nil, err
		}

	case *scroll.Grid:
		m.kind = kindGrid
		m.id = c.ID()
		m.n = c.Count
		if m.n == 0 {
			m.grid = c
			m.trig = nil
			return m, nil
		}
		m.extra = extraItemCount(cfg.HasError, cfg.CanFetchNextPage, cfg.LoadersCount)
		if err := m.adaptGrid(c); err != nil {
			return nil, err
		}

	case *scroll.SliverList:
		m.kind = kindSliverList
		m.id = c.ID()
		m.n = c.Count
		if m.n == 0 {
			m.sliverList = c
			m.trig = nil
			return m, nil
		}
		m.extra = extraItemCount(cfg.HasError, cfg.CanFetchNextPage, cfg.LoadersCount)
		if err := m.adaptSliverList(c); err != nil {
			return nil, err
		}

	case *scroll.SliverGrid:
		m.kind = kindSliverGrid
		m.id = c.ID()
		m.n = c.Count
		if m.n == 0 {
			m.sliverGrid = c
			m.trig = nil
			return m, nil
		}
		m.extra = extraItemCount(cfg.HasError, cfg.CanFetchNextPage, cfg.LoadersCount)
		if err := m.adaptSliverGrid(c); err != nil {
			return nil, err
		}

	default:
		// Unknown kinds pass through untouched.
		m.kind = kindPassthrough
		m.trig = nil
		m.id = ulid.Make().String()
		if tm, ok := child.(tea.Model); ok {
			m.passthrough = tm
		}
	}

	return m, nil
}
