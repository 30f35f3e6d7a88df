// Package scrolltail augments a scroll package scrollable with automatic
// "load more" behavior. It appends synthetic trailing items (loading
// placeholders, or a single error placeholder) to the wrapped scrollable's
// item sequence, and fires a caller-supplied fetch command exactly once each
// time the first trailing item becomes visible.
//
// scrolltail is a composition layer only. It performs no fetching, caching,
// retrying, or state management: the caller owns all fetch semantics and
// reflects their outcome back through SetCount, SetError, and
// SetCanFetchNextPage. The wrapped scrollable's configuration (dimensions,
// key map, styles, gaps, columns, identity) passes through unchanged.
//
// Basic usage:
//
//	list := scroll.NewList(len(rows), func(i int) string { return rows[i] })
//	tail, err := scrolltail.Wrap(list, scrolltail.Config{
//		OnFetchNextPage:  fetchNextPage,
//		CanFetchNextPage: true,
//		LoadersCount:     1,
//		LoadingBuilder:   func(int) string { return "loading…" },
//	})
//
// The returned Model is a tea.Model when wrapping a List or Grid, and a
// scroll.Sliver when wrapping a SliverList or SliverGrid (embed it in a
// scroll.View). After each fetch completes, call SetCount with the new item
// count; on failure, call SetError(true) and clear it to retry. The mutators
// return a deferred visibility check to hand back to the runtime, so a fresh
// loader already on screen fetches without further input.
package scrolltail
