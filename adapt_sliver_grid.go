package scrolltail

import "github.com/tuikit/scrolltail/scroll"

// adaptSliverGrid derives the extended sliver grid: a copy of the original
// sharing its identity, column layout, item height, and cell style, with the
// item count extended by the policy's extra count and indices at or past the
// original count routed to the trailing renderer.
func (m *Model) adaptSliverGrid(src *scroll.SliverGrid) error {
	if src.Build == nil {
		if len(src.Items) > 0 {
			return newConfigError(ErrStaticItems,
				"sliver grid was built from pre-rendered Items; use the builder form scroll.NewSliverGrid(count, columns, builder)")
		}
		return newConfigError(ErrNilBuilder, "sliver grid has neither Build nor Items")
	}

	orig := src.Build
	ext := src.Clone()
	ext.Build = func(i int) string {
		if i < m.n {
			return orig(i)
		}
		return m.trailingView(i - m.n)
	}
	ext.Count = m.n + m.extra

	m.sliverGrid = ext
	return nil
}
