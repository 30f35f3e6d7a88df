package scrolltail

import "github.com/tuikit/scrolltail/scroll"

// adaptSliverList derives the extended sliver list: a copy of the original
// sharing its identity and item height, with the item count extended by the
// policy's extra count and indices at or past the original count routed to
// the trailing renderer.
func (m *Model) adaptSliverList(src *scroll.SliverList) error {
	if src.Build == nil {
		if len(src.Items) > 0 {
			return newConfigError(ErrStaticItems,
				"sliver list was built from pre-rendered Items; use the builder form scroll.NewSliverList(count, builder)")
		}
		return newConfigError(ErrNilBuilder, "sliver list has neither Build nor Items")
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

	m.sliverList = ext
	return nil
}
