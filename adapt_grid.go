package scrolltail

import "github.com/tuikit/scrolltail/scroll"

// adaptGrid derives the extended grid: a copy of the original sharing its
// identity, scroll position, column layout, and all presentation
// configuration, with the item count extended by the policy's extra count and
// indices at or past the original count routed to the trailing renderer.
func (m *Model) adaptGrid(src *scroll.Grid) error {
	if src.Build == nil {
		if len(src.Items) > 0 {
			return newConfigError(ErrStaticItems,
				"grid was built from pre-rendered Items; use the builder form scroll.NewGrid(count, columns, builder)")
		}
		return newConfigError(ErrNilBuilder, "grid has neither Build nor Items")
	}

	orig := src.Build
	ext := src.Clone()
	ext.Build = func(i int) string {
		if i < m.n {
			return orig(i)
		}
		return m.trailingView(i - m.n)
	}
	ext.SetCount(m.n + m.extra)

	m.grid = ext
	return nil
}
