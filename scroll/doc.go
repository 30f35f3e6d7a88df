// Package scroll provides builder-style virtual scrolling components for
// Bubble Tea applications.
//
// All components produce items on demand through an ItemBuilder and render
// only the portion of the sequence that intersects the viewport, keeping
// render complexity proportional to the viewport height rather than the item
// count. Two component families are provided:
//   - List and Grid: standalone scrollables with their own key and mouse
//     handling, used directly inside a Bubble Tea model.
//   - SliverList and SliverGrid: embeddable fragments composed inside a View,
//     which owns the scroll offset and input handling for all of its slivers.
//
// Every component reports the item range currently inside its viewport, which
// is what higher-level layers (such as the scrolltail package) use to react
// to items becoming visible.
package scroll
