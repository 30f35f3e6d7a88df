// Package demo implements the scrolltail-demo command: CLI plumbing, a fake
// paginated feed with injectable latency and failures, and the Bubble Tea
// application that showcases scrolltail's trailing loaders, error slot, and
// visibility-triggered fetching.
package demo
