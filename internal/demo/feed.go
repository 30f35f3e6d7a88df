package demo

import (
	"errors"
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/oklog/ulid/v2"
)

// errInjected is the simulated fetch failure.
var errInjected = errors.New("injected fetch failure")

// Row is one record of the fake dataset.
type Row struct {
	ID    string
	Title string
}

// PageMsg delivers a fetched page.
type PageMsg struct {
	Page int
	Rows []Row
	// Done is true when this was the dataset's last page.
	Done bool
}

// PageErrMsg reports a failed fetch. The page is not consumed, so a retry
// fetches it again.
type PageErrMsg struct {
	Page int
	Err  error
}

// Feed is a fake paginated data source with injectable latency and failures.
// Fetch may be called from command goroutines, so the page cursor is guarded.
type Feed struct {
	mu       sync.Mutex
	total    int
	pageSize int
	latency  time.Duration
	// failEvery makes every n-th fetch attempt fail; 0 disables failures.
	failEvery int

	next     int // next page to serve, 1-based
	attempts int
}

// NewFeed creates a feed over total rows served in pageSize chunks.
func NewFeed(total, pageSize int, latency time.Duration, failEvery int) *Feed {
	return &Feed{
		total:     total,
		pageSize:  pageSize,
		latency:   latency,
		failEvery: failEvery,
		next:      1,
	}
}

// Fetch is a tea.Cmd producing the next page (or a PageErrMsg). A failed
// attempt does not advance the page cursor.
func (f *Feed) Fetch() tea.Msg {
	f.mu.Lock()
	f.attempts++
	page := f.next
	fail := f.failEvery > 0 && f.attempts%f.failEvery == 0
	if !fail {
		f.next++
	}
	f.mu.Unlock()

	time.Sleep(f.latency)

	if fail {
		return PageErrMsg{Page: page, Err: errInjected}
	}

	start := (page - 1) * f.pageSize
	end := min(f.total, start+f.pageSize)
	rows := make([]Row, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, Row{
			ID:    ulid.Make().String(),
			Title: fmt.Sprintf("record #%d", i+1),
		})
	}
	return PageMsg{Page: page, Rows: rows, Done: end >= f.total}
}
