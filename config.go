package scrolltail

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultLoadersCount is the number of trailing loader items appended when
// more pages can be fetched.
const DefaultLoadersCount = 1

// Configuration errors. All of them are programmer mistakes surfaced at
// construction time; none is retryable.
var (
	ErrMissingFetch          = errors.New("OnFetchNextPage is required")
	ErrMissingLoadingBuilder = errors.New("LoadingBuilder is required")
	ErrMissingErrorBuilder   = errors.New("HasError requires an ErrorBuilder")
	ErrLoadersCount          = errors.New("LoadersCount must be >= 1")
	ErrStaticItems           = errors.New("static item source is not supported")
	ErrNilBuilder            = errors.New("scrollable has no item builder")
)

// Config describes the pagination behavior layered onto a scrollable.
// The zero value is not valid; start from NewConfig or set LoadersCount
// explicitly.
type Config struct {
	// OnFetchNextPage is fired, at most once per trailing-item appearance,
	// when the first trailing loader becomes visible. Its message is
	// delivered to the caller's program; scrolltail never inspects it.
	OnFetchNextPage tea.Cmd

	// CanFetchNextPage indicates more pages are available. When false (and
	// HasError is false) no trailing items are appended and nothing fires.
	CanFetchNextPage bool

	// HasError replaces all trailing loaders with a single error item and
	// suspends fetching until cleared via Model.SetError(false).
	HasError bool

	// LoadersCount is the number of trailing loader items appended while
	// more pages can be fetched (e.g. one per grid column). Minimum 1.
	LoadersCount int

	// LoadingBuilder renders the trailing loader at the given relative index
	// (0 .. LoadersCount-1).
	LoadingBuilder func(index int) string

	// ErrorBuilder renders the single trailing error item. Required if
	// HasError is ever set.
	ErrorBuilder func() string
}

// NewConfig returns a Config with defaults applied: one loader item and
// fetching enabled.
func NewConfig(fetch tea.Cmd, loading func(index int) string) Config {
	return Config{
		OnFetchNextPage:  fetch,
		CanFetchNextPage: true,
		LoadersCount:     DefaultLoadersCount,
		LoadingBuilder:   loading,
	}
}

// validate checks the construction-time invariants.
func (c Config) validate() error {
	if c.OnFetchNextPage == nil {
		return newConfigError(ErrMissingFetch, "")
	}
	if c.LoadingBuilder == nil {
		return newConfigError(ErrMissingLoadingBuilder, "")
	}
	if c.LoadersCount < 1 {
		return newConfigError(ErrLoadersCount, "got %d", c.LoadersCount)
	}
	if c.HasError && c.ErrorBuilder == nil {
		return newConfigError(ErrMissingErrorBuilder, "")
	}
	return nil
}

// ConfigError is a fatal construction-time configuration error. It wraps one
// of the sentinel errors above, so callers can test the cause with errors.Is.
type ConfigError struct {
	// Reason is the sentinel cause.
	Reason error
	// Detail optionally narrows the reason (offending value, suggested fix).
	Detail string
}

func newConfigError(reason error, format string, args ...any) *ConfigError {
	return &ConfigError{Reason: reason, Detail: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Detail == "" {
		return "scrolltail: " + e.Reason.Error()
	}
	return fmt.Sprintf("scrolltail: %s: %s", e.Reason.Error(), e.Detail)
}

// Unwrap exposes the sentinel cause to errors.Is.
func (e *ConfigError) Unwrap() error { return e.Reason }
