package demo

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tuikit/scrolltail"
	"github.com/tuikit/scrolltail/scroll"
)

// statusHeight is the number of terminal rows reserved below the scrollable.
const statusHeight = 2

// Demo styles.
var (
	idStyle      = lipgloss.NewStyle().Faint(true)
	loaderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	statusStyle  = lipgloss.NewStyle().Faint(true)
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	helpSegments = "↑/↓ scroll · g/G ends · r retry · q quit"
)

// appKeyMap holds the demo's own bindings; scrolling keys belong to the
// wrapped scrollable.
type appKeyMap struct {
	Quit  key.Binding
	Retry key.Binding
}

func defaultAppKeyMap() appKeyMap {
	return appKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry after an error"),
		),
	}
}

// App is the demo's Bubble Tea model: a scrolltail-wrapped list or grid over
// a fake paginated feed, with a status bar underneath.
type App struct {
	cfg  Config
	log  zerolog.Logger
	feed *Feed
	keys appKeyMap

	spin    spinner.Model
	printer *message.Printer

	rows []Row
	tail *scrolltail.Model

	width  int
	height int
	failed bool
	done   bool
}

// NewApp assembles the demo model. Width and height seed the layout until
// the first tea.WindowSizeMsg arrives.
func NewApp(cfg Config, logger zerolog.Logger, width, height int) *App {
	sp := spinner.New(
		spinner.WithSpinner(spinner.MiniDot),
		spinner.WithStyle(loaderStyle),
	)
	return &App{
		cfg:     cfg,
		log:     logger,
		feed:    NewFeed(cfg.Rows, cfg.PageSize, time.Duration(cfg.LatencyMs)*time.Millisecond, cfg.FailEvery),
		keys:    defaultAppKeyMap(),
		spin:    sp,
		printer: message.NewPrinter(language.English),
		width:   width,
		height:  height,
	}
}

// Init starts the spinner and fetches page one. Fetching the first page is
// the application's job: scrolltail only takes over once there are items to
// scroll past.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.spin.Tick, a.feed.Fetch)
}

// Update routes messages between the feed, the spinner, and the wrapped
// scrollable.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Retry):
			if a.failed && a.tail != nil {
				a.failed = false
				cmd, err := a.tail.SetError(false)
				if err != nil {
					a.log.Error().Err(err).Msg("clearing error state")
				}
				// The returned check refetches right away when the loader is
				// still on screen.
				return a, cmd
			}
			return a, nil
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case PageMsg:
		return a, a.consumePage(msg)

	case PageErrMsg:
		a.log.Error().Err(msg.Err).Int("page", msg.Page).Msg("fetch failed")
		a.failed = true
		if a.tail != nil {
			cmd, err := a.tail.SetError(true)
			if err != nil {
				a.log.Error().Err(err).Msg("entering error state")
			}
			return a, cmd
		}
		return a, nil
	}

	if a.tail == nil {
		return a, nil
	}
	_, cmd := a.tail.Update(a.adjustSize(msg))
	return a, cmd
}

// consumePage appends the fetched rows and builds or refreshes the wrapper.
func (a *App) consumePage(msg PageMsg) tea.Cmd {
	a.rows = append(a.rows, msg.Rows...)
	a.done = msg.Done
	a.failed = false
	a.log.Info().
		Int("page", msg.Page).
		Int("rows", len(msg.Rows)).
		Int("loaded", len(a.rows)).
		Bool("done", msg.Done).
		Msg("page loaded")

	if a.tail == nil {
		if err := a.buildTail(); err != nil {
			a.log.Error().Err(err).Msg("wrapping scrollable")
			return tea.Quit
		}
		return a.tail.Init()
	}

	// Dispatching the returned check keeps pagination chaining on tall
	// viewports: when the fresh loader is still visible, the next fetch
	// fires without any user input.
	cmd := a.tail.SetCount(len(a.rows))
	if a.done {
		a.tail.SetCanFetchNextPage(false)
		return nil
	}
	return cmd
}

// buildTail constructs the scrollable for the current dataset and wraps it.
func (a *App) buildTail() error {
	build := a.renderRow

	var child any
	if a.cfg.Columns > 1 {
		g := scroll.NewGrid(len(a.rows), a.cfg.Columns, build)
		g.SetSize(a.width, a.listHeight())
		child = g
	} else {
		l := scroll.NewList(len(a.rows), build)
		l.SetSize(a.width, a.listHeight())
		child = l
	}

	tail, err := scrolltail.Wrap(child, scrolltail.Config{
		OnFetchNextPage:  a.feed.Fetch,
		CanFetchNextPage: !a.done,
		LoadersCount:     a.cfg.Loaders,
		LoadingBuilder:   a.renderLoader,
		ErrorBuilder:     a.renderFetchError,
	})
	if err != nil {
		return err
	}
	a.tail = tail
	return nil
}

// View renders the scrollable plus the status bar.
func (a *App) View() string {
	if a.tail == nil {
		return a.spin.View() + " loading first page…"
	}
	return a.tail.View() + "\n" + a.statusBar()
}

func (a *App) statusBar() string {
	var state string
	switch {
	case a.failed:
		state = errStyle.Render("fetch failed — press r to retry")
	case a.done:
		state = doneStyle.Render("all rows loaded")
	default:
		state = a.printer.Sprintf("%d of %d rows loaded", len(a.rows), a.cfg.Rows)
	}
	return state + "\n" + statusStyle.Render(helpSegments)
}

func (a *App) renderRow(i int) string {
	if i >= len(a.rows) {
		return ""
	}
	row := a.rows[i]
	return idStyle.Render(row.ID) + "  " + row.Title
}

func (a *App) renderLoader(int) string {
	return a.spin.View() + loaderStyle.Render(" fetching more…")
}

func (a *App) renderFetchError() string {
	return errStyle.Render("✗ could not load the next page — press r to retry")
}

// listHeight is the viewport height left for the scrollable.
func (a *App) listHeight() int {
	return max(0, a.height-statusHeight)
}

// adjustSize shrinks window size messages by the status bar before they reach
// the wrapped scrollable.
func (a *App) adjustSize(msg tea.Msg) tea.Msg {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		return tea.WindowSizeMsg{Width: ws.Width, Height: max(0, ws.Height-statusHeight)}
	}
	return msg
}
