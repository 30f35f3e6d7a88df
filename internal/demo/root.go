package demo

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Fallback dimensions when the terminal size cannot be determined.
const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// NewRootCmd creates the demo's root Cobra command.
func NewRootCmd(ver string) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:     "scrolltail-demo",
		Short:   "Interactive infinite-scroll showcase for scrolltail",
		Long:    "scrolltail-demo renders an endless list or grid backed by a fake paginated source,\ndemonstrating trailing loaders, error slots, and visibility-triggered fetching.",
		Version: ver,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			applyFlags(cmd, &cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	cmd.Flags().Int("rows", DefaultRows, "total size of the fake dataset")
	cmd.Flags().Int("page-size", DefaultPageSize, "rows per fetched page")
	cmd.Flags().Int("columns", DefaultColumns, "render a grid with this many columns")
	cmd.Flags().Int("loaders", DefaultLoaders, "trailing loader cells while fetching")
	cmd.Flags().Int("latency", DefaultLatencyMs, "simulated fetch latency in milliseconds")
	cmd.Flags().Int("fail-every", 0, "make every n-th fetch fail (0 disables)")
	cmd.Flags().String("log-level", DefaultLogLevel, "zerolog level (trace..error)")
	cmd.Flags().String("log-file", DefaultLogFile, "structured log destination")

	return cmd
}

// applyFlags overrides config values with any flags the user set explicitly.
func applyFlags(cmd *cobra.Command, cfg *Config) {
	intFlags := map[string]*int{
		"rows":       &cfg.Rows,
		"page-size":  &cfg.PageSize,
		"columns":    &cfg.Columns,
		"loaders":    &cfg.Loaders,
		"latency":    &cfg.LatencyMs,
		"fail-every": &cfg.FailEvery,
	}
	for name, dst := range intFlags {
		if cmd.Flags().Changed(name) {
			*dst, _ = cmd.Flags().GetInt(name)
		}
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("log-file") {
		cfg.LogFile, _ = cmd.Flags().GetString("log-file")
	}
}

// run starts the TUI program.
func run(cfg Config) error {
	logger, closeLog, err := initLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := initialSize()
	logger.Info().
		Int("rows", cfg.Rows).
		Int("pageSize", cfg.PageSize).
		Int("columns", cfg.Columns).
		Msg("starting demo")

	app := NewApp(cfg, logger, width, height)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// initialSize reads the terminal dimensions before the program starts, so
// the first page renders correctly even before a WindowSizeMsg arrives.
func initialSize() (int, int) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			return w, h
		}
	}
	return fallbackWidth, fallbackHeight
}
