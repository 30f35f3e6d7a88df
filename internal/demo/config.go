package demo

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Demo defaults and validation limits.
const (
	DefaultRows      = 10000
	DefaultPageSize  = 40
	DefaultColumns   = 1
	DefaultLoaders   = 1
	DefaultLatencyMs = 400
	DefaultLogFile   = "/tmp/scrolltail-demo.log"
	DefaultLogLevel  = "info"

	MaxColumns = 12
)

// Validation errors.
var (
	ErrRows     = errors.New("rows must be >= 1")
	ErrPageSize = errors.New("page-size must be >= 1")
	ErrColumns  = errors.New("columns must be between 1 and 12")
	ErrLoaders  = errors.New("loaders must be >= 1")
	ErrLatency  = errors.New("latency must be >= 0")
)

// Config holds the demo's tunables. Values come from defaults, then an
// optional YAML file, then command-line flags, each layer overriding the
// previous one.
type Config struct {
	// Rows is the total size of the fake dataset.
	Rows int `yaml:"rows"`
	// PageSize is the number of rows per fetched page.
	PageSize int `yaml:"pageSize"`
	// Columns switches the demo to a grid when > 1.
	Columns int `yaml:"columns"`
	// Loaders is the number of trailing loader cells (usually Columns).
	Loaders int `yaml:"loaders"`
	// LatencyMs is the simulated fetch latency in milliseconds.
	LatencyMs int `yaml:"latencyMs"`
	// FailEvery makes every n-th fetch fail; 0 disables failures.
	FailEvery int `yaml:"failEvery"`
	// LogLevel is a zerolog level string.
	LogLevel string `yaml:"logLevel"`
	// LogFile receives structured logs while the TUI owns the terminal.
	LogFile string `yaml:"logFile"`
}

// DefaultConfig returns the demo defaults.
func DefaultConfig() Config {
	return Config{
		Rows:      DefaultRows,
		PageSize:  DefaultPageSize,
		Columns:   DefaultColumns,
		Loaders:   DefaultLoaders,
		LatencyMs: DefaultLatencyMs,
		LogLevel:  DefaultLogLevel,
		LogFile:   DefaultLogFile,
	}
}

// LoadConfig reads a YAML config file over the defaults. A missing path is
// not an error; a malformed file is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configured values.
func (c Config) Validate() error {
	switch {
	case c.Rows < 1:
		return fmt.Errorf("%w, got %d", ErrRows, c.Rows)
	case c.PageSize < 1:
		return fmt.Errorf("%w, got %d", ErrPageSize, c.PageSize)
	case c.Columns < 1 || c.Columns > MaxColumns:
		return fmt.Errorf("%w, got %d", ErrColumns, c.Columns)
	case c.Loaders < 1:
		return fmt.Errorf("%w, got %d", ErrLoaders, c.Loaders)
	case c.LatencyMs < 0:
		return fmt.Errorf("%w, got %d", ErrLatency, c.LatencyMs)
	}
	return nil
}
