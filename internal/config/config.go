// Package config provides configuration loading and access for the simulator.
package config

import (
	_ "embed"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulator parameters.
type Config struct {
	Grid     GridConfig     `yaml:"grid"`
	Layout   LayoutConfig   `yaml:"layout"`
	Display  DisplayConfig  `yaml:"display"`
	Sequence SequenceConfig `yaml:"sequence"`
}

// GridConfig holds board dimensions.
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// LayoutConfig holds the cell geometry shared by the geometry mapper and the
// input adapter. Units are normalized device coordinates.
type LayoutConfig struct {
	CellSize float32 `yaml:"cell_size"`
	Padding  float32 `yaml:"padding"`
}

// DisplayConfig holds window settings and the simulation tick rate.
type DisplayConfig struct {
	Width          int `yaml:"width"`
	Height         int `yaml:"height"`
	TicksPerSecond int `yaml:"ticks_per_second"`
}

// SequenceConfig selects the seed sequence. File takes precedence over
// Inline when both are set.
type SequenceConfig struct {
	Inline        string `yaml:"inline"`
	File          string `yaml:"file"`
	ProfileWindow int    `yaml:"profile_window"`
}

// Load reads configuration from the given YAML file layered over the
// embedded defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the core cannot run with.
func (c *Config) Validate() error {
	if c.Grid.Rows < 1 || c.Grid.Cols < 1 {
		return fmt.Errorf("config: grid must be at least 1x1, got %dx%d", c.Grid.Rows, c.Grid.Cols)
	}
	if c.Layout.CellSize <= 0 {
		return fmt.Errorf("config: cell_size must be positive, got %v", c.Layout.CellSize)
	}
	if c.Layout.Padding < 0 {
		return fmt.Errorf("config: padding must not be negative, got %v", c.Layout.Padding)
	}
	if c.Display.Width < 1 || c.Display.Height < 1 {
		return fmt.Errorf("config: window must be at least 1x1, got %dx%d", c.Display.Width, c.Display.Height)
	}
	if c.Display.TicksPerSecond < 1 {
		return fmt.Errorf("config: ticks_per_second must be positive, got %d", c.Display.TicksPerSecond)
	}
	return nil
}

// Overrides holds the command-line parameters shared by the binaries. Zero
// values leave the loaded configuration untouched.
type Overrides struct {
	Sequence     string
	SequenceFile string
	Rows         int
	Cols         int
	TPS          int
}

// Bind attaches the overrides to the provided FlagSet.
func (o *Overrides) Bind(fs *flag.FlagSet) {
	fs.StringVar(&o.Sequence, "seq", o.Sequence, "inline seed sequence (overrides config)")
	fs.StringVar(&o.SequenceFile, "seq-file", o.SequenceFile, "path to a seed sequence file (overrides config)")
	fs.IntVar(&o.Rows, "rows", o.Rows, "board rows (0 = use config)")
	fs.IntVar(&o.Cols, "cols", o.Cols, "board columns (0 = use config)")
	fs.IntVar(&o.TPS, "tps", o.TPS, "simulation ticks per second (0 = use config)")
}

// Apply layers the overrides onto the configuration and revalidates it.
func (o *Overrides) Apply(c *Config) error {
	if o.Sequence != "" {
		c.Sequence.Inline = o.Sequence
		c.Sequence.File = ""
	}
	if o.SequenceFile != "" {
		c.Sequence.File = o.SequenceFile
	}
	if o.Rows > 0 {
		c.Grid.Rows = o.Rows
	}
	if o.Cols > 0 {
		c.Grid.Cols = o.Cols
	}
	if o.TPS > 0 {
		c.Display.TicksPerSecond = o.TPS
	}
	return c.Validate()
}

// Seed resolves the seed sequence bytes, reading Sequence.File when set.
func (c *Config) Seed() ([]byte, error) {
	if c.Sequence.File != "" {
		data, err := os.ReadFile(c.Sequence.File)
		if err != nil {
			return nil, fmt.Errorf("reading sequence file: %w", err)
		}
		return data, nil
	}
	return []byte(c.Sequence.Inline), nil
}
