package app

import (
	"flag"
	"fmt"
)

// Backend identifiers for the -backend flag.
const (
	BackendGPU = "gpu"
	BackendCPU = "cpu"
)

// Config represents the command-line parameters for the application.
type Config struct {
	SeedPath string
	Width    int
	Height   int
	Backend  string
	Window   int
	SimTPS   int
	Seed     int64
	Workers  int
	Paused   bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:   400,
		Height:  400,
		Backend: BackendGPU,
		Window:  800,
		SimTPS:  60,
		Seed:    42,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.SeedPath, "seed-image", c.SeedPath, "seed image path (empty for a random board)")
	fs.IntVar(&c.Width, "width", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "board height in cells")
	fs.StringVar(&c.Backend, "backend", c.Backend, "step backend: gpu or cpu")
	fs.IntVar(&c.Window, "window", c.Window, "initial window size in pixels")
	fs.IntVar(&c.SimTPS, "tps", c.SimTPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random board")
	fs.IntVar(&c.Workers, "workers", c.Workers, "cpu backend worker count (0 = NumCPU)")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start with the simulation paused")
}

// Validate rejects configurations the rest of the program cannot run with.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("board size %dx%d is not positive", c.Width, c.Height)
	}
	if c.Backend != BackendGPU && c.Backend != BackendCPU {
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if c.Window <= 0 {
		return fmt.Errorf("window size %d is not positive", c.Window)
	}
	if c.SimTPS <= 0 {
		return fmt.Errorf("tps %d is not positive", c.SimTPS)
	}
	return nil
}
