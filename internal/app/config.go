package app

import "flag"

// Config represents the command-line parameters shared by the frontends.
type Config struct {
	Width    int
	Height   int
	CellSize int
	TPS      int
	Seed     int64
	Pattern  string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 64, Height: 64, CellSize: 9, TPS: 10, Seed: 42, Pattern: "random"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomized boards")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "starting board: random or default")
}
