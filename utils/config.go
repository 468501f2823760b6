package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the simulation driver
type Config struct {
	FrameDelay    time.Duration `json:"frame_delay"`
	IntroPause    time.Duration `json:"intro_pause"`
	AliveGlyph    string        `json:"alive_glyph"`
	DeadGlyph     string        `json:"dead_glyph"`
	UseParallel   bool          `json:"use_parallel"`
	UseMemoryPool bool          `json:"use_memory_pool"`
	ShowStatus    bool          `json:"show_status"`
	StreamAddr    string        `json:"stream_addr"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		FrameDelay:    50 * time.Millisecond,
		IntroPause:    3 * time.Second,
		AliveGlyph:    "X",
		DeadGlyph:     "-",
		UseParallel:   false,
		UseMemoryPool: false,
		ShowStatus:    true,
		StreamAddr:    "",
	}
}

// Alive returns the glyph that marks a living cell
func (c Config) Alive() byte {
	return c.AliveGlyph[0]
}

// Dead returns the glyph that marks a dead cell
func (c Config) Dead() byte {
	return c.DeadGlyph[0]
}

// Validate checks the configuration for values the driver cannot use
func (c Config) Validate() error {
	if c.FrameDelay < 0 {
		return errors.Errorf("[Config.Validate] frame_delay must not be negative: %v", c.FrameDelay)
	}
	if c.IntroPause < 0 {
		return errors.Errorf("[Config.Validate] intro_pause must not be negative: %v", c.IntroPause)
	}
	if len(c.AliveGlyph) != 1 || len(c.DeadGlyph) != 1 {
		return errors.Errorf("[Config.Validate] glyphs must be single bytes: alive=%q dead=%q", c.AliveGlyph, c.DeadGlyph)
	}
	if c.AliveGlyph == c.DeadGlyph {
		return errors.Errorf("[Config.Validate] alive and dead glyphs must differ: %q", c.AliveGlyph)
	}
	return nil
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return DefaultConfig(), errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}
