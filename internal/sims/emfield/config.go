package emfield

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Mode selects the transition policy applied on every tick.
type Mode string

const (
	// ModeToggle swaps the electric and magnetic layers in place.
	ModeToggle Mode = "toggle"
	// ModePropagate moves each excitation one cell along its direction.
	ModePropagate Mode = "propagate"
)

// ErrInvalidConfig is returned when a Config fails validation.
var ErrInvalidConfig = errors.New("emfield: invalid config")

// Config controls the lattice and the transition policy.
type Config struct {
	GridSize int     `yaml:"grid_size"`
	Spacing  float64 `yaml:"spacing"`
	Mode     Mode    `yaml:"mode"`
	Seed     int64   `yaml:"seed"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		GridSize: 7,
		Spacing:  1.0,
		Mode:     ModeToggle,
		Seed:     1337,
	}
}

// Validate reports whether the configuration describes a usable lattice.
func (c Config) Validate() error {
	if c.GridSize < 1 || c.GridSize%2 == 0 {
		return fmt.Errorf("%w: grid_size must be an odd integer >= 1, got %d", ErrInvalidConfig, c.GridSize)
	}
	if !(c.Spacing > 0) {
		return fmt.Errorf("%w: spacing must be positive, got %v", ErrInvalidConfig, c.Spacing)
	}
	switch c.Mode {
	case ModeToggle, ModePropagate:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, c.Mode)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Apply(cfg)
	return c
}

// Apply overrides fields present in cfg. Unparseable values are ignored.
func (c *Config) Apply(cfg map[string]string) {
	if cfg == nil {
		return
	}
	if v, ok := cfg["grid_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.GridSize = parsed
		}
	}
	if v, ok := cfg["spacing"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Spacing = parsed
		}
	}
	if v, ok := cfg["mode"]; ok {
		c.Mode = Mode(v)
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
}

// LoadFile reads a YAML config. Keys missing from the file keep their defaults.
func LoadFile(path string) (Config, error) {
	c := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, c.Validate()
}
