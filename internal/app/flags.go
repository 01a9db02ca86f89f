package app

import (
	"flag"
	"strings"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim        string
	ConfigPath string
	Steps      int
	Inject     string
	Seed       int64
	Listen     string
	Layers     bool
	Overrides  KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Steps: 4, Inject: "0,0,0"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run (emfield-toggle or emfield-propagate; empty follows the config mode)")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML config file; -set overrides apply on top")
	fs.IntVar(&c.Steps, "steps", c.Steps, "ticks to advance after injection")
	fs.StringVar(&c.Inject, "inject", c.Inject, "centered injection coordinate x,y,z; empty skips injection")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset (0 keeps the config seed)")
	fs.StringVar(&c.Listen, "listen", c.Listen, "serve the websocket endpoint on this address instead of running headless")
	fs.BoolVar(&c.Layers, "layers", c.Layers, "print occupied lattice planes after each tick")
	fs.Var(&c.Overrides, "set", "parameter override in key=value form (repeatable)")
}

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map returns the well-formed key=value pairs. Later keys win.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		out[parts[0]] = parts[1]
	}
	return out
}
