package app

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"photon-ca/internal/core"
	"photon-ca/internal/render"
	"photon-ca/internal/sims/emfield"
	"photon-ca/internal/transport/ws"
)

// Build resolves the engine described by cfg. An empty Sim takes the policy
// from the config file (or the default config).
func Build(cfg *Config) (*emfield.Engine, error) {
	base := emfield.DefaultConfig()
	if cfg.ConfigPath != "" {
		loaded, err := emfield.LoadFile(cfg.ConfigPath)
		if err != nil {
			return nil, err
		}
		base = loaded
	}

	name := cfg.Sim
	if name == "" {
		name = "emfield-" + string(base.Mode)
	}
	factory, ok := core.Sims()[name]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q", name)
	}

	params := map[string]string{
		"grid_size": strconv.Itoa(base.GridSize),
		"spacing":   strconv.FormatFloat(base.Spacing, 'f', -1, 64),
		"seed":      strconv.FormatInt(base.Seed, 10),
	}
	for k, v := range cfg.Overrides.Map() {
		params[k] = v
	}
	sim, err := factory(params)
	if err != nil {
		return nil, err
	}
	e, ok := sim.(*emfield.Engine)
	if !ok {
		return nil, fmt.Errorf("sim %q is not an emfield engine", name)
	}
	if cfg.Seed != 0 {
		e.Reset(cfg.Seed)
	}
	return e, nil
}

// ParseCoord parses a centered coordinate in "x,y,z" form.
func ParseCoord(s string) (core.Coord, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return core.Coord{}, fmt.Errorf("coordinate %q: want x,y,z", s)
	}
	var v [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return core.Coord{}, fmt.Errorf("coordinate %q: %w", s, err)
		}
		v[i] = n
	}
	return core.Coord{X: v[0], Y: v[1], Z: v[2]}, nil
}

// Run injects, steps and prints the diagnostic readout for every tick,
// followed by the center-cell history.
func Run(e *emfield.Engine, cfg *Config, out io.Writer) error {
	if cfg.Inject != "" {
		c, err := ParseCoord(cfg.Inject)
		if err != nil {
			return err
		}
		if err := e.InjectCentered(c); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "%s: grid %d, spacing %g\n", e.Name(), e.Config().GridSize, e.Config().Spacing)
	printTick(e, cfg, out)
	for i := 0; i < cfg.Steps; i++ {
		e.Step()
		printTick(e, cfg, out)
	}

	el, mag := e.History()
	fmt.Fprintf(out, "history E: %s\n", trace(el))
	fmt.Fprintf(out, "history M: %s\n", trace(mag))
	return nil
}

// NewHTTPHandler routes the websocket endpoint and a health probe.
func NewHTTPHandler(e *emfield.Engine, logger *log.Logger) (http.Handler, error) {
	s, err := ws.NewServer(e, logger)
	if err != nil {
		return nil, err
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(200)
		_, _ = rw.Write([]byte("ok"))
	})
	mux.HandleFunc("/v1/ws", s.Handler())
	return mux, nil
}

func printTick(e *emfield.Engine, cfg *Config, out io.Writer) {
	fmt.Fprintf(out, "tick %d: electric at %s, magnetic at %s\n",
		e.Tick(), readout(e, emfield.Electric), readout(e, emfield.Magnetic))
	if cfg.Layers {
		fmt.Fprint(out, render.Layers(e.Cells(), e.Grid(), render.DefaultGlyphs))
	}
}

func readout(e *emfield.Engine, t emfield.FieldType) string {
	c, ok := e.FirstActive(t)
	if !ok {
		return "none"
	}
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

func trace(series []uint8) string {
	var b strings.Builder
	for i, v := range series {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(int(v)))
	}
	return b.String()
}
