package emfield

import "photon-ca/internal/core"

var _ core.Sim = (*Engine)(nil)

func init() {
	for _, m := range []Mode{ModeToggle, ModePropagate} {
		mode := m
		core.Register("emfield-"+string(mode), func(cfg map[string]string) (core.Sim, error) {
			c := DefaultConfig()
			c.Mode = mode
			c.Apply(cfg)
			e, err := New(c, nil)
			if err != nil {
				return nil, err
			}
			return e, nil
		})
	}
}
