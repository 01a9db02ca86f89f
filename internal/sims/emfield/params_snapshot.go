package emfield

import (
	"strconv"

	"photon-ca/internal/core"
)

// Parameters describes the configuration the engine runs with.
func (e *Engine) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "Lattice",
			Params: []core.Parameter{
				intParam("grid_size", "Grid size", e.cfg.GridSize),
				floatParam("spacing", "Spacing", e.cfg.Spacing),
			},
		},
		{
			Name: "Dynamics",
			Params: []core.Parameter{
				stringParam("mode", "Transition policy", string(e.cfg.Mode)),
				int64Param("seed", "Seed", e.cfg.Seed),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
