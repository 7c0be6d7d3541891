package fireworks

import (
	"strconv"

	"fireworks/internal/core"
)

// Parameters exposes configuration and live counts for the HUD.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	p := s.cfg.Params
	rockets, particles, trails := s.Counts()
	groups := []core.ParameterGroup{
		{
			Name: "Bursts",
			Params: []core.Parameter{
				intParam("burst_count", "Burst count", s.burstCount),
				intParam("max_particles", "Max particles", p.MaxParticles),
				intParam("max_trails", "Max trails", p.MaxTrails),
			},
		},
		{
			Name: "Physics",
			Params: []core.Parameter{
				floatParam("gravity", "Gravity", p.Gravity),
				floatParam("drag_coef", "Drag", p.DragCoef),
				floatParam("wind_x", "Wind", p.WindX),
				floatParam("rocket_accel", "Rocket accel", p.RocketAccel),
				floatParam("initial_life", "Particle life", p.InitialLife),
				floatParam("trail_life", "Trail life", p.TrailLife),
			},
		},
		{
			Name: "Live",
			Params: []core.Parameter{
				intParam("rockets", "Rockets", rockets),
				intParam("particles", "Particles", particles),
				intParam("trails", "Trails", trails),
				uintParam("dropped", "Dropped", s.stats.Dropped),
				uintParam("evicted", "Evicted trails", s.stats.TrailsEvicted),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values the HUD may step.
func (s *Simulation) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{
		Key:    "burst_count",
		Label:  "Burst count",
		Step:   BurstStep,
		Min:    s.cfg.Params.MinBurstCount,
		HasMin: true,
	}}
}

// SetIntParameter implements core.IntParameterSetter.
func (s *Simulation) SetIntParameter(key string, value int) (int, bool) {
	switch key {
	case "burst_count":
		return s.SetBurstCount(value), true
	}
	return 0, false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func uintParam(key, label string, value uint64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatUint(value, 10),
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
