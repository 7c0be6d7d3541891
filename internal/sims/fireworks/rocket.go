package fireworks

// Rocket is an ascending shell that detonates once it crosses TargetY.
type Rocket struct {
	Body
	Thrust    float64
	TargetY   float64
	Detonated bool
}

var rocketTrailColor = Color{R: 1, G: 1, B: 1}

// Launch queues a rocket rising from below the bottom edge of the world at
// originX. It detonates once its height reaches targetY. Coordinates are
// world space and are not validated.
func (s *Simulation) Launch(originX, targetY float64) {
	s.rockets = append(s.rockets, Rocket{
		Body:    Body{X: originX, Y: s.launchY()},
		Thrust:  s.cfg.Params.RocketAccel,
		TargetY: targetY,
	})
	s.stats.Launched++
}

// launchY is the bottom edge of the centered, y-up world.
func (s *Simulation) launchY() float64 {
	return -float64(s.cfg.Height) / 2
}

// updateRockets integrates every flying rocket, detonates those that reached
// their apex and purges them before returning.
func (s *Simulation) updateRockets(dt float64) {
	for i := range s.rockets {
		r := &s.rockets[i]
		if r.Detonated {
			continue
		}
		s.recordTrail(r.X, r.Y, rocketTrailColor, 1)
		Integrate(&r.Body, s.rocketForces(r), dt)
		if r.Y >= r.TargetY {
			r.Detonated = true
			s.detonate(r.X, r.Y)
		}
	}

	for i := 0; i < len(s.rockets); {
		if !s.rockets[i].Detonated {
			i++
			continue
		}
		last := len(s.rockets) - 1
		s.rockets[i] = s.rockets[last]
		s.rockets = s.rockets[:last]
	}
}
