package fireworks

import "math"

const (
	burstColorMin = 0.4
	burstColorMax = 1.0
)

// Color is an RGB triple with components in [0, 1].
type Color struct {
	R, G, B float64
}

// Particle is a burst fragment. Alpha is derived from Life after every tick.
type Particle struct {
	Body
	Color       Color
	Alpha       float64
	Life        float64
	LifeAtSpawn float64
}

// Detonation describes one rocket explosion as reported to listeners.
type Detonation struct {
	X, Y      float64
	Color     Color
	Requested int
	Spawned   int
}

// Dropped returns how many requested particles did not fit under the cap.
func (d Detonation) Dropped() int { return d.Requested - d.Spawned }

// spawnBurst emits up to the configured burst count of particles around
// (cx, cy), all sharing one random color. Particles that would exceed the
// capacity are dropped.
func (s *Simulation) spawnBurst(cx, cy float64) Detonation {
	p := s.cfg.Params
	c := Color{
		R: s.uniform(burstColorMin, burstColorMax),
		G: s.uniform(burstColorMin, burstColorMax),
		B: s.uniform(burstColorMin, burstColorMax),
	}
	d := Detonation{X: cx, Y: cy, Color: c, Requested: s.burstCount}

	for i := 0; i < d.Requested && s.hasParticleCapacity(); i++ {
		angle := s.uniform(0, 2*math.Pi)
		speed := s.uniform(p.SpeedMean-p.SpeedVar, p.SpeedMean+p.SpeedVar)
		cos, sin := math.Cos(angle), math.Sin(angle)
		s.particles = append(s.particles, Particle{
			Body: Body{
				X:  cx + cos*p.BurstOffsetRadius,
				Y:  cy + sin*p.BurstOffsetRadius,
				VX: cos * speed,
				VY: sin * speed,
			},
			Color:       c,
			Alpha:       1,
			Life:        p.InitialLife,
			LifeAtSpawn: p.InitialLife,
		})
		d.Spawned++
	}

	s.stats.Spawned += uint64(d.Spawned)
	s.stats.Dropped += uint64(d.Dropped())
	return d
}

func (s *Simulation) detonate(x, y float64) {
	d := s.spawnBurst(x, y)
	s.stats.Detonations++
	if s.onDetonate != nil {
		s.onDetonate(d)
	}
}

// updateParticles integrates every particle, ages it and removes the dead.
func (s *Simulation) updateParticles(dt float64) {
	f := s.particleForces()
	for i := range s.particles {
		pt := &s.particles[i]
		s.recordTrail(pt.X, pt.Y, pt.Color, pt.Alpha)
		Integrate(&pt.Body, f, dt)
		pt.Life -= dt
		pt.Alpha = math.Max(0, pt.Life/pt.LifeAtSpawn)
	}

	for i := 0; i < len(s.particles); {
		if s.particles[i].Life > 0 {
			i++
			continue
		}
		last := len(s.particles) - 1
		s.particles[i] = s.particles[last]
		s.particles = s.particles[:last]
	}
}

func (s *Simulation) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
