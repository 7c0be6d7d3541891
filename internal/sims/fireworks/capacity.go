package fireworks

// BurstStep is the amount a single menu or key press changes the burst count by.
const BurstStep = 100

func (s *Simulation) hasParticleCapacity() bool {
	return len(s.particles) < s.cfg.Params.MaxParticles
}

// BurstCount returns the number of particles requested per detonation.
func (s *Simulation) BurstCount() int { return s.burstCount }

// AdjustBurstCount shifts the burst count by delta, clamped to the configured
// floor, and returns the new value. There is no upper bound; the particle
// capacity limits what a single burst can actually spawn.
func (s *Simulation) AdjustBurstCount(delta int) int {
	return s.SetBurstCount(s.burstCount + delta)
}

// SetBurstCount stores n, clamped to the configured floor, and returns the
// stored value. The new count applies to bursts spawned after the call.
func (s *Simulation) SetBurstCount(n int) int {
	if n < s.cfg.Params.MinBurstCount {
		n = s.cfg.Params.MinBurstCount
	}
	s.burstCount = n
	return n
}

// Capacity reports how full the bounded collections are.
type Capacity struct {
	Particles    int
	MaxParticles int
	Trails       int
	MaxTrails    int
}

// ParticleFill returns the particle occupancy in [0, 1].
func (c Capacity) ParticleFill() float64 { return fill(c.Particles, c.MaxParticles) }

// TrailFill returns the trail occupancy in [0, 1].
func (c Capacity) TrailFill() float64 { return fill(c.Trails, c.MaxTrails) }

func fill(n, max int) float64 {
	if max <= 0 {
		return 0
	}
	f := float64(n) / float64(max)
	if f > 1 {
		return 1
	}
	return f
}

// Capacity returns the current occupancy of particles and trails.
func (s *Simulation) Capacity() Capacity {
	return Capacity{
		Particles:    len(s.particles),
		MaxParticles: s.cfg.Params.MaxParticles,
		Trails:       s.trails.Len(),
		MaxTrails:    s.cfg.Params.MaxTrails,
	}
}
