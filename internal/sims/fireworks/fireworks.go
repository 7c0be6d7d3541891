package fireworks

import (
	"errors"
	"fmt"
	"math"

	"fireworks/internal/core"
	rng "fireworks/pkg/core"
)

// ErrInvalidStep is returned by Tick for a NaN, infinite or negative dt.
var ErrInvalidStep = errors.New("fireworks: invalid time step")

// Source supplies uniform random values in [0, 1).
type Source interface {
	Float64() float64
}

// Stats counts simulation events since the last Reset.
type Stats struct {
	Ticks         uint64
	Launched      uint64
	Detonations   uint64
	Spawned       uint64
	Dropped       uint64
	TrailsEvicted uint64
	ClampedSteps  uint64
	RejectedSteps uint64
}

// Simulation owns every rocket, particle and trail point of one display.
// It is not safe for concurrent use.
type Simulation struct {
	cfg Config
	rng Source

	rockets   []Rocket
	particles []Particle
	trails    trailRing

	burstCount int
	stats      Stats
	onDetonate func(Detonation)
}

var (
	_ core.Sim                       = (*Simulation)(nil)
	_ core.ParameterProvider         = (*Simulation)(nil)
	_ core.ParameterControlsProvider = (*Simulation)(nil)
	_ core.IntParameterSetter        = (*Simulation)(nil)
)

// New returns a simulation with the default configuration.
func New() *Simulation {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig returns a simulation seeded from cfg.Seed.
func NewWithConfig(cfg Config) *Simulation {
	return NewWithSource(cfg, rng.NewRNG(cfg.Seed))
}

// NewWithSource returns a simulation drawing randomness from src.
func NewWithSource(cfg Config, src Source) *Simulation {
	s := &Simulation{
		cfg:       cfg,
		rng:       src,
		particles: make([]Particle, 0, min(cfg.Params.MaxParticles, 4096)),
		trails:    newTrailRing(cfg.Params.MaxTrails),
	}
	s.SetBurstCount(cfg.Params.BurstCount)
	return s
}

// Name returns the simulation identifier.
func (s *Simulation) Name() string { return "fireworks" }

// Size reports the world dimensions.
func (s *Simulation) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() Config { return s.cfg }

// Stats returns the event counters.
func (s *Simulation) Stats() Stats { return s.stats }

// OnDetonate registers fn to be called synchronously from Tick for every
// detonation. Passing nil removes the listener.
func (s *Simulation) OnDetonate(fn func(Detonation)) {
	s.onDetonate = fn
}

// Reset clears all entities and counters and reseeds the random source.
// A zero seed selects the configured seed. The burst count is kept.
func (s *Simulation) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	s.rng = rng.NewRNG(seed)
	s.rockets = s.rockets[:0]
	s.particles = s.particles[:0]
	s.trails.reset()
	s.stats = Stats{}
}

// Tick advances the display by dt seconds: rockets fly and detonate, particles
// move and age, and trails fade. A dt larger than Params.MaxStep is clamped.
// An invalid dt leaves the state untouched and returns an error wrapping
// ErrInvalidStep.
func (s *Simulation) Tick(dt float64) error {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		s.stats.RejectedSteps++
		return fmt.Errorf("%w: dt=%v", ErrInvalidStep, dt)
	}
	if dt > s.cfg.Params.MaxStep {
		dt = s.cfg.Params.MaxStep
		s.stats.ClampedSteps++
	}

	s.updateRockets(dt)
	s.updateParticles(dt)
	s.trails.decay(dt)
	s.stats.Ticks++
	return nil
}

// Counts returns the number of live rockets, particles and trail points.
func (s *Simulation) Counts() (rockets, particles, trails int) {
	return len(s.rockets), len(s.particles), s.trails.Len()
}

// Rockets returns a copy of the flying rockets.
func (s *Simulation) Rockets() []Rocket {
	return append([]Rocket(nil), s.rockets...)
}

// Particles returns a copy of the live particles.
func (s *Simulation) Particles() []Particle {
	return append([]Particle(nil), s.particles...)
}

// Trails returns a copy of the live trail points, oldest first.
func (s *Simulation) Trails() []TrailPoint {
	return s.trails.appendTo(nil)
}

// Snapshot is a copy of the renderable state. Reusing one Snapshot across
// frames avoids reallocating its slices.
type Snapshot struct {
	Rockets   []Rocket
	Particles []Particle
	Trails    []TrailPoint
}

// Snapshot copies the current state into dst, reusing its capacity.
func (s *Simulation) Snapshot(dst *Snapshot) {
	dst.Rockets = append(dst.Rockets[:0], s.rockets...)
	dst.Particles = append(dst.Particles[:0], s.particles...)
	dst.Trails = s.trails.appendTo(dst.Trails[:0])
}
