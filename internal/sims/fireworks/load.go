package fireworks

import (
	"math"
	"time"

	rng "fireworks/pkg/core"
)

// LoadScenario drives a simulation with automatic launches for benchmarking.
type LoadScenario struct {
	Steps int
	// Dt is the step in seconds. Zero, negative or non-finite values select 1/60.
	Dt float64
	// LaunchEvery launches one rocket every n ticks; zero disables launching.
	LaunchEvery int
	Seed        int64
}

// LoadResult summarizes one scenario run.
type LoadResult struct {
	BurstCount     int
	Seed           int64
	Stats          Stats
	PeakParticles  int
	PeakTrails     int
	PeakRockets    int
	FinalParticles int
	Elapsed        time.Duration
	// Err is the first Tick error; the run stops there.
	Err error
}

// RunLoad runs the scenario on a fresh simulation built from cfg. Launch
// positions come from a generator seeded independently of the simulation, so
// two runs with the same seed and config produce identical results.
func RunLoad(cfg Config, sc LoadScenario) LoadResult {
	if !(sc.Dt > 0) || math.IsInf(sc.Dt, 1) {
		sc.Dt = 1.0 / 60
	}
	cfg.Seed = sc.Seed
	sim := NewWithConfig(cfg)
	launcher := rng.NewRNG(sc.Seed + 1)
	halfW := float64(cfg.Width) / 2
	halfH := float64(cfg.Height) / 2

	res := LoadResult{BurstCount: sim.BurstCount(), Seed: sc.Seed}
	start := time.Now()
	for step := 0; step < sc.Steps; step++ {
		if sc.LaunchEvery > 0 && step%sc.LaunchEvery == 0 {
			x := launcher.Range(-halfW*0.8, halfW*0.8)
			apex := launcher.Range(0, halfH*0.8)
			sim.Launch(x, apex)
		}
		if err := sim.Tick(sc.Dt); err != nil {
			res.Err = err
			break
		}

		rockets, particles, trails := sim.Counts()
		res.PeakRockets = max(res.PeakRockets, rockets)
		res.PeakParticles = max(res.PeakParticles, particles)
		res.PeakTrails = max(res.PeakTrails, trails)
	}
	res.Elapsed = time.Since(start)
	_, res.FinalParticles, _ = sim.Counts()
	res.Stats = sim.Stats()
	return res
}
