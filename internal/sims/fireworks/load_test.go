package fireworks

import (
	"math"
	"testing"
)

func TestRunLoadDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.MaxParticles = 2000
	cfg.Params.MaxTrails = 10000
	sc := LoadScenario{Steps: 300, Dt: frame, LaunchEvery: 20, Seed: 3}

	a := RunLoad(cfg, sc)
	b := RunLoad(cfg, sc)
	if a.Stats != b.Stats || a.PeakParticles != b.PeakParticles || a.PeakTrails != b.PeakTrails {
		t.Fatalf("expected identical runs, got %+v vs %+v", a, b)
	}
	if a.Stats.Launched != 15 {
		t.Fatalf("expected 15 launches, got %d", a.Stats.Launched)
	}
	if a.Stats.Detonations == 0 {
		t.Fatal("expected at least one detonation")
	}
	if a.PeakParticles > cfg.Params.MaxParticles {
		t.Fatalf("peak particles %d exceeded cap %d", a.PeakParticles, cfg.Params.MaxParticles)
	}
	if a.PeakTrails > cfg.Params.MaxTrails {
		t.Fatalf("peak trails %d exceeded cap %d", a.PeakTrails, cfg.Params.MaxTrails)
	}
}

func TestRunLoadWithoutLaunches(t *testing.T) {
	res := RunLoad(DefaultConfig(), LoadScenario{Steps: 10})
	if res.Stats.Ticks != 10 || res.PeakParticles != 0 || res.Stats.Launched != 0 {
		t.Fatalf("expected an idle run, got %+v", res)
	}
}

func TestRunLoadReplacesNonFiniteStep(t *testing.T) {
	for _, dt := range []float64{math.Inf(1), math.NaN(), -frame} {
		res := RunLoad(DefaultConfig(), LoadScenario{Steps: 120, Dt: dt, LaunchEvery: 1, Seed: 5})
		if res.Err != nil {
			t.Fatalf("dt=%v: expected no error, got %v", dt, res.Err)
		}
		if res.Stats.Ticks != 120 || res.Stats.RejectedSteps != 0 {
			t.Fatalf("dt=%v: expected 120 accepted ticks, got ticks=%d rejected=%d", dt, res.Stats.Ticks, res.Stats.RejectedSteps)
		}
		if res.Stats.Detonations == 0 {
			t.Fatalf("dt=%v: expected rockets to fly and detonate", dt)
		}
	}
}
