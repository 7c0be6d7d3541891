package audio

import (
	"math"
	"time"

	rng "fireworks/pkg/core"

	"github.com/gopxl/beep"
)

// BurstGenerator synthesizes one detonation: a falling low thump under
// crackling noise, both with an exponential decay.
type BurstGenerator struct {
	sr    beep.SampleRate
	pos   int
	total int
	decay float64
	noise *rng.RNG
}

// NewBurstGenerator returns a generator that stops after length. Larger
// decay values end the sound sooner.
func NewBurstGenerator(sr beep.SampleRate, length time.Duration, decay float64, seed int64) *BurstGenerator {
	return &BurstGenerator{
		sr:    sr,
		total: sr.N(length),
		decay: decay,
		noise: rng.NewRNG(seed),
	}
}

// Stream implements beep.Streamer.
func (g *BurstGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)
		env := math.Exp(-t * g.decay)

		freq := 40 + 80*env
		thump := 0.6 * math.Sin(2*math.Pi*freq*t)
		crackle := g.noise.Range(-1, 1)
		if g.noise.Float64() < 0.85 {
			crackle *= 0.2
		}

		sample := env * (thump + 0.4*crackle)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

// Err implements beep.Streamer.
func (g *BurstGenerator) Err() error { return nil }
