// Package audio plays a sound for each detonation.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"fireworks/internal/sims/fireworks"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate  = beep.SampleRate(44100)
	burstLength = 900 * time.Millisecond
	burstDecay  = 6.0
	maxVoices   = 16
)

// Player mixes burst sounds. Every method is a no-op until Init succeeds,
// so a machine without an audio device still runs the display.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	halfW       float64
	initialized bool
	muted       bool
	seed        int64
}

// NewPlayer returns a player that pans bursts across a world of the given width.
func NewPlayer(worldWidth float64) *Player {
	return &Player{mixer: &beep.Mixer{}, halfW: worldWidth / 2}
}

// Init opens the audio device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// SetMuted silences new bursts without closing the device.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

// Muted reports whether bursts are silenced.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// PlayBurst queues the sound of d. It is meant to be registered with
// Simulation.OnDetonate and returns quickly.
func (p *Player) PlayBurst(d fireworks.Detonation) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}
	p.seed++
	s := burstStreamer(d, p.halfW, p.seed)

	speaker.Lock()
	if p.mixer.Len() < maxVoices {
		p.mixer.Add(s)
	}
	speaker.Unlock()
}

func burstStreamer(d fireworks.Detonation, halfW float64, seed int64) beep.Streamer {
	gen := NewBurstGenerator(sampleRate, burstLength, burstDecay, seed)
	vol := &effects.Volume{Streamer: gen, Base: 2, Volume: burstVolume(d.Spawned)}
	if d.Spawned == 0 {
		vol.Silent = true
	}
	return &effects.Pan{Streamer: vol, Pan: burstPan(d.X, halfW)}
}

// burstVolume maps the number of spawned particles to a base-2 volume
// exponent: 300 particles play at unit gain, each doubling adds half a step.
func burstVolume(spawned int) float64 {
	if spawned <= 0 {
		return 0
	}
	v := 0.5 * math.Log2(float64(spawned)/300)
	return math.Max(-3, math.Min(v, 1))
}

// burstPan places x on the stereo field, -1 at the left edge and 1 at the right.
func burstPan(x, halfW float64) float64 {
	if halfW <= 0 {
		return 0
	}
	return math.Max(-1, math.Min(x/halfW, 1))
}
