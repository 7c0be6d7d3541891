package audio

import (
	"math"
	"testing"
	"time"

	"fireworks/internal/sims/fireworks"

	"github.com/gopxl/beep"
)

func TestBurstGeneratorBoundedAndFinite(t *testing.T) {
	rate := beep.SampleRate(8000)
	gen := NewBurstGenerator(rate, 100*time.Millisecond, burstDecay, 1)

	total := 0
	buf := make([][2]float64, 256)
	for {
		n, ok := gen.Stream(buf)
		for i := 0; i < n; i++ {
			if math.Abs(buf[i][0]) > 1 || buf[i][0] != buf[i][1] {
				t.Fatalf("sample %d out of range or not mono: %v", total+i, buf[i])
			}
		}
		total += n
		if !ok {
			break
		}
		if total > rate.N(time.Second) {
			t.Fatal("expected generator to stop")
		}
	}
	if want := rate.N(100 * time.Millisecond); total != want {
		t.Fatalf("expected %d samples, got %d", want, total)
	}
	if gen.Err() != nil {
		t.Fatalf("expected no error, got %v", gen.Err())
	}
}

func TestBurstGeneratorDecays(t *testing.T) {
	rate := beep.SampleRate(8000)
	gen := NewBurstGenerator(rate, time.Second, burstDecay, 2)
	buf := make([][2]float64, rate.N(time.Second))
	n, _ := gen.Stream(buf)

	energy := func(from, to int) float64 {
		sum := 0.0
		for i := from; i < to; i++ {
			sum += buf[i][0] * buf[i][0]
		}
		return sum
	}
	tenth := n / 10
	head, tail := energy(0, tenth), energy(n-tenth, n)
	if tail >= head {
		t.Fatalf("expected the tail to be quieter than the head, got head=%f tail=%f", head, tail)
	}
}

func TestBurstGeneratorDeterministic(t *testing.T) {
	rate := beep.SampleRate(8000)
	a := NewBurstGenerator(rate, 50*time.Millisecond, burstDecay, 9)
	b := NewBurstGenerator(rate, 50*time.Millisecond, burstDecay, 9)
	bufA := make([][2]float64, 128)
	bufB := make([][2]float64, 128)
	a.Stream(bufA)
	b.Stream(bufB)
	for i := range bufA {
		if bufA[i] != bufB[i] {
			t.Fatalf("sample %d differs: %v vs %v", i, bufA[i], bufB[i])
		}
	}
}

func TestBurstPan(t *testing.T) {
	cases := []struct {
		x, want float64
	}{
		{0, 0},
		{320, 0.5},
		{-640, -1},
		{5000, 1},
		{-5000, -1},
	}
	for _, c := range cases {
		if got := burstPan(c.x, 640); got != c.want {
			t.Fatalf("burstPan(%v) expected %v, got %v", c.x, c.want, got)
		}
	}
	if got := burstPan(100, 0); got != 0 {
		t.Fatalf("expected centered pan for a zero-width world, got %v", got)
	}
}

func TestBurstVolume(t *testing.T) {
	if got := burstVolume(300); got != 0 {
		t.Fatalf("expected unit gain for 300 particles, got %v", got)
	}
	if got := burstVolume(1200); got != 1 {
		t.Fatalf("expected 1 for 1200 particles, got %v", got)
	}
	if got := burstVolume(1); got != -3 {
		t.Fatalf("expected floor of -3, got %v", got)
	}
	if got := burstVolume(0); got != 0 {
		t.Fatalf("expected 0 for an empty burst, got %v", got)
	}
}

func TestPlayerNoopBeforeInit(t *testing.T) {
	p := NewPlayer(1280)
	p.PlayBurst(fireworks.Detonation{X: 10, Y: 20, Requested: 300, Spawned: 300})
	if p.mixer.Len() != 0 {
		t.Fatalf("expected no queued sounds before Init, got %d", p.mixer.Len())
	}
	p.SetMuted(true)
	if !p.Muted() {
		t.Fatal("expected player to report muted")
	}
	p.Close()
}
