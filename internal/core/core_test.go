package core

import (
	"math"
	"testing"
	"time"
)

func TestColorGridAddAccumulates(t *testing.T) {
	g := NewColorGrid(4, 3)
	g.Add(1, 2, 1, 0.5, 0, 0.5)
	g.Add(1, 2, 1, 0.5, 0, 0.5)
	c := g.Cells()[g.Index(1, 2)]
	if math.Abs(float64(c.R-1)) > 1e-6 || math.Abs(float64(c.G-0.5)) > 1e-6 || c.B != 0 {
		t.Fatalf("expected accumulated (1, 0.5, 0), got %+v", c)
	}

	g.Add(-1, 0, 1, 1, 1, 1)
	g.Add(4, 0, 1, 1, 1, 1)
	g.Add(0, 0, 1, 1, 1, 0)
	for i, cell := range g.Cells() {
		if i == g.Index(1, 2) {
			continue
		}
		if cell != (RGB{}) {
			t.Fatalf("expected cell %d to stay black, got %+v", i, cell)
		}
	}
}

func TestColorGridResizeClears(t *testing.T) {
	g := NewColorGrid(8, 8)
	g.Add(3, 3, 1, 1, 1, 1)
	g.Resize(4, 4)
	if g.W != 4 || g.H != 4 || len(g.Cells()) != 16 {
		t.Fatalf("expected 4x4 grid, got %dx%d with %d cells", g.W, g.H, len(g.Cells()))
	}
	for _, c := range g.Cells() {
		if c != (RGB{}) {
			t.Fatalf("expected resized grid to be cleared, got %+v", c)
		}
	}
	g.Resize(16, 10)
	if len(g.Cells()) != 160 {
		t.Fatalf("expected grid to grow to 160 cells, got %d", len(g.Cells()))
	}
}

func TestFixedStepSeconds(t *testing.T) {
	fs := NewFixedStep(0)
	if got := fs.Seconds(); math.Abs(got-1.0/60) > 1e-9 {
		t.Fatalf("expected default 1/60 step, got %f", got)
	}
	fs.SetTPS(50)
	if got := fs.Seconds(); math.Abs(got-0.02) > 1e-9 {
		t.Fatalf("expected 0.02 step, got %f", got)
	}
}

func TestFrameClockDelta(t *testing.T) {
	base := time.Unix(1000, 0)
	now := base
	c := &FrameClock{now: func() time.Time { return now }}

	if d := c.Delta(); d != 0 {
		t.Fatalf("expected first delta to be 0, got %f", d)
	}
	now = now.Add(250 * time.Millisecond)
	if d := c.Delta(); math.Abs(d-0.25) > 1e-9 {
		t.Fatalf("expected 0.25s delta, got %f", d)
	}
	c.Restart()
	now = now.Add(10 * time.Second)
	if d := c.Delta(); d != 0 {
		t.Fatalf("expected delta after restart to be 0, got %f", d)
	}
}

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{{Key: "a", Value: "1"}}},
		{Name: "B", Params: []Parameter{{Key: "b", Value: "2"}}},
	}}
	if p, ok := snap.Lookup("b"); !ok || p.Value != "2" {
		t.Fatalf("expected to find b=2, got %+v (ok=%v)", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("expected missing key lookup to fail")
	}
}
