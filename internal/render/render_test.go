package render

import (
	"image/color"
	"math"
	"testing"

	"fireworks/internal/core"
	"fireworks/internal/sims/fireworks"
)

func TestViewportRoundTrip(t *testing.T) {
	v := Viewport{WorldW: 1280, WorldH: 720, W: 1280, H: 720}

	cx, cy, ok := v.ToCell(0, 0)
	if !ok || cx != 640 || cy != 360 {
		t.Fatalf("expected origin at (640,360), got (%d,%d) ok=%v", cx, cy, ok)
	}
	if _, _, ok := v.ToCell(-641, 0); ok {
		t.Fatal("expected point left of the world to be off-grid")
	}
	if _, _, ok := v.ToCell(0, 361); ok {
		t.Fatal("expected point above the world to be off-grid")
	}
	if _, _, ok := v.ToCell(math.NaN(), 0); ok {
		t.Fatal("expected NaN to be off-grid")
	}

	// A click at the top-left pixel maps to the top-left corner of the world.
	x, y := v.ToWorld(0, 0)
	if math.Abs(x-(-639.5)) > 1e-9 || math.Abs(y-359.5) > 1e-9 {
		t.Fatalf("expected (-639.5, 359.5), got (%f, %f)", x, y)
	}
	cx, cy, ok = v.ToCell(x, y)
	if !ok || cx != 0 || cy != 0 {
		t.Fatalf("expected round trip to (0,0), got (%d,%d)", cx, cy)
	}
}

func TestViewportScalesToTerminalGrid(t *testing.T) {
	v := Viewport{WorldW: 1280, WorldH: 720, W: 80, H: 24}
	x, y := v.ToWorld(79, 23)
	cx, cy, ok := v.ToCell(x, y)
	if !ok || cx != 79 || cy != 23 {
		t.Fatalf("expected bottom-right cell round trip, got (%d,%d) ok=%v", cx, cy, ok)
	}
	if x <= 0 || y >= 0 {
		t.Fatalf("expected bottom-right cell in +x/-y quadrant, got (%f, %f)", x, y)
	}
}

func TestRasterizeEntities(t *testing.T) {
	v := Viewport{WorldW: 20, WorldH: 20, W: 20, H: 20}
	grid := core.NewColorGrid(20, 20)
	snap := &fireworks.Snapshot{
		Particles: []fireworks.Particle{{
			Body:  fireworks.Body{X: -5.5, Y: 5.5},
			Color: fireworks.Color{R: 1, G: 0.5, B: 0.25},
			Alpha: 0.5,
		}},
		Trails: []fireworks.TrailPoint{{
			X: 5.5, Y: -5.5, Color: fireworks.Color{R: 1, G: 1, B: 1},
			Alpha: 1, Life: 0.2, LifeAtSpawn: 0.4,
		}},
		Rockets: []fireworks.Rocket{{Body: fireworks.Body{X: 0.5, Y: 0.5, VY: 10}}},
	}
	Rasterize(grid, v, snap)

	at := func(x, y int) core.RGB { return grid.Cells()[grid.Index(x, y)] }

	p := at(4, 4)
	if math.Abs(float64(p.R-0.5)) > 1e-6 || math.Abs(float64(p.G-0.25)) > 1e-6 {
		t.Fatalf("expected particle core at half alpha, got %+v", p)
	}
	if side := at(5, 4); math.Abs(float64(side.R-0.25)) > 1e-6 {
		t.Fatalf("expected particle spread at quarter weight, got %+v", side)
	}
	if tr := at(15, 15); math.Abs(float64(tr.R-0.5)) > 1e-6 {
		t.Fatalf("expected trail faded to 0.5, got %+v", tr)
	}
	for i := 0; i < rocketStreak; i++ {
		if c := at(10, 9+i); c.R != 1 {
			t.Fatalf("expected rocket streak cell %d lit, got %+v", i, c)
		}
	}
}

func TestFillRGBASaturates(t *testing.T) {
	cells := []core.RGB{{}, {R: 2, G: 0.5, B: -1}}
	buf := make([]byte, 8)
	fillRGBA(buf, cells, color.RGBA{R: 0, G: 0, B: 13, A: 255})
	if buf[0] != 0 || buf[1] != 0 || buf[2] != 13 || buf[3] != 0xff {
		t.Fatalf("expected background pixel, got %v", buf[:4])
	}
	if buf[4] != 0xff || buf[5] != 128 || buf[7] != 0xff {
		t.Fatalf("expected saturated pixel, got %v", buf[4:])
	}
	if got := Intensity(core.RGB{R: 0.2, G: 3, B: 0.1}); got != 1 {
		t.Fatalf("expected intensity saturated at 1, got %f", got)
	}
}
