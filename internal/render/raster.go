package render

import (
	"math"

	"fireworks/internal/core"
	"fireworks/internal/sims/fireworks"
)

// rocketStreak is how many cells a rocket body spans along its heading.
const rocketStreak = 3

var particleSpread = [...][2]int{{0, 0}, {1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Rasterize accumulates trails, particles and rockets from snap into grid.
// The grid is not cleared first.
func Rasterize(grid *core.ColorGrid, v Viewport, snap *fireworks.Snapshot) {
	for _, t := range snap.Trails {
		cx, cy, ok := v.ToCell(t.X, t.Y)
		if !ok {
			continue
		}
		grid.Add(cx, cy, float32(t.Color.R), float32(t.Color.G), float32(t.Color.B), float32(t.Fade()))
	}

	for _, p := range snap.Particles {
		cx, cy, ok := v.ToCell(p.X, p.Y)
		if !ok {
			continue
		}
		a := float32(p.Alpha)
		for i, off := range particleSpread {
			w := a
			if i > 0 {
				w *= 0.5
			}
			grid.Add(cx+off[0], cy+off[1], float32(p.Color.R), float32(p.Color.G), float32(p.Color.B), w)
		}
	}

	for _, r := range snap.Rockets {
		cx, cy, ok := v.ToCell(r.X, r.Y)
		if !ok {
			continue
		}
		dx, dy := heading(r.VX, r.VY)
		for i := 0; i < rocketStreak; i++ {
			x := cx - int(math.Round(dx*float64(i)))
			y := cy + int(math.Round(dy*float64(i)))
			grid.Add(x, y, 1, 1, 1, 1)
		}
	}
}

// heading returns the unit direction of travel, straight up when at rest.
func heading(vx, vy float64) (float64, float64) {
	l := math.Hypot(vx, vy)
	if l == 0 {
		return 0, 1
	}
	return vx / l, vy / l
}
