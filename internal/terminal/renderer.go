// Package terminal runs the display in a text terminal through tcell.
package terminal

import (
	"fireworks/internal/core"
	"fireworks/internal/render"
	"fireworks/internal/sims/fireworks"

	"github.com/gdamore/tcell/v2"
)

// ramp orders glyphs from dim to bright.
var ramp = []rune{'.', ':', '+', '*', '#', '@'}

// minIntensity is the brightness below which a cell is left blank.
const minIntensity = 0.04

// Renderer rasterizes the simulation onto every terminal row except the
// last, which is kept for the status line.
type Renderer struct {
	grid *core.ColorGrid
	view render.Viewport
	snap fireworks.Snapshot
}

// NewRenderer returns a renderer for a world of the given size.
func NewRenderer(world core.Size) *Renderer {
	return &Renderer{
		grid: core.NewColorGrid(0, 0),
		view: render.Viewport{WorldW: float64(world.W), WorldH: float64(world.H)},
	}
}

// Viewport returns the mapping used by the last Draw.
func (r *Renderer) Viewport() render.Viewport { return r.view }

// Draw paints the simulation and the status line and shows the screen.
func (r *Renderer) Draw(screen tcell.Screen, sim *fireworks.Simulation, status string) {
	w, h := screen.Size()
	rows := max(h-1, 0)
	if r.view.W != w || r.view.H != rows {
		r.view.W, r.view.H = w, rows
		r.grid.Resize(w, rows)
	}

	screen.Clear()
	r.grid.Clear()
	sim.Snapshot(&r.snap)
	render.Rasterize(r.grid, r.view, &r.snap)

	cells := r.grid.Cells()
	for y := 0; y < rows; y++ {
		for x := 0; x < w; x++ {
			c := cells[r.grid.Index(x, y)]
			glyph, ok := glyphFor(render.Intensity(c))
			if !ok {
				continue
			}
			cr, cg, cb := render.Saturate(c)
			style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(cr), int32(cg), int32(cb)))
			screen.SetContent(x, y, glyph, nil, style)
		}
	}

	if h > 0 {
		statusStyle := tcell.StyleDefault.Foreground(tcell.ColorSilver)
		for i, ch := range []rune(status) {
			if i >= w {
				break
			}
			screen.SetContent(i, h-1, ch, nil, statusStyle)
		}
	}
	screen.Show()
}

func glyphFor(intensity float32) (rune, bool) {
	if intensity < minIntensity {
		return ' ', false
	}
	idx := int(intensity * float32(len(ramp)))
	if idx >= len(ramp) {
		idx = len(ramp) - 1
	}
	return ramp[idx], true
}
