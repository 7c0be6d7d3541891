//go:build ebiten

package render

import (
	"image/color"

	"fireworks/internal/core"
	"fireworks/internal/sims/fireworks"

	"github.com/hajimehoshi/ebiten/v2"
)

// Painter rasterizes a snapshot into a world-sized image and draws it.
type Painter struct {
	view Viewport
	grid *core.ColorGrid
	img  *ebiten.Image
	buf  []byte
	bg   color.Color
}

// NewPainter allocates a painter for a world of size w*h, one pixel per unit.
func NewPainter(w, h int, bg color.Color) *Painter {
	return &Painter{
		view: Viewport{WorldW: float64(w), WorldH: float64(h), W: w, H: h},
		grid: core.NewColorGrid(w, h),
		img:  ebiten.NewImage(w, h),
		buf:  make([]byte, 4*w*h),
		bg:   bg,
	}
}

// Viewport returns the world-to-pixel mapping used by the painter.
func (p *Painter) Viewport() Viewport { return p.view }

// Draw uploads the rasterized snapshot and draws it scaled onto dst.
func (p *Painter) Draw(dst *ebiten.Image, snap *fireworks.Snapshot, scale int) {
	p.grid.Clear()
	Rasterize(p.grid, p.view, snap)
	fillRGBA(p.buf, p.grid.Cells(), p.bg)
	p.img.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(p.img, op)
}
