//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"fireworks/internal/core"
	"fireworks/internal/render"
	"fireworks/internal/sims/fireworks"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

type rocketProvider interface {
	Rockets() []fireworks.Rocket
}

type capacityProvider interface {
	Capacity() fireworks.Capacity
}

// Overlay draws optional debugging visuals on top of the display.
type Overlay struct {
	sim   core.Sim
	view  render.Viewport
	scale int

	showApex     bool
	showVelocity bool
	showCapacity bool

	rockets []fireworks.Rocket
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, view render.Viewport, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{sim: sim, view: view, scale: scale}
}

// Update toggles overlay layers: 1 apex markers, 2 velocity vectors,
// 3 capacity gauges.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showApex = !o.showApex
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showVelocity = !o.showVelocity
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showCapacity = !o.showCapacity
	}
}

// Draw renders the enabled layers onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showApex || o.showVelocity {
		if provider, ok := o.sim.(rocketProvider); ok {
			o.rockets = provider.Rockets()
			o.drawRockets(screen)
		}
	}
	if o.showCapacity {
		if provider, ok := o.sim.(capacityProvider); ok {
			o.drawCapacity(screen, provider.Capacity())
		}
	}
}

func (o *Overlay) toScreen(x, y float64) (float32, float32, bool) {
	cx, cy, ok := o.view.ToCell(x, y)
	s := o.scale
	return float32(cx*s + s/2), float32(cy*s + s/2), ok
}

func (o *Overlay) drawRockets(screen *ebiten.Image) {
	apexColor := color.RGBA{R: 255, G: 200, B: 60, A: 160}
	velColor := color.RGBA{R: 80, G: 200, B: 255, A: 220}
	for _, r := range o.rockets {
		x, y, ok := o.toScreen(r.X, r.Y)
		if o.showApex {
			ax, ay, _ := o.toScreen(r.X, r.TargetY)
			vector.StrokeLine(screen, ax-8, ay, ax+8, ay, 1, apexColor, false)
			if ok {
				vector.StrokeLine(screen, x, y, ax, ay, 1, color.RGBA{R: 255, G: 200, B: 60, A: 48}, false)
			}
		}
		if o.showVelocity && ok {
			// One screen pixel per 10 world units per second.
			ex, ey := x+float32(r.VX/10)*float32(o.scale), y-float32(r.VY/10)*float32(o.scale)
			vector.StrokeLine(screen, x, y, ex, ey, 1, velColor, false)
		}
	}
}

func (o *Overlay) drawCapacity(screen *ebiten.Image, c fireworks.Capacity) {
	const (
		barX = 12
		barW = 160
		barH = 8
	)
	face := basicfont.Face7x13
	bars := []struct {
		label string
		fill  float64
		count int
		max   int
	}{
		{"particles", c.ParticleFill(), c.Particles, c.MaxParticles},
		{"trails", c.TrailFill(), c.Trails, c.MaxTrails},
	}
	y := 12
	for _, b := range bars {
		vector.DrawFilledRect(screen, barX, float32(y), barW, barH, color.RGBA{R: 40, G: 40, B: 48, A: 200}, false)
		fillColor := color.RGBA{R: 80, G: 220, B: 120, A: 230}
		if b.fill >= 1 {
			fillColor = color.RGBA{R: 240, G: 80, B: 60, A: 230}
		}
		vector.DrawFilledRect(screen, barX, float32(y), float32(b.fill*barW), barH, fillColor, false)
		label := fmt.Sprintf("%s %d/%d", b.label, b.count, b.max)
		text.Draw(screen, label, face, barX+barW+8, y+barH, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		y += 18
	}
}
