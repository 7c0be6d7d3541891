//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"fireworks/internal/core"
	"fireworks/internal/render"
	"fireworks/internal/settings"
	"fireworks/internal/sims/fireworks"
	"fireworks/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Game adapts a fireworks simulation to the ebiten.Game interface.
type Game struct {
	sim      *fireworks.Simulation
	painter  *render.Painter
	overlay  *ui.Overlay
	hud      *ui.HUD
	settings *settings.Manager

	clock *core.FrameClock
	fixed *core.FixedStep
	snap  fireworks.Snapshot

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation. A nil prefs manager
// disables persistence.
func New(sim *fireworks.Simulation, cfg *Config, prefs *settings.Manager) *Game {
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	size := sim.Size()
	painter := render.NewPainter(size.W, size.H, color.Black)
	g := &Game{
		sim:      sim,
		painter:  painter,
		overlay:  ui.NewOverlay(sim, painter.Viewport(), scale),
		hud:      ui.NewHUD(sim, hudWidth),
		settings: prefs,
		clock:    core.NewFrameClock(),
		scale:    scale,
		seed:     sim.Config().Seed,
	}
	if cfg.Fixed {
		g.fixed = core.NewFixedStep(cfg.TPS)
	}
	if prefs != nil {
		prefs.Apply(sim)
	}
	return g
}

// Reset clears the display and reseeds it.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.clock.Restart()
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.clock.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if anyJustPressed(ebiten.KeyUp, ebiten.KeyEqual, ebiten.KeyKPAdd) {
		g.sim.AdjustBurstCount(fireworks.BurstStep)
	}
	if anyJustPressed(ebiten.KeyDown, ebiten.KeyMinus, ebiten.KeyKPSubtract) {
		g.sim.AdjustBurstCount(-fireworks.BurstStep)
	}

	viewW := g.sim.Size().W * g.scale
	g.hud.Update(viewW)
	g.overlay.Update()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if !g.hud.Consumes(mx) {
			g.launchAt(mx, my)
		}
	}

	switch {
	case g.tickOnce:
		g.tick(g.stepSeconds())
		g.tickOnce = false
		g.clock.Restart()
	case !g.paused:
		g.tick(g.frameSeconds())
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.sim.Snapshot(&g.snap)
	g.painter.Draw(screen, &g.snap, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}

func (g *Game) launchAt(mx, my int) {
	view := g.painter.Viewport()
	col, row := mx/g.scale, my/g.scale
	if col < 0 || row < 0 || col >= view.W || row >= view.H {
		return
	}
	x, y := view.ToWorld(col, row)
	g.sim.Launch(x, y)
}

func (g *Game) tick(dt float64) {
	if err := g.sim.Tick(dt); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// frameSeconds returns the step for a running frame: the fixed step when
// configured, wall-clock time otherwise.
func (g *Game) frameSeconds() float64 {
	if g.fixed != nil {
		return g.fixed.Seconds()
	}
	return g.clock.Delta()
}

// stepSeconds returns the step used by single-stepping while paused.
func (g *Game) stepSeconds() float64 {
	if g.fixed != nil {
		return g.fixed.Seconds()
	}
	return 1.0 / float64(ebiten.TPS())
}

// SaveSettings stores the current burst count. The GUI command calls it once
// RunGame returns.
func (g *Game) SaveSettings() {
	if g.settings == nil {
		return
	}
	g.settings.Capture(g.sim)
	if err := g.settings.Save(); err != nil {
		log.Printf("[Settings] Warning: %v", err)
	}
}

func anyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
