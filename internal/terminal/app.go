package terminal

import (
	"context"
	"fmt"
	"log"
	"time"

	"fireworks/internal/audio"
	"fireworks/internal/core"
	"fireworks/internal/settings"
	"fireworks/internal/sims/fireworks"

	"github.com/gdamore/tcell/v2"
)

// App drives a simulation from terminal input and draws it each frame.
type App struct {
	screen   tcell.Screen
	sim      *fireworks.Simulation
	renderer *Renderer
	player   *audio.Player
	prefs    *settings.Manager

	clock *core.FrameClock
	fixed *core.FixedStep
	frame time.Duration

	paused     bool
	muted      bool
	lastButton tcell.ButtonMask
}

// Options configures an App. Player and Prefs may be nil.
type Options struct {
	TPS    int
	Fixed  bool
	Player *audio.Player
	Prefs  *settings.Manager
}

// New wires sim to screen. The screen must already be initialized.
func New(screen tcell.Screen, sim *fireworks.Simulation, opts Options) *App {
	tps := opts.TPS
	if tps <= 0 {
		tps = 60
	}
	a := &App{
		screen:   screen,
		sim:      sim,
		renderer: NewRenderer(sim.Size()),
		player:   opts.Player,
		prefs:    opts.Prefs,
		clock:    core.NewFrameClock(),
		frame:    time.Second / time.Duration(tps),
	}
	if opts.Fixed {
		a.fixed = core.NewFixedStep(tps)
	}
	if a.prefs != nil {
		a.prefs.Apply(sim)
		a.muted = a.prefs.Preferences().Muted
	}
	if a.player != nil {
		a.player.SetMuted(a.muted)
		sim.OnDetonate(a.player.PlayBurst)
	}
	screen.EnableMouse()
	screen.HideCursor()
	return a
}

// Run processes events and frames until the user quits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(a.frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(a.screen, eventChan, done)

	a.Frame()
	for {
		select {
		case <-ctx.Done():
			a.saveSettings()
			return ctx.Err()
		case ev, ok := <-eventChan:
			if !ok || !a.HandleEvent(ev) {
				a.saveSettings()
				return nil
			}
		case <-ticker.C:
			a.Frame()
		}
	}
}

type eventSource interface {
	PollEvent() tcell.Event
}

// pollEvents forwards events from src to out until src is finalized or done
// is closed. out is closed when src runs dry.
func pollEvents(src eventSource, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := src.PollEvent()
		if ev == nil {
			close(out)
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

// Frame advances the simulation unless paused and redraws.
func (a *App) Frame() {
	if !a.paused {
		dt := a.clock.Delta()
		if a.fixed != nil {
			dt = a.fixed.Seconds()
		}
		if err := a.sim.Tick(dt); err != nil {
			log.Printf("[Terminal] Warning: %v", err)
		}
	}
	a.renderer.Draw(a.screen, a.sim, a.status())
}

// HandleEvent applies one input event and reports whether the app should
// keep running.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		a.sim.AdjustBurstCount(fireworks.BurstStep)
		return true
	case tcell.KeyDown:
		a.sim.AdjustBurstCount(-fireworks.BurstStep)
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return false
	case '+', '=':
		a.sim.AdjustBurstCount(fireworks.BurstStep)
	case '-', '_':
		a.sim.AdjustBurstCount(-fireworks.BurstStep)
	case ' ':
		a.paused = !a.paused
		a.clock.Restart()
	case 'r', 'R':
		a.sim.Reset(0)
		a.clock.Restart()
	case 'm', 'M':
		a.setMuted(!a.muted)
	}
	return true
}

// handleMouse launches on the press edge of the left button so that a held
// button or drag does not launch every motion event.
func (a *App) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && a.lastButton&tcell.Button1 == 0
	a.lastButton = buttons
	if !pressed {
		return
	}
	col, row := ev.Position()
	view := a.renderer.Viewport()
	if col < 0 || row < 0 || col >= view.W || row >= view.H {
		return
	}
	x, y := view.ToWorld(col, row)
	a.sim.Launch(x, y)
}

func (a *App) setMuted(muted bool) {
	a.muted = muted
	if a.player != nil {
		a.player.SetMuted(muted)
	}
	if a.prefs != nil {
		a.prefs.SetMuted(muted)
	}
}

func (a *App) status() string {
	rockets, particles, trails := a.sim.Counts()
	stats := a.sim.Stats()
	s := fmt.Sprintf(" burst %d | rockets %d | particles %d/%d | trails %d | dropped %d",
		a.sim.BurstCount(), rockets, particles, a.sim.Config().Params.MaxParticles, trails, stats.Dropped)
	if a.paused {
		s += " | paused"
	}
	if a.muted {
		s += " | muted"
	}
	return s + " | click launch  +/- burst  space pause  r reset  m mute  q quit"
}

func (a *App) saveSettings() {
	if a.prefs == nil {
		return
	}
	a.prefs.Capture(a.sim)
	if err := a.prefs.Save(); err != nil {
		log.Printf("[Settings] Warning: %v", err)
	}
}
