//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"fireworks/internal/app"
	"fireworks/internal/settings"
	"fireworks/internal/sims/fireworks"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	simCfg, err := cfg.SimConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	sim := fireworks.NewWithConfig(simCfg)

	var prefs *settings.Manager
	if !cfg.NoSave {
		store, err := settings.OpenStore(settings.AppName)
		if err != nil {
			log.Printf("[Settings] Warning: %v (preferences will not persist)", err)
		}
		prefs = settings.NewManager(store)
	}

	game := app.New(sim, cfg, prefs)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("fireworks")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	err = ebiten.RunGame(game)
	game.SaveSettings()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
