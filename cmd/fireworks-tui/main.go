package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"fireworks/internal/app"
	"fireworks/internal/audio"
	"fireworks/internal/settings"
	"fireworks/internal/sims/fireworks"
	"fireworks/internal/terminal"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	silent := flag.Bool("silent", false, "disable audio")
	logPath := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	// The terminal owns stdout and stderr while running.
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

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

	var player *audio.Player
	if !*silent {
		player = audio.NewPlayer(float64(simCfg.Width))
		if err := player.Init(); err != nil {
			log.Printf("[Audio] Warning: %v (running without sound)", err)
		}
		defer player.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("failed to init screen: %v", err)
	}
	if *logPath == "" {
		log.SetOutput(io.Discard)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tui := terminal.New(screen, sim, terminal.Options{
		TPS:    cfg.TPS,
		Fixed:  cfg.Fixed,
		Player: player,
		Prefs:  prefs,
	})
	err = tui.Run(ctx)
	screen.Fini()
	if *logPath == "" {
		log.SetOutput(os.Stderr)
	}
	if err := runError(err); err != nil {
		log.Fatal(err)
	}
}

// runError drops the cancellation caused by an interrupt signal.
func runError(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
