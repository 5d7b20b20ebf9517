package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/reaction/go/internal/debounce"
	"github.com/mcdev12/reaction/go/internal/display"
	"github.com/mcdev12/reaction/go/internal/game"
	"github.com/mcdev12/reaction/go/internal/gameconfig"
	"github.com/mcdev12/reaction/go/internal/led"
	"github.com/mcdev12/reaction/go/internal/metrics"
)

type Game struct {
	Session    *game.Session
	Machine    *game.Machine
	Controller *game.Controller
	Stats      *metrics.Stats
	LED        *led.Latch
}

func setupGame(cfg gameconfig.Config, clock clockwork.Clock, out io.Writer) (*Game, error) {
	// Wire up the hardware stand-ins
	// LED → display → random source → machine → input controller
	latch := &led.Latch{}
	light := led.NewLogged("green", latch)

	screen := display.NewConsole(out, cfg.Display.Width, cfg.Display.Rows, display.Palette{
		Background: cfg.Display.Background,
		Text:       cfg.Display.Text,
	}, cfg.Display.Color)

	// Seeded once at boot from the system time
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	stats := metrics.NewStats()
	session := game.NewSession()

	machine, err := game.NewMachine(session, clock, light, screen, rng, game.Config{
		DelayMin:      cfg.DelayMin,
		DelayMax:      cfg.DelayMax,
		BlinkNormal:   cfg.BlinkNormal,
		BlinkCheating: cfg.BlinkCheating,
	}, game.WithMetrics(stats))
	if err != nil {
		return nil, fmt.Errorf("failed to create game machine: %w", err)
	}

	var opts []debounce.Option
	if cfg.WatchdogGrace > 0 {
		opts = append(opts, debounce.WithWatchdog(cfg.WatchdogGrace))
	}
	primary := debounce.New(game.ButtonPrimary.String(), clock, cfg.DebounceWindow, opts...)
	var secondary *debounce.Debouncer
	if cfg.DebounceReset {
		secondary = debounce.New(game.ButtonSecondary.String(), clock, cfg.DebounceWindow, opts...)
	}

	return &Game{
		Session:    session,
		Machine:    machine,
		Controller: game.NewController(machine, primary, secondary),
		Stats:      stats,
		LED:        latch,
	}, nil
}
