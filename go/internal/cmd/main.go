package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	"github.com/joho/godotenv"
	"github.com/mcdev12/reaction/go/internal/game"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("could not load .env file")
	}

	cfg, err := loadConfig()
	if err != nil {
		setupLogging("info")
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	setupLogging(cfg.LogLevel)

	g, err := setupGame(cfg, clockwork.NewRealClock(), os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up game")
	}

	log.Info().
		Str("session_id", g.Session.ID).
		Dur("debounce_window", cfg.DebounceWindow).
		Bool("debounce_reset", cfg.DebounceReset).
		Dur("delay_min", cfg.DelayMin).
		Dur("delay_max", cfg.DelayMax).
		Msg("starting reaction game; p = play button, r = reset button, ? = status, q = quit")

	// Context for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	edges := make(chan game.Button, 16)
	go readButtons(ctx, os.Stdin, edges, func() {
		snap := g.Machine.Snapshot()
		log.Info().
			Str("phase", snap.Phase.String()).
			Uint32("reaction_ms", snap.ReactionMS).
			Bool("has_fastest", snap.HasFastest).
			Uint32("fastest_ms", snap.FastestMS).
			Bool("led_on", g.LED.On()).
			Dur("blink_period", snap.BlinkPeriod).
			Msg("status")
	})

	g.Machine.Start()

	if err := g.Controller.Run(ctx, edges); err != nil {
		log.Error().Err(err).Msg("input loop failed")
	}

	g.Controller.Close()
	g.Machine.Shutdown()

	sum := g.Stats.Summary()
	log.Info().
		Int("rounds", sum.Rounds).
		Int("cheats", sum.Cheats).
		Uint32("best_ms", sum.BestMS).
		Uint32("mean_ms", sum.MeanMS).
		Interface("dropped_edges", sum.DroppedEdges).
		Interface("stale_timers", sum.StaleTimers).
		Msg("reaction game shutdown complete")
}
