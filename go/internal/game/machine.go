package game

import (
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/reaction/go/internal/display"
	"github.com/mcdev12/reaction/go/internal/led"
	"github.com/mcdev12/reaction/go/internal/metrics"
	"github.com/mcdev12/reaction/go/internal/timing"
	"github.com/rs/zerolog/log"
)

// Config holds the machine's timing parameters.
type Config struct {
	DelayMin      time.Duration
	DelayMax      time.Duration
	BlinkNormal   time.Duration
	BlinkCheating time.Duration
}

func DefaultConfig() Config {
	return Config{
		DelayMin:      1000 * time.Millisecond,
		DelayMax:      5000 * time.Millisecond,
		BlinkNormal:   100 * time.Millisecond,
		BlinkCheating: 500 * time.Millisecond,
	}
}

type Option func(*Machine)

// WithMetrics sets the metrics collector. The default is metrics.NoOp.
func WithMetrics(c metrics.Collector) Option {
	return func(m *Machine) {
		m.metrics = c
	}
}

// Machine is the game controller. Every transition runs under mu, exit
// actions first (all game timers cancelled) and entry actions second, so
// a concurrently firing callback never observes a half-applied transition.
type Machine struct {
	cfg      Config
	light    led.LED
	screen   display.Presenter
	blinker  *led.Blinker
	delay    *timing.RandomDelay
	reaction *timing.ReactionTimer
	metrics  metrics.Collector

	mu      sync.Mutex
	session *Session
	ledOn   bool
	started bool
}

// NewMachine wires a machine around session. src is the already seeded
// random source for the start delay.
func NewMachine(session *Session, clock clockwork.Clock, light led.LED, screen display.Presenter, src timing.Source, cfg Config, opts ...Option) (*Machine, error) {
	if session == nil {
		return nil, fmt.Errorf("new machine: nil session")
	}
	if cfg.BlinkNormal <= 0 || cfg.BlinkCheating <= 0 {
		return nil, fmt.Errorf("new machine: %w: normal=%s cheating=%s", led.ErrInvalidPeriod, cfg.BlinkNormal, cfg.BlinkCheating)
	}
	delay, err := timing.NewRandomDelay(clock, src, cfg.DelayMin, cfg.DelayMax)
	if err != nil {
		return nil, fmt.Errorf("new machine: %w", err)
	}

	m := &Machine{
		cfg:      cfg,
		light:    light,
		screen:   screen,
		blinker:  led.NewBlinker(clock, light),
		delay:    delay,
		reaction: timing.NewReactionTimer(clock),
		metrics:  metrics.NoOp{},
		session:  session,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Start enters Pregame. Calling it again is a no-op.
func (m *Machine) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.started {
		return
	}
	m.started = true
	m.session.Phase = PhasePregame
	m.enterPregame()

	log.Info().
		Str("session_id", m.session.ID).
		Msg("game started")
}

// Shutdown cancels every game timer and turns the LED off.
func (m *Machine) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.exit()
	m.setLED(false)
	m.started = false

	log.Info().Str("session_id", m.session.ID).Msg("game stopped")
}

// HandleEvent applies ev to the current phase. Events with no table entry
// are accepted and ignored.
func (m *Machine) HandleEvent(ev Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dispatch(ev)
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session.Phase
}

func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Snapshot{
		SessionID:    m.session.ID,
		RoundID:      m.session.Round,
		Phase:        m.session.Phase,
		ReactionMS:   m.session.ReactionMS,
		FastestMS:    m.session.FastestMS,
		HasFastest:   m.session.HasFastest(),
		LEDOn:        m.ledOn,
		BlinkPeriod:  m.blinker.Period(),
		DelayPending: m.delay.Pending(),
		Measuring:    m.reaction.Running(),
	}
}

// onDelayExpired is the random delay callback. A generation that is no
// longer live belongs to a Start phase that has already been left.
func (m *Machine) onDelayExpired(gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.delay.Expire(gen) {
		m.metrics.RecordStaleTimer("random_delay")
		log.Debug().
			Str("session_id", m.session.ID).
			Uint64("gen", gen).
			Str("phase", m.session.Phase.String()).
			Msg("stale delay expiry discarded")
		return
	}
	m.dispatch(EventDelayExpired)
}

func (m *Machine) dispatch(ev Event) {
	from := m.session.Phase
	step, ok := Lookup(from, ev)
	if !ok {
		log.Debug().
			Str("session_id", m.session.ID).
			Str("phase", from.String()).
			Str("event", ev.String()).
			Msg("event ignored")
		return
	}

	elapsed := m.exit()
	m.session.Phase = step.Next
	m.enter(step.Action, elapsed)

	m.metrics.RecordTransition(from.String(), step.Next.String(), ev.String())
	log.Info().
		Str("session_id", m.session.ID).
		Str("round_id", m.session.Round).
		Str("from", from.String()).
		Str("to", step.Next.String()).
		Str("event", ev.String()).
		Msg("phase transition")
}

// exit cancels every game timer slot and returns the reaction time if a
// measurement was running.
func (m *Machine) exit() uint32 {
	m.delay.Cancel()
	var elapsed uint32
	if m.reaction.Running() {
		elapsed = m.reaction.Stop()
	}
	m.blinker.Stop()
	return elapsed
}

func (m *Machine) enter(action Action, elapsed uint32) {
	switch action {
	case ActionReset:
		m.session.Reset()
		m.reaction.Reset()
		m.setLED(false)
		m.enterPregame()

	case ActionIdle:
		m.enterPregame()

	case ActionArm:
		round := m.session.NewRound()
		m.setLED(false)
		d := m.delay.Schedule(m.onDelayExpired)
		showWait(m.screen)
		log.Debug().
			Str("session_id", m.session.ID).
			Str("round_id", round).
			Dur("delay", d).
			Msg("waiting for go signal")

	case ActionGo:
		m.setLED(true)
		m.reaction.Reset()
		m.reaction.Start()
		showGo(m.screen)

	case ActionResult:
		improved := m.session.RecordReaction(elapsed)
		m.metrics.RecordReaction(m.session.ReactionMS)
		showResult(m.screen, m.session)
		log.Info().
			Str("session_id", m.session.ID).
			Str("round_id", m.session.Round).
			Uint32("elapsed_ms", m.session.ReactionMS).
			Uint32("fastest_ms", m.session.FastestMS).
			Bool("new_fastest", improved).
			Msg("reaction recorded")

	case ActionCheat:
		m.metrics.RecordCheat()
		showCheating(m.screen)
		m.setLED(false)
		m.startBlink(m.cfg.BlinkCheating)
		log.Info().
			Str("session_id", m.session.ID).
			Str("round_id", m.session.Round).
			Msg("pressed before go signal")
	}
}

func (m *Machine) enterPregame() {
	m.setLED(false)
	m.startBlink(m.cfg.BlinkNormal)
	showIdle(m.screen)
}

func (m *Machine) startBlink(period time.Duration) {
	if err := m.blinker.Start(period); err != nil {
		log.Error().Err(err).Str("session_id", m.session.ID).Msg("failed to start blinker")
	}
}

func (m *Machine) setLED(on bool) {
	m.ledOn = on
	m.light.Set(on)
}
