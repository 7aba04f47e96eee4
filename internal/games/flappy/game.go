// Package flappy adapts the simulation engine to the platform's
// step-and-render loop and journals every finished run.
package flappy

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/engine"
	"github.com/vovakirdan/tui-flappy/internal/replay"
)

// Game is the playable frontend of one engine.
// Activation input drives the engine, the platform clock drives Tick.
type Game struct {
	engine *engine.Engine
	src    *replay.SeededSource // Gate source, reseeded for every run
	seeds  *rand.Rand           // Master generator of per-run seeds
	rec    replay.Recorder
	sink   func(replay.Recording)
	logger *log.Logger
	view   engine.View
	paused bool
	config core.RuntimeConfig
}

// Option configures a Game.
type Option func(*Game)

// WithRunSink sets a callback that receives every finished run.
func WithRunSink(fn func(replay.Recording)) Option {
	return func(g *Game) {
		g.sink = fn
	}
}

// WithLogger sets the logger for run events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// New creates a game for the given params. The game starts Idle; call Reset
// before stepping it to pick the seed.
func New(params engine.Params, opts ...Option) (*Game, error) {
	src := replay.NewSeededSource(0)
	e, err := engine.New(params, engine.WithSource(src))
	if err != nil {
		return nil, err
	}

	g := &Game{
		engine: e,
		src:    src,
		seeds:  rand.New(rand.NewSource(0)),
		view:   e.View(),
		config: core.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.Default()
	}
	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy"
}

// Reset reseeds the master generator from cfg and discards the current run.
// A zero seed picks one from the clock.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.seeds.Seed(seed)
	g.rec.Abort()
	g.src.Reseed(g.seeds.Int63())
	g.view = g.engine.Reset()
	g.paused = false
}

// Step applies one frame of input and advances the engine by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && g.view.Phase == engine.PhaseActive {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionJump) {
		g.activate()
	}

	if g.view.Phase == engine.PhaseActive {
		g.view = g.engine.Tick()
		if g.view.Phase == engine.PhaseEnded {
			g.finish()
		}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) activate() {
	switch g.view.Phase {
	case engine.PhaseIdle:
		g.rec.Begin(g.src.Seed(), g.engine.Params())
		g.logger.Debug("run started", "seed", g.src.Seed())
	case engine.PhaseEnded:
		// The engine resets itself on this activation; the next run needs its own seed.
		g.src.Reseed(g.seeds.Int63())
	}
	g.rec.Activate(g.view.Tick)
	g.view = g.engine.Activate()
}

func (g *Game) finish() {
	rec, ok := g.rec.Finish(g.view)
	if !ok {
		return
	}
	g.logger.Debug("run ended", "seed", rec.Seed, "ticks", rec.Ticks, "score", rec.Score, "flaps", len(rec.Activations))
	if g.sink != nil {
		g.sink(rec)
	}
}

// Render draws the current state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	Draw(dst, g.engine.Params(), g.view)

	switch {
	case g.paused:
		DrawMessage(dst, "PAUSED", "Press P to resume")
	case g.view.Phase == engine.PhaseIdle:
		DrawMessage(dst, "FLAPPY", "Press SPACE or click to start")
	case g.view.Phase == engine.PhaseEnded:
		DrawMessage(dst, "GAME OVER", fmtScoreLine(g.view.Score, "Press SPACE to restart"))
	}
}

// State returns the platform-facing state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.view.Score,
		Idle:     g.view.Phase == engine.PhaseIdle,
		GameOver: g.view.Phase == engine.PhaseEnded,
		Paused:   g.paused,
	}
}

// View returns the last engine view.
func (g *Game) View() engine.View {
	return g.view
}

// Params returns the engine params.
func (g *Game) Params() engine.Params {
	return g.engine.Params()
}

// Seed returns the seed of the current run.
func (g *Game) Seed() int64 {
	return g.src.Seed()
}
