// Package engine implements the fixed-step flyer-and-gates simulation.
//
// An Engine owns one snapshot of the game. A driving clock calls Tick once
// per frame and an input source calls Activate whenever the player acts;
// both return a View copy for rendering. Each Tick reads the committed
// snapshot, builds the next one in a back buffer and then swaps, so the
// physics, obstacle and collision steps never observe a half-updated state.
package engine

import (
	"math/rand"
	"sync"
	"time"
)

// Engine is safe for concurrent use: Tick and Activate are serialized and
// View may be called from any goroutine.
type Engine struct {
	mu     sync.Mutex
	params Params
	src    Source
	cur    *snapshot
	next   *snapshot
}

// Option configures an Engine.
type Option func(*Engine)

// WithSource sets the random source used for gate heights.
func WithSource(src Source) Option {
	return func(e *Engine) {
		e.src = src
	}
}

// WithSeed seeds a private math/rand source for gate heights.
func WithSeed(seed int64) Option {
	return WithSource(rand.New(rand.NewSource(seed)))
}

// New validates params and returns an engine in the Idle phase.
func New(params Params, opts ...Option) (*Engine, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		params: params,
		cur:    &snapshot{},
		next:   &snapshot{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.src == nil {
		e.src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	e.cur.reset(params)
	return e, nil
}

// Params returns the constants the engine was built with.
func (e *Engine) Params() Params {
	return e.params
}

// Tick advances the simulation by one fixed step. Outside the Active phase
// it is a no-op that returns the current view.
func (e *Engine) Tick() View {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cur.phase != PhaseActive {
		return e.cur.view()
	}

	prev, next := e.cur, e.next
	next.copyFrom(prev)
	next.tick++

	if integrate(e.params, prev, next) {
		advanceGates(e.params, e.src, next)
		evaluate(e.params, next)
	}

	e.cur, e.next = next, prev
	return e.cur.view()
}

// Activate applies one player action:
// Idle starts the run with an impulse, Active replaces the velocity with the
// impulse, Ended resets everything back to Idle.
func (e *Engine) Activate() View {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.cur.phase {
	case PhaseIdle:
		e.cur.phase = PhaseActive
		e.cur.flyerVel = e.params.JumpImpulse
	case PhaseActive:
		e.cur.flyerVel = e.params.JumpImpulse
	case PhaseEnded:
		e.cur.reset(e.params)
	}
	return e.cur.view()
}

// Reset discards the current run and returns to the initial Idle state.
func (e *Engine) Reset() View {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cur.reset(e.params)
	return e.cur.view()
}

// View returns a copy of the current state.
func (e *Engine) View() View {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cur.view()
}

// Phase returns the current phase without copying the gates.
func (e *Engine) Phase() Phase {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cur.phase
}
