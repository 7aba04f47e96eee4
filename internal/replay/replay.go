// Package replay records runs as (seed, activation ticks) and plays them
// back deterministically through a fresh engine.
package replay

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/engine"
)

// ErrDiverged is returned when a replay does not reproduce its recording.
var ErrDiverged = errors.New("replay: diverged from recording")

// Recording is everything needed to reproduce one run.
type Recording struct {
	ID          int64 // Assigned by storage, zero until saved
	Seed        int64
	Params      engine.Params
	Activations []uint64 // Run tick count at each activation, ascending
	Ticks       uint64   // Ticks until the run ended
	Score       int
	CreatedAt   time.Time
}

// Duration returns the run length at the given tick rate.
func (r Recording) Duration(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Duration(r.Ticks) * time.Second / time.Duration(tickRate)
}

// Recorder collects one run at a time.
type Recorder struct {
	rec    Recording
	active bool
}

// Begin starts a new recording, discarding any unfinished one.
func (r *Recorder) Begin(seed int64, params engine.Params) {
	r.rec = Recording{
		Seed:   seed,
		Params: params,
	}
	r.active = true
}

// Activate records an activation at the given run tick.
func (r *Recorder) Activate(tick uint64) {
	if !r.active {
		return
	}
	r.rec.Activations = append(r.rec.Activations, tick)
}

// Active reports whether a recording is in progress.
func (r *Recorder) Active() bool {
	return r.active
}

// Finish closes the recording with the final view of the run.
func (r *Recorder) Finish(v engine.View) (Recording, bool) {
	if !r.active {
		return Recording{}, false
	}
	r.active = false
	rec := r.rec
	rec.Ticks = v.Tick
	rec.Score = v.Score
	rec.CreatedAt = time.Now()
	r.rec = Recording{}
	return rec, true
}

// Abort drops the recording in progress.
func (r *Recorder) Abort() {
	r.active = false
	r.rec = Recording{}
}

// Playback steps a recording through a fresh engine one tick at a time.
type Playback struct {
	rec    Recording
	src    *SeededSource
	engine *engine.Engine
	view   engine.View
	next   int
	limit  uint64
}

// NewPlayback prepares a recording for playback.
func NewPlayback(rec Recording) (*Playback, error) {
	src := NewSeededSource(rec.Seed)
	e, err := engine.New(rec.Params, engine.WithSource(src))
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	return &Playback{
		rec:    rec,
		src:    src,
		engine: e,
		view:   e.View(),
		limit:  rec.Ticks + 1,
	}, nil
}

// Step applies the activations due before the next tick and advances one
// tick. It is a no-op once the run has ended.
func (p *Playback) Step() engine.View {
	if p.view.Phase == engine.PhaseEnded {
		return p.view
	}
	for p.next < len(p.rec.Activations) && p.rec.Activations[p.next] == p.view.Tick {
		p.view = p.engine.Activate()
		p.next++
	}
	if p.view.Phase == engine.PhaseActive {
		p.view = p.engine.Tick()
	}
	return p.view
}

// Restart rewinds the playback to its first tick.
func (p *Playback) Restart() engine.View {
	p.src.Reseed(p.rec.Seed)
	p.view = p.engine.Reset()
	p.next = 0
	return p.view
}

// Done reports whether the playback cannot advance any further.
func (p *Playback) Done() bool {
	if p.view.Phase == engine.PhaseEnded {
		return true
	}
	if p.view.Phase == engine.PhaseIdle && p.next >= len(p.rec.Activations) {
		return true
	}
	return p.view.Tick >= p.limit
}

// View returns the current state.
func (p *Playback) View() engine.View {
	return p.view
}

// Params returns the params of the recorded run.
func (p *Playback) Params() engine.Params {
	return p.rec.Params
}

// Recording returns the recording being played.
func (p *Playback) Recording() Recording {
	return p.rec
}

// Simulate plays a recording to the end without rendering.
func Simulate(rec Recording) (engine.View, error) {
	p, err := NewPlayback(rec)
	if err != nil {
		return engine.View{}, err
	}
	for !p.Done() {
		p.Step()
	}
	return p.View(), nil
}

// Verify replays a recording and checks it ends with the recorded tick
// count and score.
func Verify(rec Recording) (engine.View, error) {
	v, err := Simulate(rec)
	if err != nil {
		return v, err
	}
	if v.Phase != engine.PhaseEnded {
		return v, fmt.Errorf("%w: run still %s after %d ticks", ErrDiverged, v.Phase, v.Tick)
	}
	if v.Tick != rec.Ticks || v.Score != rec.Score {
		return v, fmt.Errorf("%w: got score %d at tick %d, recorded score %d at tick %d",
			ErrDiverged, v.Score, v.Tick, rec.Score, rec.Ticks)
	}
	return v, nil
}
