package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/engine"
	"github.com/vovakirdan/tui-flappy/internal/replay"
)

// ReplayGame plays a recorded run back through the same step-and-render
// contract as a live Game. Jump restarts the playback once it is done.
type ReplayGame struct {
	rec      replay.Recording
	playback *replay.Playback
	paused   bool
}

// NewReplay prepares a recording for playback.
func NewReplay(rec replay.Recording) (*ReplayGame, error) {
	p, err := replay.NewPlayback(rec)
	if err != nil {
		return nil, err
	}
	return &ReplayGame{rec: rec, playback: p}, nil
}

// ID returns the unique identifier for this game.
func (r *ReplayGame) ID() string {
	return fmt.Sprintf("flappy_replay_%d", r.rec.ID)
}

// Title returns the display name for this game.
func (r *ReplayGame) Title() string {
	return fmt.Sprintf("Replay #%d", r.rec.ID)
}

// Reset restarts the playback from the first tick.
func (r *ReplayGame) Reset(cfg core.RuntimeConfig) {
	r.playback.Restart()
	r.paused = false
}

// Step advances the playback by one recorded tick.
func (r *ReplayGame) Step(in core.InputFrame) core.StepResult {
	if r.playback.Done() {
		if in.Has(core.ActionJump) {
			r.Reset(core.RuntimeConfig{})
		}
		return core.StepResult{State: r.State()}
	}

	if in.Has(core.ActionPause) {
		r.paused = !r.paused
	}
	if !r.paused {
		r.playback.Step()
	}
	return core.StepResult{State: r.State()}
}

// Render draws the playback to the screen.
func (r *ReplayGame) Render(dst *core.Screen) {
	dst.Clear()
	v := r.playback.View()
	Draw(dst, r.playback.Params(), v)

	label := fmt.Sprintf(" REPLAY #%d  tick %d/%d ", r.rec.ID, v.Tick, r.rec.Ticks)
	dst.DrawTextColor(dst.Width()-len(label)-2, 0, label, core.ColorCyan)

	switch {
	case r.playback.Done():
		title := "REPLAY ENDED"
		if v.Phase != engine.PhaseEnded || v.Score != r.rec.Score {
			title = "REPLAY DIVERGED"
		}
		DrawMessage(dst, title, fmtScoreLine(v.Score, "SPACE: again  B: back"))
	case r.paused:
		DrawMessage(dst, "PAUSED", "Press P to resume")
	}
}

// State returns the platform-facing state.
func (r *ReplayGame) State() core.GameState {
	v := r.playback.View()
	return core.GameState{
		Score:    v.Score,
		Idle:     v.Phase == engine.PhaseIdle,
		GameOver: r.playback.Done(),
		Paused:   r.paused,
	}
}
