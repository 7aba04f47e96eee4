package replay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/engine"
)

// recordRun plays a run that flaps every `every` ticks and records it.
func recordRun(t *testing.T, seed int64, every int) Recording {
	t.Helper()
	params := engine.DefaultParams()
	src := NewSeededSource(seed)
	e, err := engine.New(params, engine.WithSource(src))
	require.NoError(t, err)

	var rec Recorder
	v := e.View()
	for i := 0; i < 10000 && v.Phase != engine.PhaseEnded; i++ {
		if i%every == 0 {
			if v.Phase == engine.PhaseIdle {
				rec.Begin(src.Seed(), params)
			}
			v = e.Activate()
			rec.Activate(v.Tick)
		}
		v = e.Tick()
	}
	require.Equal(t, engine.PhaseEnded, v.Phase)

	out, ok := rec.Finish(v)
	require.True(t, ok)
	return out
}

func TestVerifyReproducesRun(t *testing.T) {
	for _, every := range []int{14, 17, 20} {
		rec := recordRun(t, 1234, every)
		require.NotEmpty(t, rec.Activations)
		assert.Equal(t, uint64(0), rec.Activations[0])

		v, err := Verify(rec)
		require.NoError(t, err, "every=%d", every)
		assert.Equal(t, rec.Score, v.Score)
		assert.Equal(t, rec.Ticks, v.Tick)
	}
}

func TestVerifyDetectsTampering(t *testing.T) {
	rec := recordRun(t, 5, 17)
	rec.Score++

	_, err := Verify(rec)
	assert.ErrorIs(t, err, ErrDiverged)
}

func TestVerifyNeverStarted(t *testing.T) {
	rec := Recording{Seed: 1, Params: engine.DefaultParams()}

	v, err := Verify(rec)
	assert.ErrorIs(t, err, ErrDiverged)
	assert.Equal(t, engine.PhaseIdle, v.Phase)
}

func TestPlaybackRejectsInvalidParams(t *testing.T) {
	p := engine.DefaultParams()
	p.GapHeight = 1000

	_, err := NewPlayback(Recording{Params: p})
	assert.ErrorIs(t, err, engine.ErrInvalidParams)
}

func TestPlaybackStopsAtEnd(t *testing.T) {
	rec := recordRun(t, 77, 15)
	p, err := NewPlayback(rec)
	require.NoError(t, err)

	for !p.Done() {
		p.Step()
	}
	end := p.View()
	assert.Equal(t, end, p.Step(), "stepping an ended playback must not change it")
}

func TestPlaybackRestartReplaysSameRun(t *testing.T) {
	rec := recordRun(t, 31, 18)
	p, err := NewPlayback(rec)
	require.NoError(t, err)

	first := p.Step()
	for !p.Done() {
		p.Step()
	}
	end := p.View()

	start := p.Restart()
	assert.Equal(t, engine.PhaseIdle, start.Phase)
	assert.Equal(t, uint64(0), start.Tick)
	assert.False(t, p.Done())

	assert.Equal(t, first, p.Step())
	for !p.Done() {
		p.Step()
	}
	assert.Equal(t, end, p.View())
	assert.Equal(t, rec.Score, p.View().Score)
}

func TestRecorderIgnoresActivationsWhenIdle(t *testing.T) {
	var r Recorder
	r.Activate(3)
	_, ok := r.Finish(engine.View{})
	assert.False(t, ok)

	r.Begin(9, engine.DefaultParams())
	r.Activate(0)
	r.Abort()
	assert.False(t, r.Active())
}

func TestSeededSourceReseed(t *testing.T) {
	a := NewSeededSource(42)
	first := []float64{a.Float64(), a.Float64(), a.Float64()}

	a.Reseed(42)
	again := []float64{a.Float64(), a.Float64(), a.Float64()}
	assert.Equal(t, first, again)
	assert.Equal(t, int64(42), a.Seed())

	a.Reseed(43)
	assert.Equal(t, int64(43), a.Seed())
	assert.NotEqual(t, first[0], a.Float64())
}

func TestRecordingDuration(t *testing.T) {
	rec := Recording{Ticks: 120}
	assert.Equal(t, 2*time.Second, rec.Duration(60))
	assert.Equal(t, 2*time.Second, rec.Duration(0))
}
