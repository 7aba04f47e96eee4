package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ErrInvalidParams is wrapped by every ParamError.
var ErrInvalidParams = errors.New("engine: invalid params")

// ParamError describes a single rejected configuration value.
type ParamError struct {
	Field   string
	Message string
}

func (e ParamError) Error() string {
	return fmt.Sprintf("engine: invalid %s: %s", e.Field, e.Message)
}

// Unwrap lets callers match any ParamError with errors.Is(err, ErrInvalidParams).
func (e ParamError) Unwrap() error {
	return ErrInvalidParams
}

// Params holds the constants of one run. All lengths are in viewport units,
// velocities and accelerations are per tick. Positive Y points down.
type Params struct {
	ViewportWidth  float64
	ViewportHeight float64
	FlyerSize      float64 // Side of the square flyer sprite
	GateWidth      float64
	GapHeight      float64 // Vertical opening shared by every gate
	Gravity        float64 // Added to the flyer velocity each tick
	JumpImpulse    float64 // Velocity set on activation, negative = up
	ScrollSpeed    float64 // Leftward gate movement per tick
	SpawnOffset    float64 // Distance from the right edge that triggers the next spawn
	MinSegment     float64 // Smallest top or bottom obstruction
	HitInset       float64 // Flyer hit-box inset on every side
	GateMargin     float64 // Forgiveness applied to gate edges
}

// DefaultParams returns the classic 400x600 layout.
func DefaultParams() Params {
	return Params{
		ViewportWidth:  400,
		ViewportHeight: 600,
		FlyerSize:      40,
		GateWidth:      50,
		GapHeight:      120,
		Gravity:        0.5,
		JumpImpulse:    -8,
		ScrollSpeed:    2,
		SpawnOffset:    180,
		MinSegment:     60,
		HitInset:       6,
		GateMargin:     5,
	}
}

// FlyerX returns the fixed horizontal center of the flyer.
func (p Params) FlyerX() float64 {
	return p.ViewportWidth / 2
}

// StartY returns the flyer's rest position in the Idle phase.
func (p Params) StartY() float64 {
	return p.ViewportHeight / 2
}

// MaxFlyerY is the largest valid flyer position.
func (p Params) MaxFlyerY() float64 {
	return p.ViewportHeight - p.FlyerSize
}

// FlyerBox returns the flyer's sprite bounds at vertical position y.
func (p Params) FlyerBox(y float64) core.Box {
	return core.NewBox(p.FlyerX()-p.FlyerSize/2, y, p.FlyerSize, p.FlyerSize)
}

// HitBox returns the flyer's collision bounds at vertical position y.
func (p Params) HitBox(y float64) core.Box {
	return p.FlyerBox(y).Inset(p.HitInset)
}

// spawnRange returns the span available for a random top height.
func (p Params) spawnRange() float64 {
	return p.ViewportHeight - p.GapHeight - 2*p.MinSegment
}

// fields lists every value with the name used in ParamError.
func (p Params) fields() []struct {
	name string
	v    float64
} {
	return []struct {
		name string
		v    float64
	}{
		{"viewport width", p.ViewportWidth},
		{"viewport height", p.ViewportHeight},
		{"flyer size", p.FlyerSize},
		{"gate width", p.GateWidth},
		{"gap height", p.GapHeight},
		{"gravity", p.Gravity},
		{"jump impulse", p.JumpImpulse},
		{"scroll speed", p.ScrollSpeed},
		{"spawn offset", p.SpawnOffset},
		{"min segment", p.MinSegment},
		{"hit inset", p.HitInset},
		{"gate margin", p.GateMargin},
	}
}

// Validate checks that the params describe a playable run.
func (p Params) Validate() error {
	// NaN fails every comparison below, so reject non-finite values first.
	for _, f := range p.fields() {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return ParamError{f.name, fmt.Sprintf("%g must be finite", f.v)}
		}
	}

	switch {
	case p.ViewportWidth <= 0:
		return ParamError{"viewport width", fmt.Sprintf("%g must be positive", p.ViewportWidth)}
	case p.ViewportHeight <= 0:
		return ParamError{"viewport height", fmt.Sprintf("%g must be positive", p.ViewportHeight)}
	case p.FlyerSize <= 0:
		return ParamError{"flyer size", fmt.Sprintf("%g must be positive", p.FlyerSize)}
	case p.FlyerSize >= p.ViewportHeight:
		return ParamError{"flyer size", fmt.Sprintf("%g does not fit viewport height %g", p.FlyerSize, p.ViewportHeight)}
	case p.GateWidth <= 0:
		return ParamError{"gate width", fmt.Sprintf("%g must be positive", p.GateWidth)}
	case p.GapHeight <= 0:
		return ParamError{"gap height", fmt.Sprintf("%g must be positive", p.GapHeight)}
	case p.MinSegment < 0:
		return ParamError{"min segment", fmt.Sprintf("%g must not be negative", p.MinSegment)}
	case p.spawnRange() < 0:
		return ParamError{"gap height", fmt.Sprintf("%g plus two %g segments exceeds viewport height %g",
			p.GapHeight, p.MinSegment, p.ViewportHeight)}
	case p.Gravity < 0:
		return ParamError{"gravity", fmt.Sprintf("%g must not be negative", p.Gravity)}
	case p.JumpImpulse >= 0:
		return ParamError{"jump impulse", fmt.Sprintf("%g must point up (negative)", p.JumpImpulse)}
	case p.ScrollSpeed <= 0:
		return ParamError{"scroll speed", fmt.Sprintf("%g must be positive", p.ScrollSpeed)}
	case p.SpawnOffset <= 0:
		return ParamError{"spawn offset", fmt.Sprintf("%g must be positive", p.SpawnOffset)}
	case p.HitInset < 0 || 2*p.HitInset >= p.FlyerSize:
		return ParamError{"hit inset", fmt.Sprintf("%g must be in [0, %g)", p.HitInset, p.FlyerSize/2)}
	case p.GateMargin < 0 || 2*p.GateMargin >= p.GateWidth:
		return ParamError{"gate margin", fmt.Sprintf("%g must be in [0, %g)", p.GateMargin, p.GateWidth/2)}
	}
	return nil
}
