// Package config provides YAML-based configuration loading for the flappy
// engine.
package config

import "github.com/vovakirdan/tui-flappy/internal/engine"

// FlappyConfig contains all tunable constants of a run.
type FlappyConfig struct {
	Viewport ViewportConfig `yaml:"viewport"`
	Flyer    FlyerConfig    `yaml:"flyer"`
	Gates    GatesConfig    `yaml:"gates"`
	Physics  PhysicsConfig  `yaml:"physics"`
}

// ViewportConfig defines the simulated playfield.
type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FlyerConfig defines the player entity.
type FlyerConfig struct {
	Size     float64 `yaml:"size"`
	HitInset float64 `yaml:"hit_inset"` // Hit-box shrink on every side
}

// GatesConfig defines obstacle geometry and spawn cadence.
type GatesConfig struct {
	Width       float64 `yaml:"width"`
	Gap         float64 `yaml:"gap"`
	SpawnOffset float64 `yaml:"spawn_offset"` // Distance from the right edge that triggers a spawn
	MinSegment  float64 `yaml:"min_segment"`
	Margin      float64 `yaml:"margin"` // Collision forgiveness on gate edges
}

// PhysicsConfig defines per-tick motion.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
	ScrollSpeed float64 `yaml:"scroll_speed"`
}

// Params converts the configuration into engine params.
// Validation is left to engine.New.
func (c FlappyConfig) Params() engine.Params {
	return engine.Params{
		ViewportWidth:  c.Viewport.Width,
		ViewportHeight: c.Viewport.Height,
		FlyerSize:      c.Flyer.Size,
		GateWidth:      c.Gates.Width,
		GapHeight:      c.Gates.Gap,
		Gravity:        c.Physics.Gravity,
		JumpImpulse:    c.Physics.JumpImpulse,
		ScrollSpeed:    c.Physics.ScrollSpeed,
		SpawnOffset:    c.Gates.SpawnOffset,
		MinSegment:     c.Gates.MinSegment,
		HitInset:       c.Flyer.HitInset,
		GateMargin:     c.Gates.Margin,
	}
}

// FromParams is the inverse of Params.
func FromParams(p engine.Params) FlappyConfig {
	return FlappyConfig{
		Viewport: ViewportConfig{Width: p.ViewportWidth, Height: p.ViewportHeight},
		Flyer:    FlyerConfig{Size: p.FlyerSize, HitInset: p.HitInset},
		Gates: GatesConfig{
			Width:       p.GateWidth,
			Gap:         p.GapHeight,
			SpawnOffset: p.SpawnOffset,
			MinSegment:  p.MinSegment,
			Margin:      p.GateMargin,
		},
		Physics: PhysicsConfig{
			Gravity:     p.Gravity,
			JumpImpulse: p.JumpImpulse,
			ScrollSpeed: p.ScrollSpeed,
		},
	}
}
