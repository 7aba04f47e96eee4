package flappy

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/engine"
)

func TestDrawScalesGatesAndFlyer(t *testing.T) {
	p := engine.DefaultParams()
	screen := core.NewScreen(80, 24)

	v := engine.View{
		Phase:  engine.PhaseActive,
		FlyerY: 300,
		Score:  3,
		Gates: []engine.Gate{
			{X: 300, TopHeight: 100, BottomHeight: 380},
		},
	}
	Draw(screen, p, v)

	// 80 columns over 400 units, 23 field rows over 600 units
	tests := []struct {
		name     string
		x, y     int
		expected rune
	}{
		{"top gate body", 65, 1, GateChar},
		{"top gate cap", 65, 2, GateCapTop},
		{"gap", 65, 5, ' '},
		{"bottom gate cap", 65, 8, GateCapBottom},
		{"bottom gate body", 65, 15, GateChar},
		{"ground", 65, 23, GroundChar},
		{"flyer body", 43, 11, BodyChar},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := screen.GetCell(tc.x, tc.y).Rune; got != tc.expected {
				t.Errorf("cell (%d, %d) = %q, expected %q", tc.x, tc.y, got, tc.expected)
			}
		})
	}

	if !strings.Contains(screen.Row(0), "Score: 3") {
		t.Errorf("HUD missing, row 0 = %q", screen.Row(0))
	}
}

func TestDrawPassedGateIsGray(t *testing.T) {
	screen := core.NewScreen(80, 24)
	Draw(screen, engine.DefaultParams(), engine.View{
		Phase:  engine.PhaseActive,
		FlyerY: 300,
		Gates:  []engine.Gate{{X: 0, TopHeight: 100, BottomHeight: 380, Passed: true}},
	})

	if c := screen.GetCell(5, 15); c.Rune != GateChar || c.Color != core.ColorGray {
		t.Errorf("passed gate cell = %+v, expected gray gate", c)
	}
}

func TestDrawClipsGatesOffScreen(t *testing.T) {
	screen := core.NewScreen(40, 12)

	// Must not panic for gates partly outside the viewport
	Draw(screen, engine.DefaultParams(), engine.View{
		Phase:  engine.PhaseActive,
		FlyerY: 0,
		Gates: []engine.Gate{
			{X: -40, TopHeight: 60, BottomHeight: 420},
			{X: 390, TopHeight: 420, BottomHeight: 60},
		},
	})
}

func TestFlyerGlyph(t *testing.T) {
	tests := []struct {
		name     string
		view     engine.View
		expected rune
	}{
		{"rising", engine.View{Phase: engine.PhaseActive, FlyerVelocity: -8}, '▲'},
		{"level", engine.View{Phase: engine.PhaseActive, FlyerVelocity: 0.5}, '▶'},
		{"falling", engine.View{Phase: engine.PhaseActive, FlyerVelocity: 4}, '▼'},
		{"crashed", engine.View{Phase: engine.PhaseEnded, FlyerVelocity: 4}, CrashChar},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := flyerGlyph(tc.view); got != tc.expected {
				t.Errorf("flyerGlyph() = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestDrawMessage(t *testing.T) {
	screen := core.NewScreen(40, 11)
	DrawMessage(screen, "PAUSED", "Press P")

	if !strings.Contains(screen.Row(4), "PAUSED") {
		t.Errorf("title row = %q", screen.Row(4))
	}
	if !strings.Contains(screen.Row(6), "Press P") {
		t.Errorf("subtitle row = %q", screen.Row(6))
	}

	// The widest line keeps one blank column inside each border.
	if c := screen.GetCell(16, 6); c.Rune != 'P' {
		t.Errorf("subtitle should start at column 16, got %q", c.Rune)
	}
	if c := screen.GetCell(17, 4); c.Rune != 'P' || c.Color != core.ColorBrightYellow {
		t.Errorf("title cell = %+v, expected yellow 'P' at column 17", c)
	}
}
