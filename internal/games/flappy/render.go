package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/engine"
)

// Visual characters for rendering
const (
	GateChar      = '█'
	GateCapTop    = '▄'
	GateCapBottom = '▀'
	GroundChar    = '═'
	BodyChar      = '●'
	CrashChar     = '✕'
)

// cellScale maps viewport coordinates onto screen cells.
// The bottom row of the screen is reserved for the ground.
type cellScale struct {
	sx, sy float64
	fieldH int
}

func newCellScale(dst *core.Screen, p engine.Params) cellScale {
	fieldH := core.Max(dst.Height()-1, 1)
	return cellScale{
		sx:     float64(dst.Width()) / p.ViewportWidth,
		sy:     float64(fieldH) / p.ViewportHeight,
		fieldH: fieldH,
	}
}

func (s cellScale) col(x float64) int {
	return int(math.Floor(x * s.sx))
}

func (s cellScale) row(y float64) int {
	return int(math.Floor(y * s.sy))
}

// Draw renders a view scaled to fit dst: gates, flyer, ground and score.
func Draw(dst *core.Screen, p engine.Params, v engine.View) {
	s := newCellScale(dst, p)

	dst.DrawHLine(0, s.fieldH, dst.Width(), GroundChar, core.ColorGray)

	for _, gate := range v.Gates {
		drawGate(dst, s, p, gate)
	}

	drawFlyer(dst, s, p, v)

	dst.DrawTextColor(2, 0, fmt.Sprintf(" Score: %d ", v.Score), core.ColorWhite)
}

func drawGate(dst *core.Screen, s cellScale, p engine.Params, g engine.Gate) {
	x0 := s.col(g.X)
	w := core.Max(s.col(g.X+p.GateWidth)-x0, 1)

	color := core.ColorGreen
	if g.Passed {
		color = core.ColorGray
	}

	topRows := s.row(g.TopHeight)
	if topRows > 0 {
		dst.DrawRect(core.NewRect(x0, 0, w, topRows), GateChar, color)
		dst.DrawHLine(x0, topRows-1, w, GateCapTop, core.ColorBrightGreen)
	}

	bottomY := s.row(p.ViewportHeight - g.BottomHeight)
	if bottomY < s.fieldH {
		dst.DrawRect(core.NewRect(x0, bottomY, w, s.fieldH-bottomY), GateChar, color)
		dst.DrawHLine(x0, bottomY, w, GateCapBottom, core.ColorBrightGreen)
	}
}

func drawFlyer(dst *core.Screen, s cellScale, p engine.Params, v engine.View) {
	x0 := s.col(p.FlyerX())
	y0 := s.row(v.FlyerY)
	w := core.Max(s.col(p.FlyerX()+p.FlyerSize)-x0, 1)
	h := core.Max(s.row(v.FlyerY+p.FlyerSize)-y0, 1)

	color := core.ColorOrange
	if v.Phase == engine.PhaseEnded {
		color = core.ColorRed
	}
	dst.DrawRect(core.NewRect(x0, y0, w, h), BodyChar, color)
	dst.SetColor(x0+w-1, y0+h/2, flyerGlyph(v), core.ColorBrightYellow)
}

// flyerGlyph picks the nose glyph from the vertical velocity.
func flyerGlyph(v engine.View) rune {
	switch {
	case v.Phase == engine.PhaseEnded:
		return CrashChar
	case v.FlyerVelocity < -1:
		return '▲'
	case v.FlyerVelocity > 1:
		return '▼'
	default:
		return '▶'
	}
}

// DrawMessage draws a message box in the center of the screen.
func DrawMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextCentered(boxY+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorDefault)
}

func fmtScoreLine(score int, hint string) string {
	return fmt.Sprintf("Score: %d  |  %s", score, hint)
}
