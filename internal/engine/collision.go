package engine

// evaluate scores passed gates and detects gate collisions in next.
// Every gate is pass-checked even after a hit; increments made during the
// tick are kept.
func evaluate(p Params, next *snapshot) {
	hit := p.HitBox(next.flyerY)
	flyerX := p.FlyerX()
	collided := false

	for i := 0; i < next.gates.len(); i++ {
		g := next.gates.at(i)

		if !g.Passed && g.X+p.GateWidth < flyerX {
			g.Passed = true
			next.score++
		}

		if collided || !hit.OverlapsX(g.X+p.GateMargin, g.X+p.GateWidth-p.GateMargin) {
			continue
		}
		if hit.Top() < g.TopHeight-p.GateMargin ||
			hit.Bottom() > p.ViewportHeight-g.BottomHeight+p.GateMargin {
			collided = true
		}
	}

	if collided {
		next.phase = PhaseEnded
	}
}
