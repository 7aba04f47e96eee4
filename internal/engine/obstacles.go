package engine

// Source supplies uniformly distributed values in [0, 1).
// *math/rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// advanceGates scrolls, recycles and spawns gates in next.
func advanceGates(p Params, src Source, next *snapshot) {
	q := &next.gates

	for i := 0; i < q.len(); i++ {
		q.at(i).X -= p.ScrollSpeed
	}

	// Gates move in lockstep and spawn at the right edge, so the ones that
	// left the viewport are always at the front.
	for q.len() > 0 && q.front().X <= -p.GateWidth {
		q.popFront()
	}

	if q.len() == 0 || q.back().X < p.ViewportWidth-p.SpawnOffset {
		q.pushBack(newGate(p, src))
	}
}

// newGate creates a gate at the right edge with a random vertical split.
// Both obstructions are at least MinSegment tall.
func newGate(p Params, src Source) Gate {
	top := p.MinSegment + src.Float64()*p.spawnRange()
	return Gate{
		X:            p.ViewportWidth,
		TopHeight:    top,
		BottomHeight: p.ViewportHeight - top - p.GapHeight,
	}
}
