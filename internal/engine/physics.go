package engine

// integrate advances the flyer from prev into next.
// The bound check uses the proposed position; a rejected proposal leaves the
// flyer where it was and ends the run. Gravity is applied after the move, so
// it only affects the following tick.
func integrate(p Params, prev, next *snapshot) bool {
	proposed := prev.flyerY + prev.flyerVel
	if proposed < 0 || proposed > p.MaxFlyerY() {
		next.phase = PhaseEnded
		return false
	}

	next.flyerY = proposed
	next.flyerVel = prev.flyerVel + p.Gravity
	return true
}
