package engine

// Phase is the lifecycle stage of a run.
type Phase int

const (
	PhaseIdle   Phase = iota // Waiting for the first activation
	PhaseActive              // Physics and collisions run every tick
	PhaseEnded               // Frozen on the losing frame
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseActive:
		return "active"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Gate is a top/bottom obstacle pair with a fixed gap between them.
// TopHeight + GapHeight + BottomHeight always equals the viewport height.
type Gate struct {
	X            float64 // Left edge
	TopHeight    float64
	BottomHeight float64
	Passed       bool // Set once the gate's trailing edge is behind the flyer
}

// View is a read-only copy of the simulation state handed to renderers.
type View struct {
	Phase         Phase
	FlyerY        float64
	FlyerVelocity float64 // For tilt display only
	Score         int
	Gates         []Gate // Oldest (leftmost) first
	Tick          uint64 // Ticks advanced in the current run
}

// snapshot is the mutable state owned by the engine.
type snapshot struct {
	phase    Phase
	flyerY   float64
	flyerVel float64
	score    int
	gates    gateQueue
	tick     uint64
}

// reset puts the snapshot back into the initial Idle state.
func (s *snapshot) reset(p Params) {
	s.phase = PhaseIdle
	s.flyerY = p.StartY()
	s.flyerVel = 0
	s.score = 0
	s.gates.clear()
	s.tick = 0
}

// copyFrom overwrites s with o, reusing s's gate storage.
func (s *snapshot) copyFrom(o *snapshot) {
	s.phase = o.phase
	s.flyerY = o.flyerY
	s.flyerVel = o.flyerVel
	s.score = o.score
	s.tick = o.tick
	s.gates.copyFrom(&o.gates)
}

func (s *snapshot) view() View {
	return View{
		Phase:         s.phase,
		FlyerY:        s.flyerY,
		FlyerVelocity: s.flyerVel,
		Score:         s.score,
		Gates:         s.gates.appendTo(make([]Gate, 0, s.gates.len())),
		Tick:          s.tick,
	}
}
