package engine

// GravityOutcome describes what a gravity attempt did.
type GravityOutcome int

const (
	GravityIdle      GravityOutcome = iota // timer not due, or nothing falling
	GravityDescended                       // the piece moved one row down
	GravityLocked                          // the piece could not move and was locked
)

// String returns a human-readable name for the outcome.
func (o GravityOutcome) String() string {
	switch o {
	case GravityIdle:
		return "idle"
	case GravityDescended:
		return "descended"
	case GravityLocked:
		return "locked"
	default:
		return "unknown"
	}
}

// ApplyGravity moves the falling piece one row down once the gravity timer is
// due. A piece that cannot descend is locked and the respawn timer is armed.
func (s *State) ApplyGravity() GravityOutcome {
	if !s.gravity.ShouldFire() {
		return GravityIdle
	}
	s.gravity.Reset()

	if !s.field.HasPiece() {
		return GravityIdle
	}
	if s.field.canDescend() {
		s.field.shiftPiece(0, -Unit)
		return GravityDescended
	}
	s.lock()
	return GravityLocked
}

// Descend moves the falling piece one row down if nothing is beneath it.
// It never locks; locking is left to gravity.
func (s *State) Descend() bool {
	if !s.field.canDescend() {
		return false
	}
	s.field.shiftPiece(0, -Unit)
	return true
}

// HardDrop moves the falling piece down until it is blocked, then locks it.
// It returns the number of rows travelled, or -1 if nothing is falling.
func (s *State) HardDrop() int {
	if !s.field.HasPiece() {
		return -1
	}
	rows := 0
	for s.field.canDescend() {
		s.field.shiftPiece(0, -Unit)
		rows++
	}
	s.stats.Dropped += rows
	s.lock()
	return rows
}

// lock settles the falling piece and arms the respawn timer.
func (s *State) lock() {
	s.field.lockPiece()
	s.spawn.Activate()
	s.stats.Locked++
}
