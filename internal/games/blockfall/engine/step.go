package engine

import "time"

// Event is a discrete player request applied after the physics of a frame.
type Event int

const (
	EventLeft Event = iota
	EventRight
	EventRotateClockwise
	EventRotateCounterClockwise
	EventDescend
	EventDrop
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventLeft:
		return "left"
	case EventRight:
		return "right"
	case EventRotateClockwise:
		return "rotate-cw"
	case EventRotateCounterClockwise:
		return "rotate-ccw"
	case EventDescend:
		return "descend"
	case EventDrop:
		return "drop"
	default:
		return "unknown"
	}
}

// Report summarizes one frame.
type Report struct {
	Gravity GravityOutcome
	Spawned bool
	Applied int // events that changed the falling piece
	Locked  bool
}

// Step advances the game by one frame of duration dt and then applies events
// in order. Systems run in a fixed order: timers, gravity and lock, spawn,
// then player events.
//
// Once the game has topped out Step leaves the state untouched and keeps
// returning ErrTopOut.
func (s *State) Step(dt time.Duration, events []Event) (Report, error) {
	var r Report
	if s.toppedOut {
		return r, ErrTopOut
	}
	s.stats.Frames++

	s.AdvanceTimers(dt)

	r.Gravity = s.ApplyGravity()
	r.Locked = r.Gravity == GravityLocked

	spawned, err := s.SpawnIfDue()
	if err != nil {
		return r, err
	}
	r.Spawned = spawned

	for _, ev := range events {
		locked, ok := s.HandleEvent(ev)
		if ok {
			r.Applied++
		}
		if locked {
			r.Locked = true
		}
	}
	return r, nil
}

// HandleEvent applies a single event to the falling piece. It reports whether
// the event changed anything and whether it locked the piece.
func (s *State) HandleEvent(ev Event) (locked, ok bool) {
	switch ev {
	case EventLeft, EventRight:
		return false, s.Translate(ev)
	case EventRotateClockwise, EventRotateCounterClockwise:
		return false, s.Rotate(ev)
	case EventDescend:
		return false, s.Descend()
	case EventDrop:
		if s.HardDrop() < 0 {
			return false, false
		}
		return true, true
	default:
		return false, false
	}
}
