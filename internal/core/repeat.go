package core

import "time"

// RepeatConfig controls key repeat for held actions.
type RepeatConfig struct {
	Delay      time.Duration // hold time before the first repeat
	Interval   time.Duration // time between repeats once repeating
	ReleaseGap time.Duration // silence after which a hold is considered released
}

// DefaultRepeatConfig returns a 300ms delay and a 70ms repeat interval.
func DefaultRepeatConfig() RepeatConfig {
	return RepeatConfig{
		Delay:      300 * time.Millisecond,
		Interval:   70 * time.Millisecond,
		ReleaseGap: 100 * time.Millisecond,
	}
}

type hold struct {
	start    time.Time
	last     time.Time
	lastFire time.Time
}

// Repeater turns raw key presses into debounced actions. The first press of
// an action always fires. Further presses of a held repeatable action fire
// only once the delay has passed, and then at most once per interval.
//
// Terminals never report key release, so a hold ends when no press for the
// action arrives within ReleaseGap.
type Repeater struct {
	cfg   RepeatConfig
	holds map[Action]*hold
}

// NewRepeater creates a repeater with the given timing.
func NewRepeater(cfg RepeatConfig) *Repeater {
	return &Repeater{
		cfg:   cfg,
		holds: make(map[Action]*hold),
	}
}

// Press records a press of a at now and reports whether it should fire.
// Actions that do not repeat always fire.
func (r *Repeater) Press(a Action, now time.Time) bool {
	if a == ActionNone {
		return false
	}
	if !a.Repeatable() {
		return true
	}

	h, ok := r.holds[a]
	if !ok || now.Sub(h.last) > r.cfg.ReleaseGap {
		r.holds[a] = &hold{start: now, last: now, lastFire: now}
		return true
	}

	h.last = now
	if now.Sub(h.start) < r.cfg.Delay {
		return false
	}
	if now.Sub(h.lastFire) < r.cfg.Interval && h.lastFire.After(h.start) {
		return false
	}
	h.lastFire = now
	return true
}

// Reset forgets every held action.
func (r *Repeater) Reset() {
	clear(r.holds)
}
