package engine

import "time"

// GravityTimer accumulates time since gravity last acted.
type GravityTimer struct {
	elapsed   time.Duration
	threshold time.Duration
}

// NewGravityTimer creates a gravity timer that fires after threshold.
func NewGravityTimer(threshold time.Duration) GravityTimer {
	return GravityTimer{threshold: threshold}
}

// AddTime accumulates elapsed frame time.
func (t *GravityTimer) AddTime(d time.Duration) {
	t.elapsed += d
}

// ShouldFire reports whether the accumulated time exceeds the threshold.
func (t *GravityTimer) ShouldFire() bool {
	return t.elapsed > t.threshold
}

// Reset clears the accumulated time.
func (t *GravityTimer) Reset() {
	t.elapsed = 0
}

// SetThreshold changes the interval between gravity steps.
func (t *GravityTimer) SetThreshold(d time.Duration) {
	t.threshold = d
}

// Threshold returns the interval between gravity steps.
func (t *GravityTimer) Threshold() time.Duration {
	return t.threshold
}

// Elapsed returns the time accumulated since the last reset.
func (t *GravityTimer) Elapsed() time.Duration {
	return t.elapsed
}

// SpawnTimer gates the next spawn. It is armed by a lock and consumed by the
// spawn controller; while disarmed it ignores elapsed time.
type SpawnTimer struct {
	elapsed   time.Duration
	threshold time.Duration
	active    bool
}

// NewSpawnTimer creates a spawn timer that is already armed and past its
// threshold, so the first piece appears on the first frame.
func NewSpawnTimer(threshold time.Duration) SpawnTimer {
	return SpawnTimer{
		elapsed:   threshold + time.Nanosecond,
		threshold: threshold,
		active:    true,
	}
}

// AddTime accumulates elapsed frame time while the timer is armed.
func (t *SpawnTimer) AddTime(d time.Duration) {
	if t.active {
		t.elapsed += d
	}
}

// ShouldSpawn reports whether the timer is armed and past its threshold.
func (t *SpawnTimer) ShouldSpawn() bool {
	return t.active && t.elapsed > t.threshold
}

// Activate arms the timer.
func (t *SpawnTimer) Activate() {
	t.active = true
}

// Reset clears the accumulated time and disarms the timer.
func (t *SpawnTimer) Reset() {
	t.elapsed = 0
	t.active = false
}

// Active reports whether the timer is armed.
func (t *SpawnTimer) Active() bool {
	return t.active
}

// Elapsed returns the time accumulated since the timer was armed.
func (t *SpawnTimer) Elapsed() time.Duration {
	return t.elapsed
}
