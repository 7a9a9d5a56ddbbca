package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGravityTimer(t *testing.T) {
	g := NewGravityTimer(500 * time.Millisecond)
	assert.False(t, g.ShouldFire())

	g.AddTime(500 * time.Millisecond)
	assert.False(t, g.ShouldFire(), "threshold must be exceeded, not reached")

	g.AddTime(time.Nanosecond)
	assert.True(t, g.ShouldFire())

	g.Reset()
	assert.False(t, g.ShouldFire())
	assert.Equal(t, time.Duration(0), g.Elapsed())

	g.SetThreshold(100 * time.Millisecond)
	g.AddTime(150 * time.Millisecond)
	assert.True(t, g.ShouldFire())
	assert.Equal(t, 100*time.Millisecond, g.Threshold())
}

func TestSpawnTimerStartsArmed(t *testing.T) {
	s := NewSpawnTimer(time.Second)
	assert.True(t, s.Active())
	assert.True(t, s.ShouldSpawn())
}

func TestSpawnTimerIgnoresTimeWhileInactive(t *testing.T) {
	s := NewSpawnTimer(time.Second)
	s.Reset()
	assert.False(t, s.Active())

	s.AddTime(10 * time.Second)
	assert.Equal(t, time.Duration(0), s.Elapsed())
	assert.False(t, s.ShouldSpawn())

	s.Activate()
	s.AddTime(time.Second)
	assert.False(t, s.ShouldSpawn())
	s.AddTime(time.Millisecond)
	assert.True(t, s.ShouldSpawn())

	s.Reset()
	assert.False(t, s.ShouldSpawn())
}
