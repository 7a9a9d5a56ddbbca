package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomizerNoAdjacentRepeats(t *testing.T) {
	r := NewRandomizer(rand.New(rand.NewSource(42)), DefaultPreviewLength)

	prev := r.Advance()
	counts := map[Shape]int{prev: 1}
	for i := 0; i < 5000; i++ {
		next := r.Advance()
		require.NotEqual(t, prev, next, "draw %d repeated %s", i, next)
		require.True(t, next.Valid())
		counts[next]++
		prev = next
	}
	assert.Len(t, counts, ShapeCount, "every shape should eventually appear")
}

func TestRandomizerQueue(t *testing.T) {
	r := NewRandomizer(rand.New(rand.NewSource(7)), DefaultPreviewLength)

	preview := r.Preview()
	require.Len(t, preview, DefaultPreviewLength)
	for i := 1; i < len(preview); i++ {
		assert.NotEqual(t, preview[i-1], preview[i])
	}

	assert.Equal(t, preview[0], r.Peek())
	assert.Equal(t, preview[0], r.Advance())

	after := r.Preview()
	assert.Equal(t, preview[1:], after[:len(after)-1], "queue shifts left by one")
}

func TestRandomizerMinimumLength(t *testing.T) {
	r := NewRandomizer(rand.New(rand.NewSource(1)), 0)
	assert.Len(t, r.Preview(), 2)
}

func TestRandomizerDeterministic(t *testing.T) {
	a := NewRandomizer(rand.New(rand.NewSource(99)), 4)
	b := NewRandomizer(rand.New(rand.NewSource(99)), 4)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Advance(), b.Advance())
	}
}

func TestRandomizerPreviewIsCopy(t *testing.T) {
	r := NewRandomizer(rand.New(rand.NewSource(3)), 4)
	p := r.Preview()
	p[0] = Shape(99)
	assert.True(t, r.Peek().Valid())
}
