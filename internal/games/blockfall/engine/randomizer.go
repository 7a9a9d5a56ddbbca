package engine

import "math/rand"

// DefaultPreviewLength is the number of upcoming shapes kept in the queue.
const DefaultPreviewLength = 4

// Randomizer supplies upcoming shapes. Each fresh draw differs from the shape
// queued directly before it; nothing stronger is guaranteed (this is not a
// 7-bag).
type Randomizer struct {
	rng   *rand.Rand
	queue []Shape
}

// NewRandomizer fills a queue of length n from rng. Lengths below 2 are
// raised to 2.
func NewRandomizer(rng *rand.Rand, n int) *Randomizer {
	if n < 2 {
		n = 2
	}
	r := &Randomizer{
		rng:   rng,
		queue: make([]Shape, 0, n),
	}
	r.queue = append(r.queue, ShapeFromIndex(rng.Intn(ShapeCount)))
	for len(r.queue) < n {
		r.queue = append(r.queue, r.drawAfter(r.queue[len(r.queue)-1]))
	}
	return r
}

// drawAfter draws a shape different from prev.
func (r *Randomizer) drawAfter(prev Shape) Shape {
	n := r.rng.Intn(ShapeCount - 1)
	if n >= int(prev) {
		n++
	}
	return ShapeFromIndex(n)
}

// Advance returns the head of the queue, shifts the queue left and appends
// one fresh draw.
func (r *Randomizer) Advance() Shape {
	head := r.queue[0]
	last := len(r.queue) - 1
	copy(r.queue, r.queue[1:])
	r.queue[last] = r.drawAfter(r.queue[last-1])
	return head
}

// Peek returns the shape the next Advance will return.
func (r *Randomizer) Peek() Shape {
	return r.queue[0]
}

// Preview returns a copy of the queued shapes, next first.
func (r *Randomizer) Preview() []Shape {
	out := make([]Shape, len(r.queue))
	copy(out, r.queue)
	return out
}
