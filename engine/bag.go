package engine

import (
	"math/rand/v2"
	"slices"
)

// Bag is a 7-bag randomizer: every run of seven draws starting at a refill
// holds each shape exactly once.
type Bag struct {
	rng   *rand.Rand
	order [NumShapes]Shape
	index int
}

// NewBag returns a bag seeded with the given PCG seed. Equal seeds yield equal
// sequences.
func NewBag(seed1, seed2 uint64) *Bag {
	b := &Bag{rng: rand.New(rand.NewPCG(seed1, seed2))}
	b.Refill()
	return b
}

// Refill replaces the bag content with a fresh Fisher-Yates shuffle of all
// shapes, discarding anything not yet drawn.
func (b *Bag) Refill() {
	for i := range b.order {
		b.order[i] = Shape(i)
	}
	for i := len(b.order) - 1; i > 0; i-- {
		j := b.rng.IntN(i + 1)
		b.order[i], b.order[j] = b.order[j], b.order[i]
	}
	b.index = 0
}

// Draw returns the next shape, refilling the bag first when it is empty.
func (b *Bag) Draw() Shape {
	if b.index >= len(b.order) {
		b.Refill()
	}
	s := b.order[b.index]
	b.index++
	return s
}

// Remaining returns the shapes left in the current bag in draw order.
func (b *Bag) Remaining() []Shape {
	return slices.Clone(b.order[b.index:])
}
