package engine

import "math/rand"

// Randomizer supplies the sequence of pieces to spawn.
type Randomizer interface {
	// Next returns the next kind and advances the sequence.
	Next() Kind
	// Upcoming returns the kinds already decided but not yet drawn.
	Upcoming() []Kind
	// Reset discards the pending sequence and starts a fresh one.
	Reset()
}

// Bag is the 7-piece bag randomizer. Every kind appears exactly once per
// bag, so no kind can repeat before all the others have been drawn.
type Bag struct {
	rng    *rand.Rand
	items  [NumKinds]Kind
	cursor int
}

// NewBag creates a filled, shuffled bag drawing from rng.
func NewBag(rng *rand.Rand) *Bag {
	b := &Bag{rng: rng}
	b.Refill()
	return b
}

// Refill loads all seven kinds, shuffles them and rewinds the cursor.
func (b *Bag) Refill() {
	b.items = Kinds
	// Fisher-Yates: swap i with a uniform j in [i, 6].
	for i := 0; i < int(NumKinds)-1; i++ {
		j := i + b.rng.Intn(int(NumKinds)-i)
		b.items[i], b.items[j] = b.items[j], b.items[i]
	}
	b.cursor = 0
}

// Next draws the kind under the cursor. The bag refills as soon as its last
// kind has been handed out.
func (b *Bag) Next() Kind {
	k := b.items[b.cursor]
	b.cursor++
	if b.cursor == int(NumKinds) {
		b.Refill()
	}
	return k
}

// Upcoming returns the kinds left in the current bag, in draw order.
func (b *Bag) Upcoming() []Kind {
	out := make([]Kind, int(NumKinds)-b.cursor)
	copy(out, b.items[b.cursor:])
	return out
}

// Reset starts a new bag.
func (b *Bag) Reset() {
	b.Refill()
}

// Uniform draws each kind independently with equal probability and keeps a
// single piece of preview.
type Uniform struct {
	rng  *rand.Rand
	next Kind
}

// NewUniform creates a uniform randomizer drawing from rng.
func NewUniform(rng *rand.Rand) *Uniform {
	u := &Uniform{rng: rng}
	u.Reset()
	return u
}

// Next returns the previewed kind and draws a new preview.
func (u *Uniform) Next() Kind {
	k := u.next
	u.next = Kind(u.rng.Intn(int(NumKinds)))
	return k
}

// Upcoming returns the single previewed kind.
func (u *Uniform) Upcoming() []Kind {
	return []Kind{u.next}
}

// Reset draws a fresh preview.
func (u *Uniform) Reset() {
	u.next = Kind(u.rng.Intn(int(NumKinds)))
}
