package deck

import (
	rand "math/rand/v2"
)

// Size is the number of cards in a fresh deck
const Size = 52

// Deck is an ordered stack of ranks. The top of the deck is the end of the
// slice so drawing is O(1). A Deck never refills itself; callers replace an
// empty deck with New.
type Deck struct {
	cards []Rank
}

// New creates a 52-card deck (four of each rank) shuffled with rng
func New(rng *rand.Rand) *Deck {
	d := &Deck{cards: make([]Rank, 0, Size)}
	for _, r := range ranks {
		for range 4 {
			d.cards = append(d.cards, r)
		}
	}
	d.shuffle(rng)
	return d
}

// Stacked returns a deck that deals ranks in the order given.
// Used for scripted hands.
func Stacked(ranks ...Rank) *Deck {
	d := &Deck{cards: make([]Rank, len(ranks))}
	for i, r := range ranks {
		d.cards[len(ranks)-1-i] = r
	}
	return d
}

// shuffle is Fisher-Yates; every permutation is equally likely
func (d *Deck) shuffle(rng *rand.Rand) {
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if rng != nil {
			j = rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns the top card. ok is false when the deck is empty.
func (d *Deck) Draw() (r Rank, ok bool) {
	if len(d.cards) == 0 {
		return 0, false
	}
	r = d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return r, true
}

// Len returns the number of cards left in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Ranks returns a copy of the remaining cards, bottom first
func (d *Deck) Ranks() []Rank {
	out := make([]Rank, len(d.cards))
	copy(out, d.cards)
	return out
}
