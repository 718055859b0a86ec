// Package hand holds a party's cards and scores them.
package hand

import (
	"strings"

	"github.com/lox/blackjack/internal/deck"
)

const (
	// Blackjack is the highest score that does not bust
	Blackjack = 21

	// aceReduction is the difference between an Ace counted as 11 and as 1
	aceReduction = 10
)

// Hand is an ordered set of cards held by the player or the dealer.
// It only grows.
type Hand struct {
	cards []deck.Rank
}

// New creates a hand holding the given cards
func New(cards ...deck.Rank) *Hand {
	h := &Hand{cards: make([]deck.Rank, 0, len(cards)+3)}
	h.cards = append(h.cards, cards...)
	return h
}

// Add appends a drawn card
func (h *Hand) Add(r deck.Rank) {
	h.cards = append(h.cards, r)
}

// Cards returns a copy of the cards in the order they were dealt
func (h *Hand) Cards() []deck.Rank {
	out := make([]deck.Rank, len(h.cards))
	copy(out, h.cards)
	return out
}

// Len returns the number of cards held
func (h *Hand) Len() int {
	return len(h.cards)
}

// First returns the first card dealt. ok is false for an empty hand.
func (h *Hand) First() (deck.Rank, bool) {
	if len(h.cards) == 0 {
		return 0, false
	}
	return h.cards[0], true
}

// Score returns the best score for the hand
func (h *Hand) Score() int {
	return Score(h.cards)
}

// IsBust returns true if the score exceeds 21
func (h *Hand) IsBust() bool {
	return h.Score() > Blackjack
}

// String formats the hand as "[10, 9]"
func (h *Hand) String() string {
	return Format(h.cards)
}

// Score sums the card values with every Ace at 11, then counts Aces down to 1
// one at a time while the total is over 21. The result can still exceed 21.
func Score(cards []deck.Rank) int {
	score := 0
	aces := 0
	for _, r := range cards {
		score += deck.MustValueOf(r)
		if r.IsAce() {
			aces++
		}
	}

	for score > Blackjack && aces > 0 {
		score -= aceReduction
		aces--
	}

	return score
}

// Format renders ranks as a bracketed, comma separated list
func Format(cards []deck.Rank) string {
	labels := make([]string, len(cards))
	for i, r := range cards {
		labels[i] = r.String()
	}
	return "[" + strings.Join(labels, ", ") + "]"
}
