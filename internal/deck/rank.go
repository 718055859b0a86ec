package deck

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRank is returned for labels outside the 13 card ranks
var ErrInvalidRank = errors.New("invalid rank")

// Rank represents a card rank. Suits are not modelled.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// ranks is the fixed rank list the value table and every deck are built from
var ranks = [...]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// values is the card value table, indexed by rank. Aces are nominally 11.
var values = func() map[Rank]int {
	m := make(map[Rank]int, len(ranks))
	for _, r := range ranks {
		switch r {
		case Jack, Queen, King:
			m[r] = 10
		case Ace:
			m[r] = 11
		default:
			m[r] = int(r)
		}
	}
	return m
}()

// Ranks returns the 13 ranks in ascending order
func Ranks() []Rank {
	out := make([]Rank, len(ranks))
	copy(out, ranks[:])
	return out
}

// String returns the rank label ("2".."10", "J", "Q", "K", "A")
func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	if r.Valid() {
		return fmt.Sprintf("%d", int(r))
	}
	return "?"
}

// Valid reports whether r is one of the 13 ranks
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// IsAce returns true if the rank is an Ace
func (r Rank) IsAce() bool {
	return r == Ace
}

// ValueOf returns the nominal point value of a rank
func ValueOf(r Rank) (int, error) {
	v, ok := values[r]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRank, int(r))
	}
	return v, nil
}

// MustValueOf is ValueOf for ranks that are known to be valid
func MustValueOf(r Rank) int {
	v, err := ValueOf(r)
	if err != nil {
		panic(err)
	}
	return v
}

// ParseRank parses a single rank label. Letters are case-insensitive and
// "T" is accepted as an alias for "10".
func ParseRank(s string) (Rank, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return Ace, nil
	case "K":
		return King, nil
	case "Q":
		return Queen, nil
	case "J":
		return Jack, nil
	case "10", "T":
		return Ten, nil
	case "9":
		return Nine, nil
	case "8":
		return Eight, nil
	case "7":
		return Seven, nil
	case "6":
		return Six, nil
	case "5":
		return Five, nil
	case "4":
		return Four, nil
	case "3":
		return Three, nil
	case "2":
		return Two, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidRank, s)
}

// ParseRanks parses a whitespace or comma separated list of rank labels.
// Format: "10 9 A" or "10,9,A"
func ParseRanks(s string) ([]Rank, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	out := make([]Rank, 0, len(fields))
	for i, f := range fields {
		r, err := ParseRank(f)
		if err != nil {
			return nil, fmt.Errorf("rank %d: %w", i, err)
		}
		out = append(out, r)
	}
	return out, nil
}

// MustParseRanks parses ranks and panics on error (for tests)
func MustParseRanks(s string) []Rank {
	out, err := ParseRanks(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse ranks '%s': %v", s, err))
	}
	return out
}
