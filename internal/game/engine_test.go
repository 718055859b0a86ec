package game

import (
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/hand"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scripted returns a dealt engine. Cards are listed in draw order: two for
// the player, two for the dealer, then any further draws.
func scripted(t *testing.T, cards string) *Engine {
	t.Helper()
	e := NewEngine(randutil.New(1), WithDeck(deck.Stacked(deck.MustParseRanks(cards)...)))
	require.NoError(t, e.Deal())
	return e
}

func playDealer(t *testing.T, e *Engine) {
	t.Helper()
	for e.DealerShouldHit() {
		require.NoError(t, e.DealerHit())
	}
	require.NoError(t, e.DealerStand())
}

func TestDeal(t *testing.T) {
	e := scripted(t, "10 9 10 6")

	assert.Equal(t, PlayerTurn, e.State())
	assert.Equal(t, "[10, 9]", e.Player().String())
	assert.Equal(t, "[10, 6]", e.Dealer().String())
	assert.Equal(t, Undecided, e.Outcome())
}

func TestDealFreshDeck(t *testing.T) {
	e := NewEngine(randutil.New(5))
	require.NoError(t, e.Deal())

	assert.Equal(t, 2, e.Player().Len())
	assert.Equal(t, 2, e.Dealer().Len())
	assert.Equal(t, deck.Size-4, e.CardsRemaining())
	assert.Equal(t, 0, e.Reshuffles())
}

func TestScenarios(t *testing.T) {
	tests := []struct {
		name        string
		cards       string
		actions     []Action
		expected    Outcome
		playerFinal string
		dealerFinal string
	}{
		{
			name:        "dealer draws to 21",
			cards:       "10 9 10 6 5",
			actions:     []Action{Stand},
			expected:    DealerWin,
			playerFinal: "[10, 9]",
			dealerFinal: "[10, 6, 5]",
		},
		{
			name:        "dealer busts",
			cards:       "10 9 10 6 10",
			actions:     []Action{Stand},
			expected:    DealerBust,
			playerFinal: "[10, 9]",
			dealerFinal: "[10, 6, 10]",
		},
		{
			name:        "player busts without a dealer turn",
			cards:       "10 8 10 6 K",
			actions:     []Action{Hit},
			expected:    PlayerBust,
			playerFinal: "[10, 8, K]",
			dealerFinal: "[10, 6]",
		},
		{
			name:        "player wins on higher score",
			cards:       "10 10 10 7",
			actions:     []Action{Stand},
			expected:    PlayerWin,
			playerFinal: "[10, 10]",
			dealerFinal: "[10, 7]",
		},
		{
			name:        "tie",
			cards:       "10 8 Q 8",
			actions:     []Action{Stand},
			expected:    Tie,
			playerFinal: "[10, 8]",
			dealerFinal: "[Q, 8]",
		},
		{
			name:        "player hits then stands",
			cards:       "2 3 10 7 5 A",
			actions:     []Action{Hit, Hit, Stand},
			expected:    PlayerWin,
			playerFinal: "[2, 3, 5, A]",
			dealerFinal: "[10, 7]",
		},
		{
			name:        "dealer stands on soft 17",
			cards:       "10 9 A 6",
			actions:     []Action{Stand},
			expected:    PlayerWin,
			playerFinal: "[10, 9]",
			dealerFinal: "[A, 6]",
		},
		{
			name:        "dealer ace drops to one",
			cards:       "10 8 A 5 K 4",
			actions:     []Action{Stand},
			expected:    DealerWin,
			playerFinal: "[10, 8]",
			dealerFinal: "[A, 5, K, 4]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := scripted(t, tt.cards)
			for _, a := range tt.actions {
				require.NoError(t, e.Apply(a))
			}

			if e.State() != Done {
				playDealer(t, e)
				got, err := e.Resolve()
				require.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}

			assert.Equal(t, Done, e.State())
			assert.Equal(t, tt.expected, e.Outcome())
			assert.Equal(t, tt.playerFinal, e.Player().String())
			assert.Equal(t, tt.dealerFinal, e.Dealer().String())
		})
	}
}

func TestStandWithDealerAlreadyOn17(t *testing.T) {
	e := scripted(t, "10 9 10 7")
	require.NoError(t, e.Stand())

	// the dealer's turn is still entered, even with nothing to draw
	assert.Equal(t, DealerTurn, e.State())
	assert.False(t, e.DealerShouldHit())
	assert.ErrorIs(t, e.DealerHit(), ErrInvalidState)
	assert.Equal(t, 2, e.Dealer().Len())

	require.NoError(t, e.DealerStand())
	assert.Equal(t, Resolve, e.State())

	got, err := e.Resolve()
	require.NoError(t, err)
	assert.Equal(t, PlayerWin, got)
	assert.Equal(t, Done, e.State())
}

func TestStateSequence(t *testing.T) {
	e := NewEngine(randutil.New(1), WithDeck(deck.Stacked(deck.MustParseRanks("10 9 10 6 5")...)))
	seen := []State{e.State()}
	step := func(err error) {
		t.Helper()
		require.NoError(t, err)
		if last := seen[len(seen)-1]; last != e.State() {
			seen = append(seen, e.State())
		}
	}

	step(e.Deal())
	step(e.Stand())
	for e.DealerShouldHit() {
		step(e.DealerHit())
	}
	step(e.DealerStand())
	_, err := e.Resolve()
	step(err)

	assert.Equal(t, []State{Deal, PlayerTurn, DealerTurn, Resolve, Done}, seen)
}

func TestInvalidTransitions(t *testing.T) {
	t.Run("before deal", func(t *testing.T) {
		e := NewEngine(randutil.New(1))
		assert.ErrorIs(t, e.Hit(), ErrInvalidState)
		assert.ErrorIs(t, e.Stand(), ErrInvalidState)
		assert.ErrorIs(t, e.DealerHit(), ErrInvalidState)
		assert.ErrorIs(t, e.DealerStand(), ErrInvalidState)
		_, err := e.Resolve()
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("deal twice", func(t *testing.T) {
		e := scripted(t, "10 9 10 6")
		assert.ErrorIs(t, e.Deal(), ErrInvalidState)
	})

	t.Run("player cannot act during dealer turn", func(t *testing.T) {
		e := scripted(t, "10 9 10 6")
		require.NoError(t, e.Stand())
		assert.Equal(t, DealerTurn, e.State())
		assert.ErrorIs(t, e.Hit(), ErrInvalidState)
		assert.ErrorIs(t, e.Stand(), ErrInvalidState)
		_, err := e.Resolve()
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("dealer cannot stand below 17", func(t *testing.T) {
		e := scripted(t, "10 9 10 6")
		require.NoError(t, e.Stand())
		assert.ErrorIs(t, e.DealerStand(), ErrInvalidState)
		assert.Equal(t, DealerTurn, e.State())
	})

	t.Run("dealer stands once", func(t *testing.T) {
		e := scripted(t, "10 9 10 7")
		require.NoError(t, e.Stand())
		require.NoError(t, e.DealerStand())
		assert.ErrorIs(t, e.DealerStand(), ErrInvalidState)
		assert.ErrorIs(t, e.DealerHit(), ErrInvalidState)
	})

	t.Run("nothing after a bust", func(t *testing.T) {
		e := scripted(t, "10 8 10 6 K")
		require.NoError(t, e.Hit())
		assert.Equal(t, Done, e.State())
		assert.ErrorIs(t, e.Hit(), ErrInvalidState)
		assert.ErrorIs(t, e.DealerHit(), ErrInvalidState)
		_, err := e.Resolve()
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("unknown action", func(t *testing.T) {
		e := scripted(t, "10 9 10 6")
		assert.ErrorIs(t, e.Apply(Action(9)), ErrInvalidAction)
		assert.Equal(t, PlayerTurn, e.State())
	})
}

func TestDealerNeverHitsOn17OrMore(t *testing.T) {
	for seed := int64(1); seed <= 500; seed++ {
		e := NewEngine(randutil.New(seed))
		require.NoError(t, e.Deal())
		require.NoError(t, e.Stand())

		for e.DealerShouldHit() {
			before := e.Dealer().Score()
			require.Less(t, before, DealerStandsOn)
			require.NoError(t, e.DealerHit())
		}

		final := e.Dealer().Score()
		assert.GreaterOrEqual(t, final, DealerStandsOn, "seed %d", seed)

		// the card before the last one left the dealer under 17
		if cards := e.Dealer().Cards(); len(cards) > 2 {
			assert.Less(t, hand.Score(cards[:len(cards)-1]), DealerStandsOn, "seed %d", seed)
		}

		require.NoError(t, e.DealerStand())
		_, err := e.Resolve()
		require.NoError(t, err)
	}
}

func TestReshuffleWhenDeckRunsOut(t *testing.T) {
	// Only the initial four cards are stacked; the hit comes from a fresh deck
	e := scripted(t, "2 2 10 7")
	assert.Equal(t, 0, e.CardsRemaining())

	require.NoError(t, e.Hit())
	assert.Equal(t, 1, e.Reshuffles())
	assert.Equal(t, deck.Size-1, e.CardsRemaining())
	assert.Equal(t, 3, e.Player().Len())
}

func TestHitUntilBust(t *testing.T) {
	e := NewEngine(randutil.New(11))
	require.NoError(t, e.Deal())
	for e.State() == PlayerTurn {
		require.NoError(t, e.Hit())
	}
	assert.Equal(t, PlayerBust, e.Outcome())
	assert.Equal(t, deck.Size-e.Player().Len()-e.Dealer().Len(), e.CardsRemaining())
}

func TestDuration(t *testing.T) {
	clock := quartz.NewMock(t)
	e := NewEngine(randutil.New(1),
		WithClock(clock),
		WithDeck(deck.Stacked(deck.MustParseRanks("10 9 10 7")...)))

	assert.Zero(t, e.Duration())
	require.NoError(t, e.Deal())

	clock.Advance(3 * time.Second)
	assert.Equal(t, 3*time.Second, e.Duration())

	require.NoError(t, e.Stand())
	require.NoError(t, e.DealerStand())
	_, err := e.Resolve()
	require.NoError(t, err)

	clock.Advance(time.Minute)
	assert.Equal(t, 3*time.Second, e.Duration(), "duration stops at Done")
}

func TestEngineID(t *testing.T) {
	a := NewEngine(randutil.New(1))
	b := NewEngine(randutil.New(1))
	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())

	assert.Equal(t, "fixed", NewEngine(randutil.New(1), WithID("fixed")).ID())
}

func TestNewEngineRequiresRNG(t *testing.T) {
	assert.Panics(t, func() { NewEngine(nil) })
}

func TestCompare(t *testing.T) {
	tests := []struct {
		player, dealer int
		expected       Outcome
	}{
		{19, 22, DealerBust},
		{12, 26, DealerBust},
		{20, 19, PlayerWin},
		{17, 21, DealerWin},
		{18, 18, Tie},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Compare(tt.player, tt.dealer), "%d vs %d", tt.player, tt.dealer)
	}
}

func TestOutcomeStrings(t *testing.T) {
	assert.Equal(t, "Player busts! Dealer wins.", PlayerBust.String())
	assert.Equal(t, "Dealer busts! Player wins.", DealerBust.String())
	assert.Equal(t, "Player wins!", PlayerWin.String())
	assert.Equal(t, "Dealer wins!", DealerWin.String())
	assert.Equal(t, "It's a tie!", Tie.String())

	assert.True(t, DealerBust.PlayerWon())
	assert.True(t, PlayerBust.DealerWon())
	assert.False(t, Tie.PlayerWon())
	assert.False(t, Tie.DealerWon())
}
