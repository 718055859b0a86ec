package game

import (
	"fmt"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/hand"
)

// DealerStandsOn is the score at which the dealer stops drawing. The dealer
// stands on every 17, soft or hard.
const DealerStandsOn = 17

// Engine runs a single game of blackjack
type Engine struct {
	id     string
	rng    *rand.Rand
	deck   *deck.Deck
	player *hand.Hand
	dealer *hand.Hand

	state      State
	outcome    Outcome
	reshuffles int

	clock    quartz.Clock
	started  time.Time
	finished time.Time
	logger   *log.Logger
}

// NewEngine creates a game in the Deal state. rng shuffles every deck the
// game creates.
func NewEngine(rng *rand.Rand, opts ...EngineOption) *Engine {
	if rng == nil {
		panic("rng is required for engine creation")
	}

	cfg := defaultEngineConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return &Engine{
		id:     cfg.id,
		rng:    rng,
		deck:   cfg.deck,
		player: hand.New(),
		dealer: hand.New(),
		state:  Deal,
		clock:  cfg.clock,
		logger: cfg.logger.With("game", cfg.id),
	}
}

// ID returns the game's identifier
func (e *Engine) ID() string { return e.id }

// State returns the current state
func (e *Engine) State() State { return e.state }

// Outcome returns the result, or Undecided before Done
func (e *Engine) Outcome() Outcome { return e.outcome }

// Player returns the player's hand
func (e *Engine) Player() *hand.Hand { return e.player }

// Dealer returns the dealer's hand
func (e *Engine) Dealer() *hand.Hand { return e.dealer }

// Reshuffles returns how many times an empty deck was replaced
func (e *Engine) Reshuffles() int { return e.reshuffles }

// CardsRemaining returns the number of cards left in the current deck
func (e *Engine) CardsRemaining() int {
	if e.deck == nil {
		return 0
	}
	return e.deck.Len()
}

// Duration returns the time from Deal to Done, or to now for a game in
// progress
func (e *Engine) Duration() time.Duration {
	if e.started.IsZero() {
		return 0
	}
	if e.finished.IsZero() {
		return e.clock.Since(e.started)
	}
	return e.finished.Sub(e.started)
}

func (e *Engine) expect(s State, op string) error {
	if e.state != s {
		return fmt.Errorf("%w: cannot %s during %s", ErrInvalidState, op, e.state)
	}
	return nil
}

// draw takes the top card, replacing an exhausted deck first. The deck
// itself never refills.
func (e *Engine) draw() deck.Rank {
	if e.deck == nil || e.deck.IsEmpty() {
		if e.deck != nil {
			e.reshuffles++
			e.logger.Debug("Deck exhausted, shuffling a fresh deck", "reshuffles", e.reshuffles)
		}
		e.deck = deck.New(e.rng)
	}

	r, ok := e.deck.Draw()
	if !ok {
		panic("draw from a freshly created deck failed")
	}
	return r
}

// Deal gives two cards to the player, then two to the dealer
func (e *Engine) Deal() error {
	if err := e.expect(Deal, "deal"); err != nil {
		return err
	}

	e.started = e.clock.Now()
	if e.deck == nil {
		e.deck = deck.New(e.rng)
	}

	e.player.Add(e.draw())
	e.player.Add(e.draw())
	e.dealer.Add(e.draw())
	e.dealer.Add(e.draw())

	e.state = PlayerTurn
	e.logger.Info("Dealt",
		"player", e.player.String(),
		"player_score", e.player.Score(),
		"dealer_up", e.dealer.Cards()[0].String())
	return nil
}

// Hit draws a card for the player. A bust ends the game immediately and the
// dealer does not play.
func (e *Engine) Hit() error {
	if err := e.expect(PlayerTurn, "hit"); err != nil {
		return err
	}

	card := e.draw()
	e.player.Add(card)
	e.logger.Info("Player hits", "card", card.String(), "score", e.player.Score())

	if e.player.IsBust() {
		e.finish(PlayerBust)
	}
	return nil
}

// Stand ends the player's turn
func (e *Engine) Stand() error {
	if err := e.expect(PlayerTurn, "stand"); err != nil {
		return err
	}

	e.logger.Info("Player stands", "score", e.player.Score())
	e.state = DealerTurn
	return nil
}

// Apply performs a parsed player action
func (e *Engine) Apply(a Action) error {
	switch a {
	case Hit:
		return e.Hit()
	case Stand:
		return e.Stand()
	default:
		return fmt.Errorf("%w: %d", ErrInvalidAction, int(a))
	}
}

// DealerShouldHit reports whether the dealer must draw another card
func (e *Engine) DealerShouldHit() bool {
	return e.state == DealerTurn && e.dealer.Score() < DealerStandsOn
}

// DealerHit draws a card for the dealer
func (e *Engine) DealerHit() error {
	if err := e.expect(DealerTurn, "draw for the dealer"); err != nil {
		return err
	}
	if !e.DealerShouldHit() {
		return fmt.Errorf("%w: dealer stands on %d", ErrInvalidState, e.dealer.Score())
	}

	card := e.draw()
	e.dealer.Add(card)
	e.logger.Info("Dealer hits", "card", card.String(), "score", e.dealer.Score())
	return nil
}

// DealerStand ends the dealer's turn and moves to Resolve. The dealer may
// only stand on 17 or more, including when the first two cards reach it.
func (e *Engine) DealerStand() error {
	if err := e.expect(DealerTurn, "stand for the dealer"); err != nil {
		return err
	}
	if e.DealerShouldHit() {
		return fmt.Errorf("%w: dealer must hit on %d", ErrInvalidState, e.dealer.Score())
	}

	e.logger.Info("Dealer stands", "score", e.dealer.Score())
	e.state = Resolve
	return nil
}

// Resolve compares the final scores and ends the game
func (e *Engine) Resolve() (Outcome, error) {
	if err := e.expect(Resolve, "resolve"); err != nil {
		return Undecided, err
	}

	e.finish(Compare(e.player.Score(), e.dealer.Score()))
	return e.outcome, nil
}

func (e *Engine) finish(o Outcome) {
	e.outcome = o
	e.state = Done
	e.finished = e.clock.Now()
	e.logger.Info("Game over",
		"outcome", o.Key(),
		"player", e.player.String(),
		"player_score", e.player.Score(),
		"dealer", e.dealer.String(),
		"dealer_score", e.dealer.Score(),
		"reshuffles", e.reshuffles,
		"duration", e.Duration())
}

// Compare decides the outcome for a player who did not bust
func Compare(playerScore, dealerScore int) Outcome {
	switch {
	case dealerScore > hand.Blackjack:
		return DealerBust
	case playerScore > dealerScore:
		return PlayerWin
	case playerScore < dealerScore:
		return DealerWin
	default:
		return Tie
	}
}
