// Package game implements the blackjack turn sequence.
//
// The main type is Engine, a state machine over a single game:
//
//	Deal -> PlayerTurn -> DealerTurn -> Resolve -> Done
//
// A player bust jumps straight from PlayerTurn to Done.
//
// # Basic Usage
//
//	e := game.NewEngine(rng)
//	e.Deal()
//	e.Hit()   // or e.Stand()
//	for e.DealerShouldHit() {
//	    e.DealerHit()
//	}
//	e.DealerStand()
//	outcome, _ := e.Resolve()
//
// Console wraps an Engine in the interactive read-eval loop used by the
// blackjack command.
//
// # Deterministic Testing
//
// Pass a seeded generator from randutil.New, or provide a stacked deck to
// script every card:
//
//	e := game.NewEngine(rng, game.WithDeck(deck.Stacked(deck.Ten, deck.Nine, deck.Ten, deck.Six)))
//
// When an injected deck runs out the engine replaces it with a freshly
// shuffled deck from rng, exactly as it does in normal play.
package game
