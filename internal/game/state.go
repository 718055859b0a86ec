package game

import (
	"errors"
	"fmt"

	"github.com/lox/blackjack/internal/display"
)

var (
	// ErrInvalidState is returned when an operation is not allowed in the
	// engine's current state
	ErrInvalidState = errors.New("invalid state")

	// ErrInvalidAction is returned for input that is neither hit nor stand
	ErrInvalidAction = errors.New("invalid action")
)

// State is a step of the game state machine
type State int

const (
	Deal State = iota
	PlayerTurn
	DealerTurn
	Resolve
	Done
)

func (s State) String() string {
	switch s {
	case Deal:
		return "deal"
	case PlayerTurn:
		return "player-turn"
	case DealerTurn:
		return "dealer-turn"
	case Resolve:
		return "resolve"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Outcome is the result of a finished game
type Outcome int

const (
	Undecided Outcome = iota
	PlayerBust
	DealerBust
	PlayerWin
	DealerWin
	Tie
)

// String returns the result line printed at the end of a game
func (o Outcome) String() string {
	switch o {
	case PlayerBust:
		return "Player busts! Dealer wins."
	case DealerBust:
		return "Dealer busts! Player wins."
	case PlayerWin:
		return "Player wins!"
	case DealerWin:
		return "Dealer wins!"
	case Tie:
		return "It's a tie!"
	default:
		return "Undecided"
	}
}

// Key returns a short identifier for logs and statistics
func (o Outcome) Key() string {
	switch o {
	case PlayerBust:
		return "player_bust"
	case DealerBust:
		return "dealer_bust"
	case PlayerWin:
		return "player_win"
	case DealerWin:
		return "dealer_win"
	case Tie:
		return "tie"
	default:
		return "undecided"
	}
}

// PlayerWon returns true if the player won the game
func (o Outcome) PlayerWon() bool {
	return o == DealerBust || o == PlayerWin
}

// DealerWon returns true if the dealer won the game
func (o Outcome) DealerWon() bool {
	return o == PlayerBust || o == DealerWin
}

// Tone returns the display tone for the result line
func (o Outcome) Tone() display.Tone {
	switch {
	case o.PlayerWon():
		return display.Win
	case o.DealerWon():
		return display.Loss
	default:
		return display.Neutral
	}
}

// Action is a player decision
type Action int

const (
	Hit Action = iota
	Stand
)

func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	default:
		return "unknown"
	}
}
