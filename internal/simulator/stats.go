package simulator

import (
	"fmt"
	"strings"

	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/statistics"
)

// Stats aggregates simulated game results
type Stats struct {
	Games      int
	Outcomes   [game.Tie + 1]int // indexed by game.Outcome
	Reshuffles int
	PlayerSum  int // sum of final player scores
	DealerSum  int // sum of final dealer scores for games the dealer played
	DealerRuns int
	Net        statistics.Summary // player's result per game: +1, 0 or -1
}

// net scores an outcome from the player's side of an even-money bet
func net(o game.Outcome) float64 {
	switch {
	case o.PlayerWon():
		return 1
	case o.DealerWon():
		return -1
	default:
		return 0
	}
}

// Add records a finished game
func (s *Stats) Add(e *game.Engine) {
	s.Games++
	s.Outcomes[e.Outcome()]++
	s.Reshuffles += e.Reshuffles()
	s.Net.Add(net(e.Outcome()))
	s.PlayerSum += e.Player().Score()
	if e.Outcome() != game.PlayerBust {
		s.DealerSum += e.Dealer().Score()
		s.DealerRuns++
	}
}

// Merge adds other's counts into s
func (s *Stats) Merge(other *Stats) {
	s.Games += other.Games
	for i := range s.Outcomes {
		s.Outcomes[i] += other.Outcomes[i]
	}
	s.Reshuffles += other.Reshuffles
	s.PlayerSum += other.PlayerSum
	s.DealerSum += other.DealerSum
	s.DealerRuns += other.DealerRuns
	s.Net.Merge(other.Net)
}

// Count returns how many games ended with o
func (s *Stats) Count(o game.Outcome) int {
	return s.Outcomes[o]
}

func (s *Stats) rate(n int) float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(n) / float64(s.Games)
}

// PlayerWinRate returns the fraction of games the player won
func (s *Stats) PlayerWinRate() float64 {
	return s.rate(s.Count(game.PlayerWin) + s.Count(game.DealerBust))
}

// DealerWinRate returns the fraction of games the dealer won
func (s *Stats) DealerWinRate() float64 {
	return s.rate(s.Count(game.DealerWin) + s.Count(game.PlayerBust))
}

// TieRate returns the fraction of tied games
func (s *Stats) TieRate() float64 {
	return s.rate(s.Count(game.Tie))
}

// Validate checks that every game was counted exactly once
func (s *Stats) Validate() error {
	total := 0
	for o, n := range s.Outcomes {
		if game.Outcome(o) == game.Undecided && n > 0 {
			return fmt.Errorf("%d games finished undecided", n)
		}
		total += n
	}
	if total != s.Games {
		return fmt.Errorf("outcome counts (%d) do not match games (%d)", total, s.Games)
	}
	return nil
}

// String renders a summary table
func (s *Stats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Games: %d\n", s.Games)
	for _, o := range []game.Outcome{game.PlayerWin, game.DealerBust, game.DealerWin, game.PlayerBust, game.Tie} {
		fmt.Fprintf(&b, "  %-28s %8d  %6.2f%%\n", o.String(), s.Count(o), 100*s.rate(s.Count(o)))
	}
	fmt.Fprintf(&b, "Player wins: %.2f%%  Dealer wins: %.2f%%  Ties: %.2f%%\n",
		100*s.PlayerWinRate(), 100*s.DealerWinRate(), 100*s.TieRate())
	if s.DealerRuns > 0 {
		fmt.Fprintf(&b, "Average dealer final score: %.2f\n", float64(s.DealerSum)/float64(s.DealerRuns))
	}
	lo, hi := s.Net.ConfidenceInterval95()
	fmt.Fprintf(&b, "Player edge: %+.2f%% (95%% CI %+.2f%% to %+.2f%%)\n", 100*s.Net.Mean(), 100*lo, 100*hi)
	fmt.Fprintf(&b, "Reshuffles: %d\n", s.Reshuffles)
	return b.String()
}
