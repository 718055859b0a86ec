package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"golang.org/x/sync/errgroup"
)

// Config holds configuration for running simulations
type Config struct {
	Games   int
	Workers int   // 0 means GOMAXPROCS
	Seed    int64 // game i is seeded with Seed+i
	StandOn int   // the simulated player hits below this score; 0 means the dealer's rule
	Logger  *log.Logger
}

// Simulator plays games without a human. The player mirrors the dealer's
// fixed threshold rule.
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.StandOn <= 0 {
		config.StandOn = game.DealerStandsOn
	}
	if config.Logger == nil {
		config.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Simulator{config: config}
}

// Run plays all games and returns the merged statistics
func (s *Simulator) Run(ctx context.Context) (*Stats, error) {
	if s.config.Games <= 0 {
		return nil, errors.New("games must be positive")
	}

	workers := min(s.config.Workers, s.config.Games)
	perWorker := make([]Stats, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		g.Go(func() error {
			local := &perWorker[w]
			// Workers take games round-robin so each game's seed is fixed
			// regardless of worker count
			for i := w; i < s.config.Games; i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := s.playGame(int64(i), local); err != nil {
					return fmt.Errorf("game %d (seed %d): %w", i, s.config.Seed+int64(i), err)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := &Stats{}
	for i := range perWorker {
		total.Merge(&perWorker[i])
	}

	s.config.Logger.Info("Simulation complete",
		"games", total.Games,
		"workers", workers,
		"player_win_rate", fmt.Sprintf("%.4f", total.PlayerWinRate()),
		"dealer_win_rate", fmt.Sprintf("%.4f", total.DealerWinRate()))

	return total, nil
}

func (s *Simulator) playGame(i int64, stats *Stats) error {
	e := game.NewEngine(randutil.New(s.config.Seed+i), game.WithID(fmt.Sprintf("sim-%d", i)))
	if err := e.Deal(); err != nil {
		return err
	}

	for e.State() == game.PlayerTurn {
		action := game.Stand
		if e.Player().Score() < s.config.StandOn {
			action = game.Hit
		}
		if err := e.Apply(action); err != nil {
			return err
		}
	}

	if e.State() == game.DealerTurn {
		for e.DealerShouldHit() {
			if err := e.DealerHit(); err != nil {
				return err
			}
		}
		if err := e.DealerStand(); err != nil {
			return err
		}
		if _, err := e.Resolve(); err != nil {
			return err
		}
		// the fixed dealer rule: a resolved dealer always holds 17 or more
		if e.Dealer().Score() < game.DealerStandsOn {
			return fmt.Errorf("dealer stood on %d", e.Dealer().Score())
		}
	}

	stats.Add(e)
	return nil
}
