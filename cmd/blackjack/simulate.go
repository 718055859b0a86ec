package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/lox/blackjack/internal/fileutil"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/simulator"
)

type SimulateCmd struct {
	Games   int    `default:"10000" help:"Number of games to play"`
	Workers int    `default:"0" help:"Parallel workers (0 for GOMAXPROCS)"`
	Seed    int64  `default:"0" help:"RNG seed (0 for random)"`
	StandOn int    `default:"17" help:"Simulated player stands at or above this score"`
	Output  string `short:"o" help:"Also write the report to this file"`
}

func (s *SimulateCmd) Run(g *Globals) error {
	env, err := g.setup(os.Stdout)
	if err != nil {
		return err
	}
	defer func() {
		if err := env.Close(); err != nil {
			env.logger.Error("Failed to close log file", "error", err)
		}
	}()

	ctx, stop := setupSignalHandler(env.logger)
	defer stop()

	return s.simulate(ctx, env, os.Stdout)
}

func (s *SimulateCmd) simulate(ctx context.Context, env *environment, out io.Writer) error {
	seed := s.Seed
	if seed == 0 {
		seed = randutil.NewSeed()
	}

	sim := simulator.New(simulator.Config{
		Games:   s.Games,
		Workers: s.Workers,
		Seed:    seed,
		StandOn: s.StandOn,
		Logger:  env.logger,
	})

	stats, err := sim.Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	report := fmt.Sprintf("Seed: %d\n%s", seed, stats)
	fmt.Fprint(out, report)

	if s.Output != "" {
		err := fileutil.WriteAtomic(s.Output, 0o644, func(w io.Writer) error {
			_, err := io.WriteString(w, report)
			return err
		})
		if err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		env.logger.Info("Wrote report", "file", s.Output)
	}
	return nil
}
