package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/tui"
)

type PlayCmd struct {
	Seed int64         `help:"RNG seed (0 for random)" default:"0"`
	TUI  bool          `name:"tui" help:"Use the full-screen interface"`
	Pace time.Duration `help:"Pause before each dealer draw (overrides dealer.pace_ms)"`
}

func (p *PlayCmd) Run(g *Globals) error {
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

	_, err = p.play(ctx, env, os.Stdin, os.Stdout)
	return err
}

func (p *PlayCmd) play(ctx context.Context, env *environment, in io.Reader, out io.Writer) (game.Outcome, error) {
	pace := env.config.Pace()
	if p.Pace > 0 {
		pace = p.Pace
	}

	rng, seed := randutil.FromSeed(p.Seed)
	engine := game.NewEngine(rng, game.WithLogger(env.logger))
	env.logger.Info("Starting game", "game", engine.ID(), "seed", seed, "tui", p.TUI)

	if p.TUI {
		m, err := tui.New(engine, tui.Options{
			Renderer: env.renderer,
			Logger:   env.logger,
			Pace:     pace,
		})
		if err != nil {
			return game.Undecided, err
		}
		return tui.Run(ctx, m, in, out)
	}

	console := game.NewConsole(engine, in, out, game.ConsoleOptions{
		Renderer: env.renderer,
		Logger:   env.logger,
		Pace:     pace,
	})
	return console.Play(ctx)
}
