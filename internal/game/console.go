package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/blackjack/internal/display"
)

const (
	Banner         = "Welcome to Blackjack!"
	Prompt         = "Do you want to hit(h) or stand(s)? "
	InvalidMessage = "Invalid. Please type 'h' to hit or 's' to stand."
	DealerHits     = "Dealer hits..."
)

// ConsoleOptions configures a Console
type ConsoleOptions struct {
	Renderer *display.Renderer
	Logger   *log.Logger
	Clock    quartz.Clock
	Pace     time.Duration // pause before each dealer draw
}

// Console plays one game over a line-oriented reader and writer
type Console struct {
	engine   *Engine
	in       *bufio.Reader
	out      io.Writer
	renderer *display.Renderer
	logger   *log.Logger
	clock    quartz.Clock
	pace     time.Duration
}

// NewConsole creates a console for engine reading decisions from in
func NewConsole(engine *Engine, in io.Reader, out io.Writer, opts ConsoleOptions) *Console {
	c := &Console{
		engine:   engine,
		in:       bufio.NewReader(in),
		out:      out,
		renderer: opts.Renderer,
		logger:   opts.Logger,
		clock:    opts.Clock,
		pace:     opts.Pace,
	}
	if c.renderer == nil {
		c.renderer = display.NewPlainRenderer()
	}
	if c.logger == nil {
		c.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if c.clock == nil {
		c.clock = quartz.NewReal()
	}
	c.logger = c.logger.WithPrefix("console")
	return c
}

// Play runs the game to completion and returns its outcome. Closing the
// input before the game is over is an error.
func (c *Console) Play(ctx context.Context) (Outcome, error) {
	c.println(c.renderer.RenderBanner(Banner))
	fmt.Fprintln(c.out)

	if err := c.engine.Deal(); err != nil {
		return Undecided, err
	}

	if err := c.playerTurn(ctx); err != nil {
		return Undecided, err
	}
	if c.engine.State() == Done {
		// player bust
		c.println(c.renderer.RenderResult(c.engine.Outcome().String(), c.engine.Outcome().Tone()))
		return c.engine.Outcome(), nil
	}

	if err := c.dealerTurn(ctx); err != nil {
		return Undecided, err
	}

	outcome, err := c.engine.Resolve()
	if err != nil {
		return Undecided, err
	}
	c.println(c.renderer.RenderResult(outcome.String(), outcome.Tone()))
	return outcome, nil
}

func (c *Console) playerTurn(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.render(true)
		fmt.Fprint(c.out, c.renderer.RenderPrompt(Prompt))

		line, err := c.readLine()
		if err != nil {
			return err
		}

		action, err := ParseAction(line)
		if errors.Is(err, ErrInvalidAction) {
			c.logger.Debug("Rejected input", "input", line)
			c.println(c.renderer.RenderError(InvalidMessage))
			continue
		}

		if err := c.engine.Apply(action); err != nil {
			return err
		}

		switch {
		case c.engine.State() == Done:
			c.render(false)
			return nil
		case action == Stand:
			return nil
		}
	}
}

func (c *Console) dealerTurn(ctx context.Context) error {
	c.render(false)

	for c.engine.DealerShouldHit() {
		if err := c.wait(ctx); err != nil {
			return err
		}

		fmt.Fprintln(c.out)
		c.println(c.renderer.RenderInfo(DealerHits))
		if err := c.engine.DealerHit(); err != nil {
			return err
		}
		c.render(false)
	}
	return c.engine.DealerStand()
}

// wait pauses for the configured pace between dealer draws
func (c *Console) wait(ctx context.Context) error {
	if c.pace <= 0 {
		return ctx.Err()
	}

	t := c.clock.NewTimer(c.pace)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// readLine returns the next line of input however long it is. A final line
// without a newline still counts; only closed input with nothing left fails.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF) && line != "":
	case errors.Is(err, io.EOF):
		return "", fmt.Errorf("read choice: %w", io.ErrUnexpectedEOF)
	default:
		return "", fmt.Errorf("read choice: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) render(hideDealer bool) {
	fmt.Fprintln(c.out)
	fmt.Fprint(c.out, c.renderer.Render(c.engine.Player(), c.engine.Dealer(), hideDealer))
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}
