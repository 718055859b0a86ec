// Package tui is a full-screen Bubble Tea front end for a single game.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/display"
	"github.com/lox/blackjack/internal/game"
)

// dealerStepMsg advances the dealer's turn by one card
type dealerStepMsg struct{}

// Options configures the TUI model
type Options struct {
	Renderer *display.Renderer
	Logger   *log.Logger
	Pace     time.Duration // delay between dealer draws
}

// Model is the Bubble Tea model for one game of blackjack
type Model struct {
	engine   *game.Engine
	renderer *display.Renderer
	logger   *log.Logger
	pace     time.Duration

	keys keyMap
	help help.Model

	messages []string
	err      error
	quitting bool
}

// New deals a game on engine and returns a model ready to run
func New(engine *game.Engine, opts Options) (*Model, error) {
	if opts.Renderer == nil {
		opts.Renderer = display.NewPlainRenderer()
	}
	if opts.Logger == nil {
		opts.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	if engine.State() == game.Deal {
		if err := engine.Deal(); err != nil {
			return nil, err
		}
	}

	return &Model{
		engine:   engine,
		renderer: opts.Renderer,
		logger:   opts.Logger.WithPrefix("tui"),
		pace:     opts.Pace,
		keys:     defaultKeyMap(),
		help:     help.New(),
	}, nil
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Outcome returns the game's result, or game.Undecided if the player quit
func (m *Model) Outcome() game.Outcome {
	return m.engine.Outcome()
}

// Err returns the error that stopped the game, if any
func (m *Model) Err() error {
	return m.err
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		return m.handleKey(msg)

	case dealerStepMsg:
		return m.dealerStep()
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.logger.Info("Player quit", "state", m.engine.State())
		m.quitting = true
		return m, tea.Quit
	}

	switch m.engine.State() {
	case game.Done:
		// any key leaves once the result is shown
		return m, tea.Quit

	case game.PlayerTurn:
		m.messages = nil
		switch {
		case key.Matches(msg, m.keys.Hit):
			return m, m.apply(game.Hit)
		case key.Matches(msg, m.keys.Stand):
			return m, m.apply(game.Stand)
		default:
			m.logger.Debug("Rejected key", "key", msg.String())
			m.messages = append(m.messages, m.renderer.RenderError(game.InvalidMessage))
		}
	}

	// keys pressed during the dealer's turn are ignored
	return m, nil
}

func (m *Model) apply(a game.Action) tea.Cmd {
	if err := m.engine.Apply(a); err != nil {
		return m.fail(err)
	}
	if a == game.Stand {
		return m.nextDealerStep()
	}
	return nil
}

func (m *Model) dealerStep() (tea.Model, tea.Cmd) {
	if m.engine.DealerShouldHit() {
		if err := m.engine.DealerHit(); err != nil {
			return m, m.fail(err)
		}
		m.messages = append(m.messages, m.renderer.RenderInfo(game.DealerHits))
		return m, m.nextDealerStep()
	}

	if m.engine.State() == game.DealerTurn {
		if err := m.engine.DealerStand(); err != nil {
			return m, m.fail(err)
		}
		if _, err := m.engine.Resolve(); err != nil {
			return m, m.fail(err)
		}
	}
	return m, nil
}

func (m *Model) nextDealerStep() tea.Cmd {
	if m.pace <= 0 {
		return func() tea.Msg { return dealerStepMsg{} }
	}
	return tea.Tick(m.pace, func(time.Time) tea.Msg { return dealerStepMsg{} })
}

func (m *Model) fail(err error) tea.Cmd {
	m.logger.Error("Game error", "error", err)
	m.err = err
	return tea.Quit
}

// View renders the model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderer.RenderBanner(game.Banner))
	b.WriteString("\n\n")

	hideDealer := m.engine.State() == game.PlayerTurn
	b.WriteString(m.renderer.Render(m.engine.Player(), m.engine.Dealer(), hideDealer))

	if len(m.messages) > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Join(m.messages, "\n"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch m.engine.State() {
	case game.PlayerTurn:
		b.WriteString(m.renderer.RenderPrompt(game.Prompt))
		b.WriteString("\n\n")
		b.WriteString(m.help.View(m.keys))
	case game.Done:
		b.WriteString(m.renderer.RenderResult(m.engine.Outcome().String(), m.engine.Outcome().Tone()))
		b.WriteString("\n\n")
		b.WriteString(m.renderer.RenderInfo("Press any key to exit"))
	default:
		b.WriteString(m.renderer.RenderInfo("Dealer's turn..."))
	}
	b.WriteString("\n")

	return b.String()
}

// Run plays the model as a Bubble Tea program and returns the outcome
func Run(ctx context.Context, m *Model, in io.Reader, out io.Writer) (game.Outcome, error) {
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return game.Undecided, fmt.Errorf("tui: %w", err)
	}

	fm, ok := final.(*Model)
	if !ok {
		return game.Undecided, fmt.Errorf("tui: unexpected model %T", final)
	}
	if fm.Err() != nil {
		return game.Undecided, fm.Err()
	}
	return fm.Outcome(), nil
}
