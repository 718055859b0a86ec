package game

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/lox/blackjack/internal/deck"
)

// EngineOption configures an Engine during creation.
type EngineOption func(*engineConfig)

type engineConfig struct {
	deck   *deck.Deck // If provided, dealt from before any fresh deck is created
	logger *log.Logger
	clock  quartz.Clock
	id     string
}

func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		logger: log.NewWithOptions(io.Discard, log.Options{}),
		clock:  quartz.NewReal(),
		id:     uuid.New().String(),
	}
}

// WithDeck deals from d instead of creating a fresh shuffled deck on Deal
func WithDeck(d *deck.Deck) EngineOption {
	return func(c *engineConfig) {
		c.deck = d
	}
}

// WithLogger sets the logger used for game events
func WithLogger(logger *log.Logger) EngineOption {
	return func(c *engineConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithClock sets the clock used to time the game
func WithClock(clock quartz.Clock) EngineOption {
	return func(c *engineConfig) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithID overrides the generated game ID
func WithID(id string) EngineOption {
	return func(c *engineConfig) {
		c.id = id
	}
}
