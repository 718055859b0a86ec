// Package display renders hands, scores and messages as text.
//
// Rendering is pure: every function returns a string and the caller decides
// where to write it. With colour disabled the output is plain text.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/hand"
)

// HiddenCard stands in for the dealer's concealed cards
const HiddenCard = "?"

// Tone selects the style used for a result line
type Tone int

const (
	Neutral Tone = iota
	Win
	Loss
)

// Renderer formats game state for the terminal
type Renderer struct {
	styles Styles
	color  bool
}

// NewRenderer creates a renderer. When color is false styles are ignored.
func NewRenderer(styles Styles, color bool) *Renderer {
	return &Renderer{styles: styles, color: color}
}

// NewPlainRenderer creates a renderer that never emits escape codes
func NewPlainRenderer() *Renderer {
	return NewRenderer(Styles{}, false)
}

func (r *Renderer) paint(style lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return style.Render(text)
}

// Render shows the player's hand and score, and the dealer's hand. With
// hideDealer set only the dealer's first card is shown and the dealer's
// score is omitted.
func (r *Renderer) Render(player, dealer *hand.Hand, hideDealer bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s  %s %s\n",
		r.paint(r.styles.Label, "Player's hand:"),
		r.formatCards(player.Cards()),
		r.paint(r.styles.Label, "Score:"),
		r.paint(r.styles.Score, fmt.Sprintf("%d", player.Score())))

	if hideDealer {
		fmt.Fprintf(&b, "%s %s\n",
			r.paint(r.styles.Label, "Dealer's hand:"),
			r.formatConcealed(dealer))
		return b.String()
	}

	fmt.Fprintf(&b, "%s %s  %s %s\n",
		r.paint(r.styles.Label, "Dealer's hand:"),
		r.formatCards(dealer.Cards()),
		r.paint(r.styles.Label, "Score:"),
		r.paint(r.styles.Score, fmt.Sprintf("%d", dealer.Score())))

	return b.String()
}

// formatCards formats cards as "[10, 9]"
func (r *Renderer) formatCards(cards []deck.Rank) string {
	if !r.color {
		return hand.Format(cards)
	}

	formatted := make([]string, len(cards))
	for i, c := range cards {
		formatted[i] = r.paint(r.styles.Card, c.String())
	}
	return "[" + strings.Join(formatted, ", ") + "]"
}

func (r *Renderer) formatConcealed(dealer *hand.Hand) string {
	hidden := r.paint(r.styles.Hidden, HiddenCard)

	first, ok := dealer.First()
	if !ok {
		return "[" + hidden + "]"
	}
	return "[" + r.paint(r.styles.Card, first.String()) + ", " + hidden + "]"
}

// RenderResult styles a final result line
func (r *Renderer) RenderResult(text string, tone Tone) string {
	switch tone {
	case Win:
		return r.paint(r.styles.Win, text)
	case Loss:
		return r.paint(r.styles.Loss, text)
	default:
		return r.paint(r.styles.Tie, text)
	}
}

// RenderBanner styles the welcome banner
func (r *Renderer) RenderBanner(text string) string {
	return r.paint(r.styles.Banner, text)
}

// RenderPrompt styles an input prompt
func (r *Renderer) RenderPrompt(text string) string {
	return r.paint(r.styles.Prompt, text)
}

// RenderInfo styles a progress message such as "Dealer hits..."
func (r *Renderer) RenderInfo(text string) string {
	return r.paint(r.styles.Info, text)
}

// RenderError styles an error message
func (r *Renderer) RenderError(text string) string {
	return r.paint(r.styles.Error, text)
}
