package display

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles contains styling for the game display
type Styles struct {
	Banner lipgloss.Style
	Label  lipgloss.Style // "Player's hand:"
	Card   lipgloss.Style
	Hidden lipgloss.Style // concealed dealer card
	Score  lipgloss.Style
	Prompt lipgloss.Style
	Info   lipgloss.Style
	Error  lipgloss.Style
	Win    lipgloss.Style
	Loss   lipgloss.Style
	Tie    lipgloss.Style
}

// DefaultStyles returns the default colour theme
func DefaultStyles() Styles {
	return Styles{
		Banner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("#74B9FF")),
		Card:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Bold(true),
		Hidden: lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
		Score:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
		Info:   lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Win:    lipgloss.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		Loss:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Tie:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FFEAA7")).Bold(true),
	}
}

// HighContrastStyles uses the basic ANSI palette so it reads on any background
func HighContrastStyles() Styles {
	return Styles{
		Banner: lipgloss.NewStyle().Reverse(true).Padding(0, 1).Bold(true),
		Label:  lipgloss.NewStyle().Bold(true),
		Card:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
		Hidden: lipgloss.NewStyle().Faint(true),
		Score:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Info:   lipgloss.NewStyle().Faint(true),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Win:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Loss:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Tie:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	}
}

var themes = map[string]func() Styles{
	"default":       DefaultStyles,
	"high-contrast": HighContrastStyles,
}

// Themes returns the names of the available themes
func Themes() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeStyles looks up a theme by name
func ThemeStyles(name string) (Styles, error) {
	fn, ok := themes[name]
	if !ok {
		return Styles{}, fmt.Errorf("unknown theme %q", name)
	}
	return fn(), nil
}

// ColorProfile reports the colour profile supported by w, honouring
// NO_COLOR and CLICOLOR_FORCE. Non-terminals get termenv.Ascii.
func ColorProfile(w io.Writer) termenv.Profile {
	return termenv.NewOutput(w).EnvColorProfile()
}

// SupportsColor returns true if w can render colour
func SupportsColor(w io.Writer) bool {
	return ColorProfile(w) != termenv.Ascii
}
