package game

import (
	"fmt"
	"strings"
)

// ParseAction parses a line of player input. Surrounding whitespace is
// ignored and matching is case-insensitive: "h" hits, "s" stands.
func ParseAction(line string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "h":
		return Hit, nil
	case "s":
		return Stand, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidAction, strings.TrimSpace(line))
}
