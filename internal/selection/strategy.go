// Package selection implements the selection state machine shared by the
// list, dropdown and combobox widgets.
package selection

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStrategy is returned by ParseStrategy for unrecognised names.
var ErrUnknownStrategy = errors.New("unknown selection strategy")

// Strategy decides how a click changes the selection. It is fixed for the
// lifetime of one Engine.
type Strategy int

// Selection strategies.
const (
	// Default is single select, replace only.
	Default Strategy = iota
	// Deselectable is single select; clicking the selected item clears it.
	Deselectable
	// Multiple toggles items and keeps first-toggle-on order.
	Multiple
	// Extended has file-explorer range semantics driven by ctrl and shift.
	Extended
)

// String returns the config name of the strategy.
func (s Strategy) String() string {
	switch s {
	case Default:
		return "default"
	case Deselectable:
		return "deselectable"
	case Multiple:
		return "multiple"
	case Extended:
		return "extended"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Multi reports whether the strategy can hold more than one item.
func (s Strategy) Multi() bool { return s == Multiple || s == Extended }

// ParseStrategy maps a config name to a Strategy. The empty string is Default.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default", "single":
		return Default, nil
	case "deselectable":
		return Deselectable, nil
	case "multiple", "multi":
		return Multiple, nil
	case "extended":
		return Extended, nil
	}
	return Default, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}
