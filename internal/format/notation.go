package format

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownNotation is returned by ParseNotation for unrecognized names.
var ErrUnknownNotation = errors.New("unknown notation")

// Notation selects how the shortest digits are laid out as text.
type Notation uint8

const (
	// Plain picks fixed or scientific notation, whichever is shorter, and
	// fixed notation on a tie.
	Plain Notation = iota
	// Scientific always uses d[.ddd]e±XX with at least two exponent digits.
	Scientific
	// Fixed always uses positional notation, padding with zeros.
	Fixed
)

var notationNames = [...]string{"plain", "scientific", "fixed"}

// String returns the lowercase name of n.
func (n Notation) String() string {
	if int(n) < len(notationNames) {
		return notationNames[n]
	}
	return fmt.Sprintf("notation(%d)", n)
}

// ParseNotation converts a name (case-insensitive) into a Notation.
// The empty string yields Plain.
func ParseNotation(s string) (Notation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "plain", "shortest":
		return Plain, nil
	case "scientific", "sci", "e":
		return Scientific, nil
	case "fixed", "f":
		return Fixed, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownNotation, s)
	}
}
