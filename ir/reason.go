package ir

import "fmt"

// Reason says why a ReferenceType node stands in for a value.
type Reason int

const (
	// Circular marks a back edge to a container on the current path.
	Circular Reason = iota
	// Adjacent marks a second encounter of a container that was already
	// fully built elsewhere.
	Adjacent
	// Unevaluated marks a value the builder could not read.
	Unevaluated
)

func (r Reason) String() string {
	switch r {
	case Circular:
		return "circular"
	case Adjacent:
		return "adjacent"
	case Unevaluated:
		return "unevaluated"
	default:
		return fmt.Sprintf("<reason %d>", int(r))
	}
}
