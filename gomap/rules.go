package gomap

import (
	"log/slog"
	"reflect"
	"strings"

	"github.com/signadot/yamprint/debug"
)

const (
	DefaultMaxDepth        = 10
	DefaultMaxObjectLength = 100
)

// PropertyInfo describes a discovered property to a PropertyFilter.
type PropertyInfo struct {
	Name string
	// Owner is the type declaring the property.
	Owner reflect.Type
	// Level is the embedding depth of Owner below the value: 0 for the
	// value's own fields, 1 for fields of an embedded struct, and so on.
	Level int
	// Depth is the container nesting depth of the value in the tree.
	Depth int
	// Type is the static type of the property value.
	Type     reflect.Type
	Exported bool
	Accessor bool
}

type PropertyFilter func(PropertyInfo) bool

// PrototypeFilter decides whether the fields of an embedded struct type are
// promoted into the embedding value.
type PrototypeFilter func(reflect.Type) bool

// Rules are the exploration rules of a Builder. Zero values take their
// defaults in NewBuilder.
type Rules struct {
	MaxDepth        int
	MaxObjectLength int

	// SkipGetters leaves accessor methods uninvoked; they render as
	// unresolved getters. The zero value resolves them.
	SkipGetters bool

	PropertyFilter        PropertyFilter
	IsPrototypeExplorable PrototypeFilter

	// SkipAdjacent replaces a second encounter of an already built
	// container with a reference.
	SkipAdjacent bool

	// Methods exposes zero argument methods returning a value (or a value
	// and an error) as accessor properties.
	Methods bool

	// NumericSlicesAsBinary reports typed numeric slices as binary values
	// rather than arrays.
	NumericSlicesAsBinary bool

	// Sources are consulted, in order, before reflection.
	Sources []Source

	Logger *slog.Logger
}

// DefaultRules returns the rules used when none are given.
func DefaultRules() Rules {
	return Rules{
		MaxDepth:              DefaultMaxDepth,
		MaxObjectLength:       DefaultMaxObjectLength,
		PropertyFilter:        DefaultPropertyFilter,
		IsPrototypeExplorable: DefaultPrototypeExplorable,
	}
}

func (r Rules) withDefaults() Rules {
	if r.MaxDepth <= 0 {
		r.MaxDepth = DefaultMaxDepth
	}
	if r.MaxObjectLength <= 0 {
		r.MaxObjectLength = DefaultMaxObjectLength
	}
	if r.PropertyFilter == nil {
		r.PropertyFilter = DefaultPropertyFilter
	}
	if r.IsPrototypeExplorable == nil {
		r.IsPrototypeExplorable = DefaultPrototypeExplorable
	}
	if r.Logger == nil {
		r.Logger = debug.Logger()
	}
	return r
}

// DefaultPropertyFilter admits exported properties.
func DefaultPropertyFilter(p PropertyInfo) bool {
	return p.Exported
}

// DefaultPrototypeExplorable promotes every embedded struct except the
// synchronization primitives, whose state is noise.
func DefaultPrototypeExplorable(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.PkgPath() {
	case "sync", "sync/atomic":
		return false
	}
	return !strings.HasPrefix(t.PkgPath(), "sync/")
}
