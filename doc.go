// Package yamprint pretty-prints arbitrary Go values as indented,
// YAML-like text for debugging.
//
// # Usage
//
//	s, err := yamprint.Sprint(value)
//
//	p := yamprint.New(yamprint.MaxDepth(4), yamprint.SkipAdjacent(true))
//	err = p.Fprint(os.Stderr, value)
//
// Output is meant for people and cannot be parsed back. Cyclic values are
// safe: a container reached again while it is being printed is shown as a
// reference to its anchor, e.g.
//
//	|main.Node| #1
//	Name = 'a'
//	Next = ~Circular #1~
//
// Depth and per-container length are always bounded.
//
// # Related Packages
//
//   - github.com/signadot/yamprint/gomap - building node trees from values
//   - github.com/signadot/yamprint/encode - rendering and theming
package yamprint
