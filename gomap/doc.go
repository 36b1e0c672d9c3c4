// Package gomap builds *ir.Node trees from arbitrary Go values by
// reflection.
//
// # Usage
//
//	b := gomap.NewBuilder(gomap.DefaultRules())
//	node, err := b.Build(value)
//
// Structs, maps, slices and arrays become containers. Pointers, maps and
// non-empty slices carry identity: reaching one again while it is still
// being built yields a circular reference, and, with Rules.SkipAdjacent,
// reaching one that was built elsewhere yields an adjacent reference.
// Reference codes are assigned only to containers that are actually
// referenced, counting from 1 in each call to Build.
//
// Embedded structs contribute their fields one level down, the struct's
// own fields first. With Rules.Methods, zero argument methods are exposed
// as accessors and resolved according to Rules.SkipGetters.
//
// Traversal is bounded by Rules.MaxDepth and Rules.MaxObjectLength, which
// default to 10 and 100.
//
// # Related Packages
//
//   - github.com/signadot/yamprint/ir - node tree
//   - github.com/signadot/yamprint/encode - rendering
package gomap
