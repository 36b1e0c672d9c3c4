// Package encode renders IR nodes as indented, YAML-like text.
//
// # Usage
//
//	node := ir.FromFields(ir.PlainCtor("map[string]any"),
//	    []string{"name", "age"},
//	    []*ir.Node{ir.FromString("alice"), ir.FromInt(30)})
//	err := encode.Encode(node, os.Stdout)
//
//	// With colors
//	err = encode.Encode(node, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// Every glyph comes from a Formatter. A Theme wraps selected formatter
// entries, for instance to add terminal colors, without changing the base
// formatter.
//
// # Related Packages
//
//   - github.com/signadot/yamprint/ir - node tree
//   - github.com/signadot/yamprint/gomap - building nodes from Go values
package encode
