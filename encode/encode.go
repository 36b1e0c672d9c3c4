package encode

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/yamprint/debug"
	"github.com/signadot/yamprint/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	formatter *Formatter
	theme     Theme

	f *Formatter
	w *writer
}

// Encode renders node to w. The output has no trailing newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{formatter: DefaultFormatter()}
	for _, opt := range opts {
		opt(es)
	}
	es.f = es.formatter
	if len(es.theme) != 0 {
		es.f = es.f.Themed(es.theme)
	}
	es.w = newWriter(es.f.Indent)
	defer es.w.clear()

	es.print(node)
	out := es.w.output()
	if debug.Print() {
		debug.Logger().Debug("encode", "type", node.Type, "bytes", len(out))
	}
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return nil
}

func (es *EncState) print(node *ir.Node) {
	if s, ok := es.scalar(node); ok {
		es.w.writeLine(s)
		return
	}
	if hdr := es.header(node); hdr != "" {
		es.w.writeLine(hdr)
	}
	es.body(node)
}

// scalar returns the inline rendering of node, or false when node spans
// lines.
func (es *EncState) scalar(node *ir.Node) (string, bool) {
	f := es.f
	switch node.Type {
	case ir.NullType:
		return f.Null, true
	case ir.UndefinedType:
		return f.Undefined, true
	case ir.BoolType:
		return f.Bool(node.Bool), true
	case ir.NumberType:
		return f.Number(node.Number), true
	case ir.StringType:
		return f.String(node.String), true
	case ir.DateType:
		return f.Date(node.Time), true
	case ir.PatternType:
		return f.Pattern(node.String), true
	case ir.SymbolType:
		return f.Symbol(node.String), true
	case ir.FunctionType:
		return f.Function(node.String, node.Signature), true
	case ir.BinaryType:
		return f.Binary(node.Binary), true
	case ir.ReferenceType:
		return f.Reference(node.Reason, node.Ref), true
	case ir.ThrewType:
		return f.Threw(node.Target), true
	case ir.UnresolvedGetterType:
		return f.UnresolvedGetter, true
	case ir.LengthExceededType:
		return f.SizeExceeded(node.Rest), true
	case ir.EmptyObjectType:
		return es.anchored(f.EmptyObject(f.ConstructorTag(node.Ctor)), node.Ref), true
	case ir.EmptyArrayType:
		return es.anchored(f.EmptyArray, node.Ref), true
	case ir.ObjectType:
		if node.DepthExceeded {
			return es.anchored(f.ObjectDepthExceeded(f.ConstructorTag(node.Ctor)), node.Ref), true
		}
	case ir.ArrayType, ir.SparseArrayType:
		if node.DepthExceeded {
			return es.anchored(f.ArrayDepthExceeded, node.Ref), true
		}
	}
	return "", false
}

func (es *EncState) anchored(s string, ref int) string {
	if ref == 0 {
		return s
	}
	return s + " " + es.f.Anchor(ref)
}

// header is the opening line of a multi-line node: the constructor tag
// and reference anchor of a container.
func (es *EncState) header(node *ir.Node) string {
	var parts []string
	if node.Type == ir.ObjectType {
		if tag := es.f.ConstructorTag(node.Ctor); tag != "" {
			parts = append(parts, tag)
		}
	}
	if node.Ref != 0 {
		parts = append(parts, es.f.Anchor(node.Ref))
	}
	return strings.Join(parts, " ")
}

func (es *EncState) body(node *ir.Node) {
	switch node.Type {
	case ir.TextBlockType:
		for _, ln := range node.Lines {
			es.w.writeLine(es.f.MultilineMargin + ln)
		}
	case ir.ObjectType:
		for i, v := range node.Values {
			if v.Type == ir.LengthExceededType {
				es.w.writeLine(es.f.SizeExceeded(v.Rest))
				continue
			}
			es.property(node.Fields[i], v)
		}
	case ir.ArrayType:
		for _, v := range node.Values {
			es.item("", v)
		}
	case ir.SparseArrayType:
		for i, v := range node.Values {
			es.item(es.f.SparseIndex(node.Indexes[i]), v)
		}
	default:
		panic(fmt.Sprintf("encode: unexpected %s", node.Type))
	}
}

func (es *EncState) property(name string, v *ir.Node) {
	key := es.f.PropertyKey(name)
	if s, ok := es.scalar(v); ok {
		es.w.writeLine(key + s)
		return
	}
	es.w.writeLine(strings.TrimRight(key+es.header(v), " "))
	es.w.indent(1)
	es.body(v)
	es.w.indent(-1)
}

func (es *EncState) item(index string, v *ir.Node) {
	if v.Type == ir.LengthExceededType {
		es.w.writeLine(es.f.SizeExceeded(v.Rest))
		return
	}
	if s, ok := es.scalar(v); ok {
		es.w.writeLine(index + es.f.ArrayPrefix + s)
		return
	}
	es.w.write(index + es.f.ArrayPrefix)
	es.w.indent(1)
	es.print(v)
	es.w.indent(-1)
}
