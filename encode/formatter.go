package encode

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/signadot/yamprint/ir"
)

// Formatter is the table of glyphs and render functions used by Encode.
// Formatters are not modified once built; Themed returns a new one.
type Formatter struct {
	Indent             string
	ArrayPrefix        string
	MultilineMargin    string
	Null               string
	Undefined          string
	EmptyArray         string
	UnresolvedGetter   string
	ArrayDepthExceeded string

	PropertyKey         func(name string) string
	String              func(s string) string
	Number              func(n any) string
	Bool                func(b bool) string
	Date                func(t time.Time) string
	Pattern             func(src string) string
	Symbol              func(desc string) string
	Function            func(name, signature string) string
	Binary              func(b ir.Binary) string
	ConstructorTag      func(c ir.Ctor) string
	EmptyObject         func(tag string) string
	Anchor              func(ref int) string
	Reference           func(reason ir.Reason, ref int) string
	Threw               func(target ir.Ctor) string
	SizeExceeded        func(rest int) string
	ObjectDepthExceeded func(tag string) string
	SparseIndex         func(i int64) string
}

var defaultFormatter = Formatter{
	Indent:             "  ",
	ArrayPrefix:        "► ",
	MultilineMargin:    "| ",
	Null:               "null",
	Undefined:          "undefined",
	EmptyArray:         "[]",
	UnresolvedGetter:   "~getter~",
	ArrayDepthExceeded: "[…]",

	PropertyKey:         formatKey,
	String:              func(s string) string { return "'" + s + "'" },
	Number:              formatNumber,
	Bool:                strconv.FormatBool,
	Date:                func(t time.Time) string { return t.Format(time.RFC3339Nano) },
	Pattern:             func(src string) string { return "/" + src + "/" },
	Symbol:              func(desc string) string { return "Symbol(" + desc + ")" },
	Function:            formatFunction,
	Binary:              formatBinary,
	ConstructorTag:      formatCtorTag,
	EmptyObject:         func(tag string) string { return withTag(tag, "{}") },
	Anchor:              func(ref int) string { return "#" + strconv.Itoa(ref) },
	Reference:           formatReference,
	Threw:               formatThrew,
	SizeExceeded:        formatSizeExceeded,
	ObjectDepthExceeded: func(tag string) string { return withTag(tag, "{…}") },
	SparseIndex:         func(i int64) string { return "(" + strconv.FormatInt(i, 10) + ") " },
}

// DefaultFormatter returns a copy of the base formatter.
func DefaultFormatter() *Formatter {
	f := defaultFormatter
	return &f
}

var bareKey = regexp.MustCompile(`^[A-Za-z0-9_$]+$`)

func formatKey(name string) string {
	if !bareKey.MatchString(name) {
		name = "'" + name + "'"
	}
	return name + " = "
}

func formatNumber(n any) string {
	switch v := n.(type) {
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return formatFloat(float64(v), 32)
	case float64:
		return formatFloat(v, 64)
	default:
		return fmt.Sprint(v)
	}
}

func formatFloat(f float64, bits int) string {
	abs := math.Abs(f)
	if abs != 0 && (abs >= 1e21 || abs < 1e-6) {
		return strconv.FormatFloat(f, 'g', -1, bits)
	}
	return strconv.FormatFloat(f, 'f', -1, bits)
}

func formatFunction(name, signature string) string {
	if name == "" {
		return "|" + signature + "|"
	}
	return "|func " + name + strings.TrimPrefix(signature, "func") + "|"
}

func formatBinary(b ir.Binary) string {
	return fmt.Sprintf("|%s %s[%d]|", b.Kind, b.Elem, b.Length)
}

func formatCtorTag(c ir.Ctor) string {
	var line string
	switch {
	case c.IsError():
		line = c.Name
		if c.Message != "" {
			line += fmt.Sprintf("(%q)", c.Message)
		}
	case c.Plain:
		return ""
	case c.Anonymous || c.Name == "":
		line = "~anonymous~"
	default:
		line = c.Name
	}
	return "|" + line + "|"
}

// withTag prefixes s with a constructor tag already rendered by
// ConstructorTag.
func withTag(tag, s string) string {
	if tag == "" {
		return s
	}
	return tag + " " + s
}

func formatReference(reason ir.Reason, ref int) string {
	switch reason {
	case ir.Circular:
		return fmt.Sprintf("~Circular #%d~", ref)
	case ir.Adjacent:
		return fmt.Sprintf("~Adjacent #%d~", ref)
	default:
		return "~Unevaluated~"
	}
}

func formatThrew(target ir.Ctor) string {
	line := "THREW " + target.Name
	if target.Message != "" {
		line += fmt.Sprintf("(%q)", target.Message)
	}
	return "‼ " + line + " ‼"
}

func formatSizeExceeded(rest int) string {
	if rest < 0 {
		return "~size exceeded~"
	}
	return fmt.Sprintf("~size exceeded, %d more~", rest)
}
