package encode

import (
	"strings"

	"github.com/fatih/color"
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Element]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Element]func(string, ...any) string{},
	}
	tag := color.RGB(74, 92, 138).SprintfFunc()
	marker := color.RGB(255, 0, 196).SprintfFunc()

	colors.Map[PropertyKey] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[ArrayPrefix] = color.RGB(196, 128, 128).SprintfFunc()
	colors.Map[SparseIndex] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[MultilineMargin] = color.RGB(96, 96, 96).SprintfFunc()

	colors.Map[String] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[Number] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[Bool] = color.CyanString
	colors.Map[Null] = color.RGB(168, 0, 196).SprintfFunc()
	colors.Map[Undefined] = color.RGB(168, 0, 196).SprintfFunc()
	colors.Map[Date] = color.RGB(198, 198, 46).SprintfFunc()
	colors.Map[Pattern] = color.RGB(88, 158, 86).SprintfFunc()
	colors.Map[Symbol] = color.BlueString
	colors.Map[Function] = color.BlueString
	colors.Map[Binary] = color.BlueString

	colors.Map[ConstructorTag] = tag
	colors.Map[EmptyObject] = tag
	colors.Map[EmptyArray] = tag
	colors.Map[ObjectDepthExceeded] = tag
	colors.Map[ArrayDepthExceeded] = tag
	colors.Map[Anchor] = color.RGB(196, 168, 128).SprintfFunc()

	colors.Map[Reference] = marker
	colors.Map[UnresolvedGetter] = marker
	colors.Map[SizeExceeded] = marker
	colors.Map[Threw] = color.New(color.FgRed, color.Bold).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(e Element, s string) string {
	return c.Get(e)(s)
}

func (c *Colors) Get(e Element) func(string, ...any) string {
	f := c.Map[e]
	if f == nil {
		return c.Default
	}
	return f
}

// Theme returns the colors as a Theme covering every element except
// Indent.
func (c *Colors) Theme() Theme {
	theme := Theme{}
	for _, e := range Elements() {
		if e == Indent {
			continue
		}
		f := c.Get(e)
		theme[e] = func(s string) string { return f(s) }
	}
	return theme
}

// NewColorTheme returns the default color theme.
func NewColorTheme() Theme {
	return NewColors().Theme()
}
