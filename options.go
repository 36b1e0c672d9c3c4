package yamprint

import (
	"log/slog"
	"reflect"

	"github.com/signadot/yamprint/encode"
	"github.com/signadot/yamprint/gomap"
)

type Option func(*Printer)

// MaxDepth bounds container nesting. Values of 0 or less select the
// default of 10.
func MaxDepth(n int) Option {
	return func(p *Printer) { p.rules.MaxDepth = n }
}

// MaxObjectLength bounds the number of properties or elements rendered per
// container. Values of 0 or less select the default of 100.
func MaxObjectLength(n int) Option {
	return func(p *Printer) { p.rules.MaxObjectLength = n }
}

func ResolveGetters(v bool) Option {
	return func(p *Printer) { p.rules.SkipGetters = !v }
}

func PropertyFilter(f gomap.PropertyFilter) Option {
	return func(p *Printer) { p.rules.PropertyFilter = f }
}

func PrototypeExplorable(f func(reflect.Type) bool) Option {
	return func(p *Printer) { p.rules.IsPrototypeExplorable = f }
}

// SkipAdjacent prints containers reached more than once in full only the
// first time.
func SkipAdjacent(v bool) Option {
	return func(p *Printer) { p.rules.SkipAdjacent = v }
}

// Methods exposes zero argument methods as accessor properties.
func Methods(v bool) Option {
	return func(p *Printer) { p.rules.Methods = v }
}

func NumericSlicesAsBinary(v bool) Option {
	return func(p *Printer) { p.rules.NumericSlicesAsBinary = v }
}

// WithSource adds a property source, consulted before reflection and
// after sources added earlier.
func WithSource(s gomap.Source) Option {
	return func(p *Printer) {
		p.rules.Sources = append(p.rules.Sources[:len(p.rules.Sources):len(p.rules.Sources)], s)
	}
}

func WithFormatter(f *encode.Formatter) Option {
	return func(p *Printer) { p.formatter = f }
}

func WithTheme(t encode.Theme) Option {
	return func(p *Printer) { p.theme = t }
}

// WithColor selects the default terminal color theme, or no theme.
func WithColor(v bool) Option {
	return func(p *Printer) {
		if v {
			p.theme = encode.NewColorTheme()
		} else {
			p.theme = nil
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(p *Printer) { p.rules.Logger = l }
}
