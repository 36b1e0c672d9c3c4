package yamprint

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/yamprint/encode"
	"github.com/signadot/yamprint/gomap"
)

// Printer renders Go values. A Printer reuses its builder between calls
// and must not be used concurrently.
type Printer struct {
	rules     gomap.Rules
	formatter *encode.Formatter
	theme     encode.Theme

	builder *gomap.Builder
}

func New(opts ...Option) *Printer {
	p := &Printer{
		rules:     gomap.DefaultRules(),
		formatter: encode.DefaultFormatter(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.builder = gomap.NewBuilder(p.rules)
	return p
}

// Extend returns a new Printer with the configuration of p overridden by
// opts. p is not modified.
func (p *Printer) Extend(opts ...Option) *Printer {
	q := &Printer{
		rules:     p.rules,
		formatter: p.formatter,
		theme:     p.theme,
	}
	for _, opt := range opts {
		opt(q)
	}
	q.builder = gomap.NewBuilder(q.rules)
	return q
}

// Sprint renders v without a trailing newline.
func (p *Printer) Sprint(v any) (string, error) {
	node, err := p.builder.Build(v)
	if err != nil {
		return "", err
	}
	buf := &strings.Builder{}
	err = encode.Encode(node, buf, encode.EncodeFormatter(p.formatter), encode.EncodeTheme(p.theme))
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Fprint writes the rendering of v followed by a newline.
func (p *Printer) Fprint(w io.Writer, v any) error {
	s, err := p.Sprint(v)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, s+"\n"); err != nil {
		return fmt.Errorf("%w: %w", encode.ErrEncoding, err)
	}
	return nil
}

func (p *Printer) MustSprint(v any) string {
	s, err := p.Sprint(v)
	if err != nil {
		panic(err)
	}
	return s
}

// Sprint renders v with the default configuration.
func Sprint(v any) (string, error) {
	return New().Sprint(v)
}

// Fprint writes v with the default configuration.
func Fprint(w io.Writer, v any) error {
	return New().Fprint(w, v)
}
