package yamprint

import "github.com/signadot/yamprint/libdiff"

// Diff renders a and b and returns a line diff of the two renderings, or
// the empty string when they are the same.
func Diff(a, b any, opts ...Option) (string, error) {
	return New(opts...).Diff(a, b)
}

func (p *Printer) Diff(a, b any) (string, error) {
	from, err := p.Sprint(a)
	if err != nil {
		return "", err
	}
	to, err := p.Sprint(b)
	if err != nil {
		return "", err
	}
	if from == to {
		return "", nil
	}
	return libdiff.Format(libdiff.Lines(from, to)), nil
}
