// Package libdiff computes line diffs between renderings.
package libdiff

import (
	"strings"
	"unicode/utf8"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

func (o Op) Prefix() string {
	switch o {
	case Delete:
		return "- "
	case Insert:
		return "+ "
	default:
		return "  "
	}
}

type Line struct {
	Op   Op
	Text string
}

// Lines diffs from and to line by line. Each distinct line is mapped to a
// rune so the diff runs over whole lines.
func Lines(from, to string) []Line {
	lineMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapLinesTo(lineMap, runeMap, from)
	toRunes := mapLinesTo(lineMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	res := make([]Line, 0, max(len(fromRunes), len(toRunes)))
	for i := range diffs {
		diff := &diffs[i]
		op := Equal
		switch diff.Type {
		case diffpatch.DiffDelete:
			op = Delete
		case diffpatch.DiffInsert:
			op = Insert
		}
		for _, r := range diff.Text {
			res = append(res, Line{Op: op, Text: runeMap[r]})
		}
	}
	return res
}

// Changed reports whether any line differs.
func Changed(lines []Line) bool {
	for _, ln := range lines {
		if ln.Op != Equal {
			return true
		}
	}
	return false
}

// Format renders lines with "- ", "+ " and "  " prefixes, one per line.
func Format(lines []Line) string {
	var sb strings.Builder
	for i, ln := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(ln.Op.Prefix())
		sb.WriteString(ln.Text)
	}
	return sb.String()
}

func mapLinesTo(m map[string]rune, im map[rune]string, s string) []rune {
	lines := strings.Split(s, "\n")
	rs := make([]rune, len(lines))
	for i, ln := range lines {
		r, ok := m[ln]
		if !ok {
			r = rune(len(m))
			if r >= 0xD800 {
				// skip surrogates
				r += 0x800
			}
			if !utf8.ValidRune(r) {
				panic("libdiff: too many distinct lines")
			}
			m[ln] = r
			im[r] = ln
		}
		rs[i] = r
	}
	return rs
}
