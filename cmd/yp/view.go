package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	"github.com/signadot/yamprint/debug"
	"github.com/signadot/yamprint/format"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	p, err := cfg.printer(cc.Out)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	n := 0
	for _, file := range args {
		d, err := readArg(cc, file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		f := cfg.inFormat(file)
		docs, err := format.DecodeAll(f, d)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		debug.Logger().Debug("view", "file", file, "format", f, "docs", len(docs))
		for i, doc := range docs {
			if n > 0 {
				if _, err := io.WriteString(cc.Out, "---\n"); err != nil {
					return fmt.Errorf("error writing document %d: %w", i, err)
				}
			}
			if err := p.Fprint(cc.Out, doc); err != nil {
				return fmt.Errorf("error printing document %d of %s: %w", i, file, err)
			}
			n++
		}
	}
	return nil
}
