package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	"github.com/signadot/yamprint"
	"github.com/signadot/yamprint/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if cfg.Reverse {
		args[0], args[1] = args[1], args[0]
	}
	y1, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	y2, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	differs, err := diffInputs(cfg, cc.Out, y1, y2)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// diffInputs compares uncolored renderings. Colors, when enabled, mark
// the diff lines instead.
func diffInputs(cfg *DiffConfig, w io.Writer, a, b any) (bool, error) {
	c, err := cfg.settings()
	if err != nil {
		return false, err
	}
	p, err := cfg.printer(w, yamprint.WithColor(false))
	if err != nil {
		return false, err
	}
	from, err := p.Sprint(a)
	if err != nil {
		return false, fmt.Errorf("error printing first input: %w", err)
	}
	to, err := p.Sprint(b)
	if err != nil {
		return false, fmt.Errorf("error printing second input: %w", err)
	}
	lines := libdiff.Lines(from, to)
	if !libdiff.Changed(lines) {
		return false, nil
	}
	useColor := c.UseColor(w)
	for _, ln := range lines {
		s := ln.Op.Prefix() + ln.Text
		if useColor {
			switch ln.Op {
			case libdiff.Delete:
				s = color.RedString("%s", s)
			case libdiff.Insert:
				s = color.GreenString("%s", s)
			}
		}
		if _, err := io.WriteString(w, s+"\n"); err != nil {
			return false, fmt.Errorf("error writing diff: %w", err)
		}
	}
	return true, nil
}
