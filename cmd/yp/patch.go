package main

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
	"github.com/signadot/yamprint/format"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a patch, and a file to which to apply it", cli.ErrUsage)
	}
	pd := []byte(args[0])
	if !cfg.String {
		pd, err = readArg(cc, args[0])
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	ops, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return fmt.Errorf("error decoding patch: %w", err)
	}
	target, err := readArg(cc, args[1])
	if err != nil {
		return fmt.Errorf("error reading %s: %w", args[1], err)
	}
	res, err := ops.Apply(target)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[1], err)
	}
	doc, err := format.Decode(format.JSONFormat, res)
	if err != nil {
		return fmt.Errorf("error decoding result: %w", err)
	}
	p, err := cfg.printer(cc.Out)
	if err != nil {
		return err
	}
	if err := p.Fprint(cc.Out, doc); err != nil {
		return fmt.Errorf("error printing result: %w", err)
	}
	return nil
}
