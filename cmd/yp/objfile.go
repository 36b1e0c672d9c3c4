package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/yamprint/format"
)

func readArg(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getObjFile(cfg *MainConfig, cc *cli.Context, path string) (any, error) {
	d, err := readArg(cc, path)
	if err != nil {
		return nil, err
	}
	return format.Decode(cfg.inFormat(path), d)
}
