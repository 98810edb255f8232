package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/objkit/json-format/go-json/encode"
	"github.com/objkit/json-format/go-json/parse"
)

func fmtRun(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, arg := range argsOrStdin(args) {
		if err := fmtArg(cfg, cc.Out, arg, cfg.P); err != nil {
			return err
		}
	}
	return nil
}

func fmtArg(cfg *FmtConfig, w io.Writer, arg string, pretty bool) error {
	d, err := readArg(arg)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", arg, err)
	}
	node, err := parse.Parse(d)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", arg, err)
	}
	if err := encode.Encode(node, w, cfg.encOpts(w, pretty)...); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}
