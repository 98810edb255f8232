package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/objkit/json-format/go-json/encode"
	"github.com/objkit/json-format/go-json/parse"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, arg := range argsOrStdin(args) {
		if err := viewArg(cfg, cc.Out, arg); err != nil {
			return err
		}
	}
	return nil
}

func viewArg(cfg *ViewConfig, w io.Writer, arg string) error {
	d, err := readArg(arg)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", arg, err)
	}
	node, err := parse.Parse(d)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", arg, err)
	}
	if err := encode.Encode(node, w, cfg.encOpts(w, true)...); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}
