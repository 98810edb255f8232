package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	json "github.com/objkit/json-format/go-json"
	"github.com/objkit/json-format/go-json/textdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	vals := make([]any, 2)
	for i, arg := range args {
		d, err := readArg(arg)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", arg, err)
		}
		v, err := json.Decode(d, cfg.decodeOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		vals[i] = v
	}
	res, err := textdiff.Diff(vals[0], vals[1])
	if err != nil {
		return err
	}
	if res == "" {
		return nil
	}
	if _, err := cc.Out.Write([]byte(res)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
