package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	json "github.com/objkit/json-format/go-json"
	"github.com/objkit/json-format/go-json/query"
)

func queryRun(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires one argument, an expression", cli.ErrUsage)
	}
	src := args[0]
	for _, arg := range argsOrStdin(args[1:]) {
		d, err := readArg(arg)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", arg, err)
		}
		v, err := json.Decode(d, cfg.decodeOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		res, err := query.Eval(src, v)
		if err != nil {
			return fmt.Errorf("error querying %s with %q: %w", arg, src, err)
		}
		buf, err := json.Encode(res, cfg.encodeOpts()...)
		if err != nil {
			return err
		}
		buf.WriteByte('\n')
		if _, err := cc.Out.Write(buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}
