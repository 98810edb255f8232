package main

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	json "github.com/objkit/json-format/go-json"
)

func yamlRun(cfg *YamlConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Yaml.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, arg := range argsOrStdin(args) {
		d, err := readArg(arg)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", arg, err)
		}
		if cfg.From {
			err = yamlToJSON(cfg, cc, d)
		} else {
			err = jsonToYAML(cfg, cc, d)
		}
		if err != nil {
			return fmt.Errorf("error converting %s: %w", arg, err)
		}
	}
	return nil
}

func jsonToYAML(cfg *YamlConfig, cc *cli.Context, d []byte) error {
	// null maps to nil so YAML renders it as null rather than a
	// keyword string
	v, err := json.Decode(d, json.NullToNil())
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(out)
	return err
}

func yamlToJSON(cfg *YamlConfig, cc *cli.Context, d []byte) error {
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return err
	}
	buf, err := json.Encode(v, cfg.encodeOpts()...)
	if err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = cc.Out.Write(buf.Bytes())
	return err
}
