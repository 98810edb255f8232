package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	json "github.com/objkit/json-format/go-json"
	"github.com/objkit/json-format/go-json/encode"
)

type MainConfig struct {
	P     bool `cli:"name=p aliases=pretty desc='pretty output with 2-space indent'"`
	Color bool `cli:"name=color desc='encode with color'"`
	K     bool `cli:"name=k aliases=keywords desc='decode object keys as keywords'"`
	N     bool `cli:"name=n aliases=nils desc='decode null as nil'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) decodeOpts() []json.DecodeOption {
	var res []json.DecodeOption
	if cfg.K {
		res = append(res, json.KeywordKeys())
	}
	if cfg.N {
		res = append(res, json.NullToNil())
	}
	return res
}

func (cfg *MainConfig) encodeOpts() []json.EncodeOption {
	var res []json.EncodeOption
	if cfg.P {
		res = append(res, json.Pretty())
	}
	return res
}

// encOpts selects the document-level encoding options, turning on
// color for terminals unless -color forces it either way.
func (cfg *MainConfig) encOpts(w io.Writer, pretty bool) []encode.EncodeOption {
	var res []encode.EncodeOption
	if pretty {
		res = append(res, encode.Pretty())
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type FmtConfig struct {
	*MainConfig

	Fmt *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Query *cli.Command
}

type YamlConfig struct {
	*MainConfig

	From bool `cli:"name=from desc='convert yaml input to json instead'"`

	Yaml *cli.Command
}
