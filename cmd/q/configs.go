package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/querable/encode"
	"github.com/signadot/querable/format"
	"github.com/signadot/querable/token"
)

type MainConfig struct {
	Y     bool `cli:"name=y aliases=yaml desc='output in yaml'"`
	J     bool `cli:"name=j aliases=json desc='output in json'"`
	Color bool `cli:"name=color desc='encode with color'"`
	Slash bool `cli:"name=slash aliases=s desc='use slash path syntax'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, v string) (any, error) {
	f, err := os.Create(v)
	if err != nil {
		return nil, fmt.Errorf("could not create %q: %w", v, err)
	}
	cfg.Out = v
	cfg.CloseOut = f.Close
	cc.Out = f
	return v, nil
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// tokenizer picks the path syntax: -slash selects the slash strategy,
// as does a path that begins with '/'.
func (cfg *MainConfig) tokenizer(path string) token.Tokenizer {
	if cfg.Slash || (path != "" && path[0] == '/') {
		return token.Slash{}
	}
	return token.Default{}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var fmat format.Format
	switch {
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
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

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Path string `cli:"name=p desc='path to resolve in both documents before diffing'"`

	Diff *cli.Command
}
