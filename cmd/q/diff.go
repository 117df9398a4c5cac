package main

import (
	"fmt"
	"io"
	"os"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/querable"
	"github.com/signadot/querable/encode"
	"github.com/signadot/querable/node"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	from, err := diffArg(cfg, cc, args[0])
	if err != nil {
		return err
	}
	to, err := diffArg(cfg, cc, args[1])
	if err != nil {
		return err
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(from, to, true)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	return writeDiffs(cfg.MainConfig, cc.Out, diffCfg, diffs)
}

func diffArg(cfg *DiffConfig, cc *cli.Context, arg string) (string, error) {
	n, err := getObjFile(cc, arg)
	if err != nil {
		return "", fmt.Errorf("error decoding %s: %w", arg, err)
	}
	if cfg.Path != "" {
		res, err := querable.Query(n, cfg.Path, cfg.tokenizer(cfg.Path))
		if err != nil {
			return "", fmt.Errorf("error querying %s with %s: %w", arg, cfg.Path, err)
		}
		n = res.(*node.Node)
	}
	// diffs run on uncolored text
	var opts []encode.EncodeOption
	if cfg.OutFormat != nil {
		opts = append(opts, encode.EncodeFormat(*cfg.OutFormat))
	}
	return encode.MustString(n, opts...), nil
}

func writeDiffs(cfg *MainConfig, w io.Writer, diffCfg *diffpatch.DiffMatchPatch, diffs []diffpatch.Diff) error {
	color := cfg.Color
	if !color {
		if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			color = true
		}
	}
	if color {
		_, err := io.WriteString(w, diffCfg.DiffPrettyText(diffs))
		return err
	}
	for _, d := range diffs {
		var mark string
		switch d.Type {
		case diffpatch.DiffInsert:
			mark = "+"
		case diffpatch.DiffDelete:
			mark = "-"
		case diffpatch.DiffEqual:
			_, err := io.WriteString(w, d.Text)
			if err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s{%s}", mark, d.Text); err != nil {
			return err
		}
	}
	return nil
}
