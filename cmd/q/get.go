package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/querable"
	"github.com/signadot/querable/encode"
	"github.com/signadot/querable/node"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an object path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	return getFiles(cfg.MainConfig, cc, cc.Out, path, args)
}

func getFiles(cfg *MainConfig, cc *cli.Context, w io.Writer, path string, files []string) error {
	for i, arg := range files {
		if err := queryArg(cfg, cc, w, arg, path); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
		}
		if i < len(files)-1 {
			if _, err := w.Write([]byte("---\n")); err != nil {
				return err
			}
		}
	}
	return nil
}

func queryArg(cfg *MainConfig, cc *cli.Context, w io.Writer, arg, path string) error {
	target, err := getObjFile(cc, arg)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", arg, err)
	}
	res, err := querable.Query(target, path, cfg.tokenizer(path))
	if err != nil {
		return err
	}
	if err := encode.Encode(res.(*node.Node), w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
