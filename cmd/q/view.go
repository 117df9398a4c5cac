package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/querable/encode"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, arg := range args {
		if err := viewFile(cfg, cc, cc.Out, arg); err != nil {
			return fmt.Errorf("error processing %s: %w", arg, err)
		}
		if i < len(args)-1 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, cc *cli.Context, w io.Writer, file string) error {
	n, err := getObjFile(cc, file)
	if err != nil {
		return err
	}
	return encode.Encode(n, w, cfg.encOpts(w)...)
}
