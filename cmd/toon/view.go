package main

import (
	"fmt"
	"io"
	"os"

	"github.com/toon-format/go-toon/encode"
	"github.com/toon-format/go-toon/ir"
	"github.com/toon-format/go-toon/parse"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		root, err := loadArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		if err := encode.Encode(root, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a path argument", cli.ErrUsage)
	}
	path := args[0]
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		root, err := loadArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		res := root.Get(path)
		if res == nil {
			// not found: encode nothing and don't yell either
			continue
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}

func loadArg(cfg *MainConfig, arg string) (*ir.Node, error) {
	var rc io.ReadCloser
	if arg == "-" {
		rc = io.NopCloser(os.Stdin)
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		rc = f
	}
	root, diags, err := parse.ParseReader(rc, cfg.parseOpts(arg)...)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", arg, err)
	}
	cfg.reportDiags(diags)
	return root, nil
}
