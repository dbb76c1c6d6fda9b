package main

import (
	"fmt"
	"os"

	"github.com/toon-format/go-toon/encode"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/mattn/go-isatty"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two file arguments", cli.ErrUsage)
	}
	a, err := loadArg(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	b, err := loadArg(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	aText := encode.MustString(a)
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(aText, encode.MustString(b), true)
	var out string
	if colorOut(cfg.MainConfig, cc) {
		out = dmp.DiffPrettyText(diffs)
	} else {
		out = dmp.PatchToText(dmp.PatchMake(aText, diffs))
	}
	_, err = cc.Out.Write([]byte(out + "\n"))
	return err
}

func colorOut(cfg *MainConfig, cc *cli.Context) bool {
	if cfg.Color {
		return true
	}
	f, ok := cc.Out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
