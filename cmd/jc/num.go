package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jcodec/numconv"
)

func num(cfg *NumConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Num.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: num requires at least one number", cli.ErrUsage)
	}
	return convertNums(cfg, cc.Out, args)
}

func convertNums(cfg *NumConfig, w io.Writer, args []string) error {
	for _, arg := range args {
		v, err := numconv.ParseFloat(arg, cfg.From)
		if err != nil {
			return fmt.Errorf("%q in base %d: %w", arg, cfg.From, err)
		}
		var s string
		if cfg.Sci {
			s = numconv.FormatScientific(v)
		} else {
			s, err = numconv.FormatFloat(v, cfg.To)
			if err != nil {
				return fmt.Errorf("%q to base %d: %w", arg, cfg.To, err)
			}
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}
