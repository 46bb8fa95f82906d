package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jcodec"
	"github.com/signadot/jcodec/parse"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	bad := 0
	err = cfg.eachInput(cc.In, args, func(file string, d []byte) error {
		ok, err := checkBytes(cfg, cc.Out, file, d)
		if !ok {
			bad++
		}
		return err
	})
	if err != nil {
		return err
	}
	if bad != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkBytes validates d, printing "file: ok" or one line per message
// unless quiet.
func checkBytes(cfg *CheckConfig, w io.Writer, file string, d []byte) (bool, error) {
	var (
		ok   bool
		msgs []string
	)
	if cfg.inFormat().IsJSON() {
		ok, msgs = jcodec.IsValid(d)
	} else {
		node, err := parse.Parse(d, cfg.parseOpts()...)
		ok, msgs = err == nil, jcodec.Messages(err)
		if ok {
			node.Release()
		}
	}
	if cfg.Quiet {
		return ok, nil
	}
	if ok {
		_, err := fmt.Fprintf(w, "%s: ok\n", file)
		return ok, err
	}
	for _, msg := range msgs {
		if _, err := fmt.Fprintf(w, "%s: %s\n", file, msg); err != nil {
			return ok, err
		}
	}
	return ok, nil
}
