package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jcodec"
	"github.com/signadot/jcodec/encode"
	"github.com/signadot/jcodec/ir"
	"github.com/signadot/jcodec/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if cfg.Text && cfg.Merge {
		return fmt.Errorf("%w: at most one of -text -merge", cli.ErrUsage)
	}
	a, err := cfg.readDoc(cc.In, args[0])
	if err != nil {
		return err
	}
	b, err := cfg.readDoc(cc.In, args[1])
	if err != nil {
		return err
	}
	differs, err := diffNodes(cfg, cc.Out, a, b)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// diffNodes writes the differences between a and b in the form cfg
// selects and reports whether there were any.
func diffNodes(cfg *DiffConfig, w io.Writer, a, b *ir.Node) (bool, error) {
	if ir.Equal(a, b, cfg.Eps) {
		return false, nil
	}
	switch {
	case cfg.Merge:
		p, err := jcodec.CreateMergePatch(a, b)
		if err != nil {
			return true, err
		}
		return true, cfg.writeNode(w, p, false)
	case cfg.Text:
		_, err := io.WriteString(w, libdiff.LineDiff(indented(a), indented(b)))
		return true, err
	}
	ds := libdiff.Diff(a, b, cfg.Eps)
	if cfg.Verbose {
		theLog.Info("diff", "differences", len(ds))
	}
	for _, d := range ds {
		if _, err := fmt.Fprintln(w, d.String()); err != nil {
			return true, err
		}
	}
	return true, nil
}

func indented(node *ir.Node) string {
	return string(encode.Marshal(node, encode.Indent(2))) + "\n"
}
