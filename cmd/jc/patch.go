package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jcodec"
	"github.com/signadot/jcodec/encode"
	"github.com/signadot/jcodec/ir"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	p, err := cfg.readInput(cc.In, args[0])
	if err != nil {
		return err
	}
	n := 0
	return cfg.eachInput(cc.In, args[1:], func(_ string, d []byte) error {
		return patchBytes(cfg, cc.Out, d, p, &n)
	})
}

// patchBytes applies p to each document of d.
func patchBytes(cfg *PatchConfig, w io.Writer, d, p []byte, n *int) error {
	apply := jcodec.Patch
	if cfg.Merge {
		apply = jcodec.MergePatch
	}
	return cfg.eachDoc(d, func(i int, node *ir.Node) error {
		res, err := apply(encode.Marshal(node), p)
		node.Release()
		if err != nil {
			return fmt.Errorf("error patching document %d: %w", i, err)
		}
		err = cfg.writeNode(w, res, *n > 0)
		*n++
		return err
	})
}
