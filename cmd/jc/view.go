package main

import (
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jcodec/ir"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	n := 0
	return cfg.eachInput(cc.In, args, func(_ string, d []byte) error {
		return viewBytes(cfg.MainConfig, cc.Out, d, &n)
	})
}

// viewBytes writes each document of d, counting documents in n so that
// consecutive documents are separated.
func viewBytes(cfg *MainConfig, w io.Writer, d []byte, n *int) error {
	return cfg.eachDoc(d, func(_ int, node *ir.Node) error {
		defer node.Release()
		err := cfg.writeNode(w, node, *n > 0)
		*n++
		return err
	})
}
