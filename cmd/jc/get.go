package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jcodec/ir"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	if _, err := ir.ParsePath(path); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	n := 0
	return cfg.eachInput(cc.In, args[1:], func(_ string, d []byte) error {
		return getBytes(cfg.MainConfig, cc.Out, d, path, &n)
	})
}

// getBytes writes the values at path in each document of d. Paths with
// [*] may select several values.
func getBytes(cfg *MainConfig, w io.Writer, d []byte, path string, n *int) error {
	return cfg.eachDoc(d, func(i int, node *ir.Node) error {
		res, err := node.ListPath(nil, path)
		if err != nil {
			return fmt.Errorf("document %d: %w", i, err)
		}
		if len(res) == 0 {
			return fmt.Errorf("document %d: nothing at %s", i, path)
		}
		for _, v := range res {
			if err := cfg.writeNode(w, v, *n > 0); err != nil {
				return err
			}
			*n++
		}
		return nil
	})
}
