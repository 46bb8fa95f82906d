package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jcodec/eval"
	"github.com/signadot/jcodec/ir"
	"github.com/signadot/jcodec/parse"
)

func evalCmd(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	src := args[0]
	allTrue := true
	n := 0
	err = cfg.eachInput(cc.In, args[1:], func(_ string, d []byte) error {
		ok, err := evalBytes(cfg, cc.Out, d, src, &n)
		allTrue = allTrue && ok
		return err
	})
	if err != nil {
		return err
	}
	if cfg.Test && !allTrue {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// evalBytes evaluates src against each document of d and reports
// whether every result was truthy. Results are written unless testing.
func evalBytes(cfg *EvalConfig, w io.Writer, d []byte, src string, n *int) (bool, error) {
	allTrue := true
	err := cfg.eachDoc(d, func(i int, node *ir.Node) error {
		res, err := eval.EvalEnv(node, src, cfg.Env)
		if err != nil {
			return fmt.Errorf("error evaluating document %d: %w", i, err)
		}
		allTrue = allTrue && ir.Truth(res)
		if cfg.Test {
			return nil
		}
		err = cfg.writeNode(w, res, *n > 0)
		*n++
		return err
	})
	return allTrue, err
}

// envFunc sets a.b.c=val in env. The value is read as JSON when it
// parses and taken as a string otherwise.
func envFunc(env eval.Env, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected name=val", cli.ErrUsage, a)
	}
	var v any = val
	if node, err := parse.Parse([]byte(val)); err == nil {
		v = ir.ToAny(node)
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmpEnv := map[string]any(env)
	for i, part := range parts {
		if i == n-1 {
			tmpEnv[part] = v
			break
		}
		next := tmpEnv[part]
		if next == nil {
			next = map[string]any{}
			tmpEnv[part] = next
		}
		nextEnv, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot access %s, array or scalar", strings.Join(parts[:i+1], "."))
		}
		tmpEnv = nextEnv
	}
	return nil
}
