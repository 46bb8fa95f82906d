package eval

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/signadot/jcodec/debug"
	"github.com/signadot/jcodec/encode"
	"github.com/signadot/jcodec/ir"
)

// Env holds the variables visible to an expression.
type Env map[string]any

// Eval runs the expression src against doc and returns its result as a
// tree. The document is bound to the variable doc; getpath, listpath,
// keys and tojson are available as functions.
func Eval(doc *ir.Node, src string) (*ir.Node, error) {
	return EvalEnv(doc, src, Env{})
}

// EvalEnv is Eval with extra variables. A variable named doc is replaced
// by the document.
func EvalEnv(doc *ir.Node, src string, env Env) (*ir.Node, error) {
	runEnv := make(Env, len(env)+1)
	for k, v := range env {
		runEnv[k] = v
	}
	runEnv["doc"] = ir.ToAny(doc)
	opts := append(exprOpts(doc), expr.Env(map[string]any(runEnv)))
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	res, err := expr.Run(prg, map[string]any(runEnv))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q -> %T", src, res)
	}
	return FromResult(res)
}

// FromResult converts the value of an expression to a tree.
func FromResult(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case *ir.Node:
		if x == nil {
			return ir.Null(), nil
		}
		return x.Clone(), nil
	case []*ir.Node:
		res := ir.NewArray(len(x))
		for i, n := range x {
			res.SetIndex(i, n.Clone())
		}
		return res, nil
	}
	return ir.FromAny(v)
}

func exprOpts(doc *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			path := params[0].(string)
			res, err := doc.GetPath(path)
			if err != nil {
				return nil, err
			}
			if res == nil {
				return nil, nil
			}
			return ir.ToAny(res), nil
		},
			new(func(string) any)),
		expr.Function("listpath", func(params ...any) (any, error) {
			path := params[0].(string)
			nodes, err := doc.ListPath(nil, path)
			if err != nil {
				return nil, err
			}
			res := make([]any, len(nodes))
			for i, n := range nodes {
				res[i] = ir.ToAny(n)
			}
			return res, nil
		},
			new(func(string) []any)),
		expr.Function("keys", func(params ...any) (any, error) {
			node, err := ir.FromAny(params[0])
			if err != nil {
				return nil, err
			}
			if node.Type != ir.ObjectType {
				return nil, fmt.Errorf("keys of %s", node.Type)
			}
			return node.Keys(), nil
		},
			new(func(any) []string)),
		expr.Function("tojson", func(params ...any) (any, error) {
			node, err := ir.FromAny(params[0])
			if err != nil {
				return nil, err
			}
			return encode.MustString(node), nil
		},
			new(func(any) string)),
	}
}
