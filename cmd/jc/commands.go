package main

import (
	"github.com/scott-cotton/cli"

	"github.com/signadot/jcodec/eval"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "jc").
		WithSynopsis("jc [opts] command [opts]").
		WithDescription("jc reads, writes, validates and compares JSON documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jcMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			CheckCommand(cfg),
			DiffCommand(cfg),
			TokensCommand(cfg),
			NumCommand(cfg),
			GetCommand(cfg),
			EvalCommand(cfg),
			PatchCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("read documents and write them back, compact unless -indent is given").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [-q] [files]").
		WithDescription("check that each input is exactly one JSON value").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "eps",
		Description: "tolerance for comparing numbers",
		Type:        cli.NamedFuncOpt(cfg.epsOpt, "(number)"),
	})
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff [-eps x] [-text | -merge] a b").
		WithDescription(diffDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

const diffDescription = `diff compares two documents.

Objects are compared without regard to field order and numbers are equal
when they differ by less than -eps.  By default each difference is
listed with its path.  -text shows a line diff of the indented documents
and -merge prints the merge patch (RFC 7386) turning a into b.

diff exits with status 1 when the documents differ.`

func TokensCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TokensConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Tokens, "tokens").
		WithAliases("t", "tok").
		WithSynopsis("tokens [file]").
		WithDescription("list the tokens of a JSON document with their positions").
		WithRun(func(cc *cli.Context, args []string) error {
			return tokens(cfg, cc, args)
		})
}

func NumCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &NumConfig{MainConfig: mainCfg, From: 10, To: 10}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Num, "num").
		WithAliases("n").
		WithSynopsis("num [-from base] [-to base] [-sci] numbers...").
		WithDescription("convert numbers between bases 2 to 36").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return num(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g", "ge").
		WithSynopsis("get <path> [files]").
		WithDescription("get the values at a path such as $.a[0].b or $.a[*]").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg, Env: eval.Env{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "e",
			Description: "set a variable, the value is read as JSON or else taken as a string",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(envOptTypeFunc(cfg.Env)), "(name=val)"),
		})
	return cli.NewCommandAt(&cfg.Eval, "eval").
		WithAliases("e", "ev").
		WithSynopsis("eval [-e name=val]... [-t] <expr> [files]").
		WithDescription(evalDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return evalCmd(cfg, cc, args)
		})
}

const evalDescription = `eval evaluates an expression against each document.

The document is the variable doc.  The functions getpath(path),
listpath(path), keys(obj) and tojson(v) are available.  With -t nothing
is printed and eval exits with status 1 unless every result is truthy.`

func envOptTypeFunc(env eval.Env) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := envFunc(env, a); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [-merge] <patchfile> [files]").
		WithDescription("apply a JSON patch (RFC 6902) or with -merge a merge patch (RFC 7386)").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}
