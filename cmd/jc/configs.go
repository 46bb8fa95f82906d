package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/jcodec/encode"
	"github.com/signadot/jcodec/eval"
	"github.com/signadot/jcodec/format"
	"github.com/signadot/jcodec/numconv"
	"github.com/signadot/jcodec/parse"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Indent  int  `cli:"name=indent desc='indent JSON output by this many spaces'"`
	Verbose bool `cli:"name=v aliases=verbose desc='log inputs to stderr'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) ioFormat(override *format.Format) format.Format {
	fmat := format.JSONFormat
	if cfg.Y {
		fmat = format.YAMLFormat
	}
	if override != nil {
		fmat = *override
	}
	return fmat
}

func (cfg *MainConfig) inFormat() format.Format {
	return cfg.ioFormat(cfg.InFormat)
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{parse.ParseFormat(cfg.inFormat())}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.ioFormat(cfg.OutFormat)),
		encode.Indent(cfg.Indent),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			colorsSet = opt.Value != nil
			break
		}
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q aliases=quiet desc='print nothing, only set the exit status'"`

	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Eps   float64
	Text  bool `cli:"name=text desc='show a line diff of the indented documents'"`
	Merge bool `cli:"name=merge desc='print the merge patch from a to b'"`

	Diff *cli.Command
}

func (cfg *DiffConfig) epsOpt(_ *cli.Context, a string) (any, error) {
	v, err := numconv.ParseFloat(a, 10)
	if err != nil {
		return nil, fmt.Errorf("%w: -eps: %w", cli.ErrUsage, err)
	}
	if v < 0 {
		return nil, fmt.Errorf("%w: -eps must not be negative", cli.ErrUsage)
	}
	cfg.Eps = v
	return v, nil
}

type TokensConfig struct {
	*MainConfig

	Tokens *cli.Command
}

type NumConfig struct {
	*MainConfig
	From int  `cli:"name=from desc='base of the input numbers'"`
	To   int  `cli:"name=to desc='base of the output numbers'"`
	Sci  bool `cli:"name=sci desc='write in base 10 scientific notation'"`

	Num *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env  eval.Env
	Test bool `cli:"name=t aliases=test desc='exit 1 unless every result is truthy'"`

	Eval *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=merge desc='treat the patch as a merge patch'"`

	Patch *cli.Command
}
