package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jcodec/token"
)

func tokens(cfg *TokensConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokens.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: tokens takes at most one file", cli.ErrUsage)
	}
	return cfg.eachInput(cc.In, args, func(_ string, d []byte) error {
		return writeTokens(cc.Out, d)
	})
}

// writeTokens lists the tokens of d one per line as
// "line:col type text", counting lines and columns from 1.
func writeTokens(w io.Writer, d []byte) error {
	toks, err := token.Tokenize(d)
	if err != nil {
		return err
	}
	for i := range toks {
		tok := &toks[i]
		if _, err := fmt.Fprintf(w, "%d:%d\t%s\t%s\n", tok.Pos.Line()+1, tok.Pos.Col()+1, tok.Type, tok.Bytes); err != nil {
			return err
		}
	}
	return nil
}
