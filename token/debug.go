package token

import "github.com/signadot/jcodec/debug"

func PrintTokens(toks []Token, msg string) {
	debug.Logf("%s tokens:", msg)
	for i := range toks {
		t := &toks[i]
		debug.Logf("\t%s `%s` %s", t.Type, t.Bytes, t.Pos)
	}
}
