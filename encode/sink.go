package encode

import (
	"github.com/signadot/jcodec/ir"
	"github.com/signadot/jcodec/token"
)

// sink receives the pieces of an encoded document in order.
type sink interface {
	// put writes literal text such as punctuation, keywords and numbers.
	put(t ir.Type, a ColorAttr, s string)
	// quote writes v as a quoted JSON string.
	quote(t ir.Type, a ColorAttr, v string)
	// space writes layout whitespace.
	space(s string)
}

type counter struct {
	n int
}

func (c *counter) put(_ ir.Type, _ ColorAttr, s string)   { c.n += len(s) }
func (c *counter) quote(_ ir.Type, _ ColorAttr, v string) { c.n += token.QuotedLen(v) }
func (c *counter) space(s string)                         { c.n += len(s) }

type buffer struct {
	b []byte
}

func (b *buffer) put(_ ir.Type, _ ColorAttr, s string)   { b.b = append(b.b, s...) }
func (b *buffer) quote(_ ir.Type, _ ColorAttr, v string) { b.b = token.AppendQuote(b.b, v) }
func (b *buffer) space(s string)                         { b.b = append(b.b, s...) }

type colorBuffer struct {
	b     []byte
	color func(ir.Type, ColorAttr, string) string
}

func (c *colorBuffer) put(t ir.Type, a ColorAttr, s string) {
	c.b = append(c.b, c.color(t, a, s)...)
}
func (c *colorBuffer) quote(t ir.Type, a ColorAttr, v string) {
	c.b = append(c.b, c.color(t, a, token.Quote(v))...)
}
func (c *colorBuffer) space(s string) { c.b = append(c.b, s...) }
