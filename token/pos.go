package token

import (
	"fmt"
	"sort"
	"strconv"
	"sync"
)

// PosDoc is a source document against which positions are reported.
// The newline index is built on first use.
type PosDoc struct {
	d    []byte
	n    []int
	once sync.Once
}

func NewPosDoc(d []byte) *PosDoc {
	return &PosDoc{d: d}
}

func (p *PosDoc) index() {
	p.once.Do(func() {
		for i, c := range p.d {
			if c == '\n' {
				p.n = append(p.n, i)
			}
		}
	})
}

// LineCol returns the zero based line and column of byte offset off.
func (p *PosDoc) LineCol(off int) (int, int) {
	p.index()
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	if di == 0 {
		return 0, off
	}
	return di, off - p.n[di-1] - 1
}

func (p *PosDoc) Pos(i int) Pos {
	return Pos{I: i, D: p}
}

func (p *PosDoc) end() Pos {
	return Pos{I: len(p.d), D: p}
}

type Pos struct {
	I int
	D *PosDoc
}

func (p Pos) LineCol() (int, int) {
	if p.D == nil {
		return 0, p.I
	}
	return p.D.LineCol(p.I)
}

func (p Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	if p.D == nil {
		return fmt.Sprintf("offset %d", p.I)
	}
	sample := string(p.D.d[max(0, min(p.I, len(p.D.d))-5):min(p.I+5, len(p.D.d))])
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line(), p.Col())
}
