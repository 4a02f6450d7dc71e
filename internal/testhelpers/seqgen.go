package testhelpers

import "math/rand"

// SeqGen produces reproducible 32-bit words for mask tests
type SeqGen interface {
	Seed(value uint32)
	Next() uint32
	Reset()
}

const (
	SgRand = iota
	SgSeq
	SgTwist
)

func NewSeqGen(sgt int) SeqGen {
	switch sgt {
	case SgRand:
		return &randSG{}
	case SgSeq:
		return &seqSG{}
	case SgTwist:
		return &twistSG{}
	default:
		panic("invalid sequence generator type")
	}
}

// Words fills a fresh buffer of n words from g
func Words(g SeqGen, n int) []uint32 {
	w := make([]uint32, n)
	for i := range w {
		w[i] = g.Next()
	}
	return w
}

type randSG struct {
	r *rand.Rand
}

func (g *randSG) Next() uint32 {
	if g.r == nil {
		g.r = rand.New(rand.NewSource(1))
	}
	return g.r.Uint32()
}
func (g *randSG) Reset() {
	g.r = rand.New(rand.NewSource(1))
}
func (g *randSG) Seed(value uint32) {
	g.r = rand.New(rand.NewSource(int64(value)))
}

type seqSG struct {
	cur uint32
}

func (g *seqSG) Next() uint32 {
	g.cur++
	return g.cur
}
func (g *seqSG) Reset() {
	g.cur = 0
}
func (g *seqSG) Seed(value uint32) {
	g.cur = value
}

// twistSG alternates between sparse and dense words
type twistSG struct {
	cur uint32
}

func (g *twistSG) Next() uint32 {
	if (g.cur & 0x80000000) == 0 {
		g.cur = ^g.cur - 1
	} else {
		g.cur = ^g.cur + 1
	}
	return g.cur
}

func (g *twistSG) Reset() {
	g.cur = 0
}
func (g *twistSG) Seed(value uint32) {
	g.cur = value
}
