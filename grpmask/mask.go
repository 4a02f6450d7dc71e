// Package grpmask implements fixed capacity masks over groups of board
// objects. A mask holds 32 or 255 bits packed into 32-bit words; bits past
// the capacity are kept zero by every operation.
//
// Masks are not safe for concurrent mutation. Read only queries may run
// concurrently with each other.
package grpmask

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/zbgzbgboy/nvgpu/debug"
	"github.com/zbgzbgboy/nvgpu/md"
)

// IdxInvalid is returned by index queries on a mask with no bits set
const IdxInvalid = 0xFF

type Mask struct {
	cap    Capacity
	words  int
	filter uint32
	data   [md.MaxWords]uint32
}

// New creates a mask of capacity c. When ext is nil the mask is empty,
// otherwise its bits are imported from ext.
func New(c Capacity, ext []uint32) (*Mask, error) {
	m := &Mask{}
	if err := m.Init(c, ext); err != nil {
		return nil, err
	}
	return m, nil
}

// Init (re)initializes a mask embedded by value
func (m *Mask) Init(c Capacity, ext []uint32) error {
	if m == nil {
		return errAbsent("init")
	}
	if !c.Valid() {
		return invalidf("init: unsupported capacity %d", uint8(c))
	}
	if ext != nil && len(ext) < c.Words() {
		return invalidf("init: buffer holds %d words, %s needs %d", len(ext), c, c.Words())
	}

	m.cap = c
	m.words = c.Words()
	m.filter = c.TailMask()
	m.data = [md.MaxWords]uint32{}

	if ext == nil {
		return nil
	}
	return m.Import(c, ext)
}

func (m *Mask) valid() bool {
	return m != nil && m.cap.Valid()
}

// clears bits beyond capacity
func (m *Mask) normalize() {
	m.data[m.words-1] &= m.filter
}

func (m *Mask) checkNormalized(op string) {
	if !debug.Enabled {
		return
	}
	if extra := m.data[m.words-1] &^ m.filter; extra != 0 {
		debug.Log("grpmask: %s left padding bits %#08x set in %s", op, extra, m)
		panic("grpmask: " + op + " broke normalization")
	}
}

// Capacity returns zero for an absent mask
func (m *Mask) Capacity() Capacity {
	if !m.valid() {
		return 0
	}
	return m.cap
}

// Words returns the length of the wire buffer for the mask
func (m *Mask) Words() int {
	if !m.valid() {
		return 0
	}
	return m.words
}

func (m *Mask) Clear() error {
	if !m.valid() {
		return errAbsent("clear")
	}
	for i := 0; i < m.words; i++ {
		m.data[i] = 0
	}
	return nil
}

// SetAll sets every bit below capacity
func (m *Mask) SetAll() error {
	if !m.valid() {
		return errAbsent("set all")
	}
	for i := 0; i < m.words; i++ {
		m.data[i] = 0xFFFFFFFF
	}
	m.normalize()
	return nil
}

func (m *Mask) Invert() error {
	if !m.valid() {
		return errAbsent("invert")
	}
	for i := 0; i < m.words; i++ {
		m.data[i] = ^m.data[i]
	}
	m.normalize()
	return nil
}

// IsZero reports whether no bit is set. An absent mask is zero.
func (m *Mask) IsZero() bool {
	if !m.valid() {
		return true
	}
	for i := 0; i < m.words; i++ {
		if m.data[i] != 0 {
			return false
		}
	}
	return true
}

// Count returns number of set bits
func (m *Mask) Count() int {
	if !m.valid() {
		return 0
	}
	n := 0
	for i := 0; i < m.words; i++ {
		n += bits.OnesCount32(m.data[i])
	}
	return n
}

// LowestBit returns index of the lowest set bit or IdxInvalid
func (m *Mask) LowestBit() int {
	if !m.valid() {
		return IdxInvalid
	}
	for i := 0; i < m.words; i++ {
		if w := m.data[i]; w != 0 {
			return i<<md.WordSizeShift + bits.TrailingZeros32(w)
		}
	}
	return IdxInvalid
}

// HighestBit returns index of the highest set bit or IdxInvalid
func (m *Mask) HighestBit() int {
	if !m.valid() {
		return IdxInvalid
	}
	for i := m.words - 1; i >= 0; i-- {
		if w := m.data[i]; w != 0 {
			return i<<md.WordSizeShift + md.BitsPerWord - 1 - bits.LeadingZeros32(w)
		}
	}
	return IdxInvalid
}

// ForEach calls fn for every set bit in ascending order until fn returns false
func (m *Mask) ForEach(fn func(idx int) bool) {
	if !m.valid() {
		return
	}
	for i := 0; i < m.words; i++ {
		w := m.data[i]
		for w != 0 {
			if !fn(i<<md.WordSizeShift + bits.TrailingZeros32(w)) {
				return
			}
			w &= w - 1
		}
	}
}

// Indices returns indexes of set bits in ascending order
func (m *Mask) Indices() []int {
	r := make([]int, 0, m.Count())
	m.ForEach(func(idx int) bool {
		r = append(r, idx)
		return true
	})
	return r
}

// String formats the mask as one hex number, highest word first
func (m *Mask) String() string {
	if !m.valid() {
		return "<nil>"
	}
	var sb strings.Builder
	sb.WriteString(m.cap.String())
	sb.WriteString(":0x")
	for i := m.words - 1; i >= 0; i-- {
		if i != m.words-1 {
			sb.WriteByte('_')
		}
		fmt.Fprintf(&sb, "%08x", m.data[i])
	}
	return sb.String()
}
