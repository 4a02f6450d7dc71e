package grpmask

import (
	"fmt"

	"github.com/zbgzbgboy/nvgpu/md"
)

// Capacity is the number of objects a mask can address.
// Only E32 and E255 are supported.
type Capacity uint8

const (
	E32  Capacity = 32
	E255 Capacity = 255
)

// ParseCapacity converts a raw object count to a Capacity
func ParseCapacity(bits int) (Capacity, error) {
	c := Capacity(bits)
	if bits < 0 || bits > 0xff || !c.Valid() {
		return 0, invalidf("unsupported capacity %d", bits)
	}
	return c, nil
}

func (c Capacity) Valid() bool {
	return c == E32 || c == E255
}

// Words returns number of 32-bit words needed to hold c bits
func (c Capacity) Words() int {
	return int(md.WordsFor(uint(c)))
}

// TailMask returns the filter for valid bits of the last word
func (c Capacity) TailMask() uint32 {
	r := md.WordOffset(uint(c))
	if r == 0 {
		return 0xFFFFFFFF
	}
	return uint32(1)<<r - 1
}

func (c Capacity) String() string {
	switch c {
	case E32:
		return "E32"
	case E255:
		return "E255"
	}
	return fmt.Sprintf("Capacity(%d)", uint8(c))
}
