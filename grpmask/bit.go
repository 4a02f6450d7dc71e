package grpmask

import "github.com/zbgzbgboy/nvgpu/md"

// locate checks idx against capacity and splits it into word index and bit
func (m *Mask) locate(op string, idx int) (int, uint32, error) {
	if !m.valid() {
		return 0, 0, errAbsent(op)
	}
	if idx < 0 || idx >= int(m.cap) {
		return 0, 0, invalidf("%s: bit %d out of range for %s", op, idx, m.cap)
	}
	return int(md.WordIndex(uint(idx))), uint32(1) << md.WordOffset(uint(idx)), nil
}

// Bit reports whether bit idx is set. Out of range bits read as false.
func (m *Mask) Bit(idx int) bool {
	wi, b, err := m.locate("get bit", idx)
	if err != nil {
		return false
	}
	return m.data[wi]&b != 0
}

func (m *Mask) SetBit(idx int) error {
	wi, b, err := m.locate("set bit", idx)
	if err != nil {
		return err
	}
	m.data[wi] |= b
	return nil
}

func (m *Mask) ClearBit(idx int) error {
	wi, b, err := m.locate("clear bit", idx)
	if err != nil {
		return err
	}
	m.data[wi] &^= b
	return nil
}

// InvertBit applies the legacy board object inversion to the word holding
// idx: bit idx keeps its value and every other bit of that word flips.
// Use ToggleBit to flip a single bit.
func (m *Mask) InvertBit(idx int) error {
	wi, b, err := m.locate("invert bit", idx)
	if err != nil {
		return err
	}
	m.data[wi] ^= ^b
	m.normalize()
	return nil
}

// ToggleBit flips bit idx only
func (m *Mask) ToggleBit(idx int) error {
	wi, b, err := m.locate("toggle bit", idx)
	if err != nil {
		return err
	}
	m.data[wi] ^= b
	return nil
}
