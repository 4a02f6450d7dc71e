package grpmask

import (
	"encoding"

	"github.com/zbgzbgboy/nvgpu/md"
)

var (
	_ encoding.BinaryMarshaler   = (*Mask)(nil)
	_ encoding.BinaryUnmarshaler = (*Mask)(nil)
)

// Import loads the mask from the wire buffer ext. The capacity agreed with
// the producer of ext must match the mask. Padding bits of ext are dropped.
func (m *Mask) Import(c Capacity, ext []uint32) error {
	if !m.valid() {
		return errAbsent("import")
	}
	if m.cap != c {
		return invalidf("import: capacity %s does not match %s", c, m.cap)
	}
	if len(ext) < m.words {
		return invalidf("import: buffer holds %d words, %s needs %d", len(ext), m.cap, m.words)
	}
	copy(m.data[:m.words], ext)
	m.normalize()
	return nil
}

// Export stores the mask into the wire buffer ext
func (m *Mask) Export(c Capacity, ext []uint32) error {
	if !m.valid() {
		return errAbsent("export")
	}
	if m.cap != c {
		return invalidf("export: capacity %s does not match %s", c, m.cap)
	}
	if len(ext) < m.words {
		return invalidf("export: buffer holds %d words, %s needs %d", len(ext), m.cap, m.words)
	}
	copy(ext, m.data[:m.words])
	return nil
}

// MarshalBinary encodes the capacity byte followed by the wire buffer words
// in host byte order.
func (m *Mask) MarshalBinary() ([]byte, error) {
	if !m.valid() {
		return nil, errAbsent("marshal")
	}
	b := make([]byte, 1+m.words*md.BytesPerWord)
	b[0] = byte(m.cap)
	for i := 0; i < m.words; i++ {
		md.ByteOrder.PutUint32(b[1+i*md.BytesPerWord:], m.data[i])
	}
	return b, nil
}

// UnmarshalBinary reinitializes the mask from the output of MarshalBinary
func (m *Mask) UnmarshalBinary(b []byte) error {
	if m == nil {
		return errAbsent("unmarshal")
	}
	if len(b) == 0 {
		return invalidf("unmarshal: empty input")
	}
	c := Capacity(b[0])
	if !c.Valid() {
		return invalidf("unmarshal: unsupported capacity %d", b[0])
	}
	n := c.Words()
	if len(b) != 1+n*md.BytesPerWord {
		return invalidf("unmarshal: %d bytes for %s, want %d", len(b), c, 1+n*md.BytesPerWord)
	}
	var ext [md.MaxWords]uint32
	for i := 0; i < n; i++ {
		ext[i] = md.ByteOrder.Uint32(b[1+i*md.BytesPerWord:])
	}
	return m.Init(c, ext[:n])
}
