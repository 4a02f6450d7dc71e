package grpmask

// SizeEqual reports whether both masks are present and have equal capacity
func SizeEqual(a, b *Mask) bool {
	if !a.valid() || !b.valid() {
		return false
	}
	return a.cap == b.cap
}

// Equal reports whether a and b have equal capacity and the same bits set
func Equal(a, b *Mask) bool {
	if !SizeEqual(a, b) {
		return false
	}
	return a.data == b.data
}

// IsSubset reports whether every bit set in op1 is also set in op2
func IsSubset(op1, op2 *Mask) bool {
	if !SizeEqual(op2, op1) {
		return false
	}
	for i := 0; i < op1.words; i++ {
		if op1.data[i]&op2.data[i] != op1.data[i] {
			return false
		}
	}
	return true
}

// Copy replaces bits of dst with bits of src
func Copy(dst, src *Mask) error {
	if !SizeEqual(dst, src) {
		return errMismatch("copy", dst, src)
	}
	copy(dst.data[:dst.words], src.data[:src.words])
	return nil
}

// And stores op1 & op2 into dst. dst may be one of the operands.
func And(dst, op1, op2 *Mask) error {
	return combine("and", dst, op1, op2, func(a, b uint32) uint32 { return a & b })
}

// Or stores op1 | op2 into dst. dst may be one of the operands.
func Or(dst, op1, op2 *Mask) error {
	return combine("or", dst, op1, op2, func(a, b uint32) uint32 { return a | b })
}

// Xor stores op1 ^ op2 into dst. dst may be one of the operands.
func Xor(dst, op1, op2 *Mask) error {
	return combine("xor", dst, op1, op2, func(a, b uint32) uint32 { return a ^ b })
}

func combine(op string, dst, op1, op2 *Mask, fn func(a, b uint32) uint32) error {
	if !SizeEqual(dst, op1) {
		return errMismatch(op, dst, op1)
	}
	if !SizeEqual(dst, op2) {
		return errMismatch(op, dst, op2)
	}
	for i := 0; i < dst.words; i++ {
		dst.data[i] = fn(op1.data[i], op2.data[i])
	}
	dst.checkNormalized(op)
	return nil
}
