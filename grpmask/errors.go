package grpmask

import "github.com/pkg/errors"

// ErrInvalidArgument is the cause of every error returned by this package:
// absent operand, capacity mismatch, short buffer or bit index out of range.
var ErrInvalidArgument = errors.New("invalid argument")

func invalidf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

func errAbsent(op string) error {
	return invalidf("%s: mask is nil or uninitialized", op)
}

func errMismatch(op string, a, b *Mask) error {
	return invalidf("%s: capacity %s does not match %s", op, capName(a), capName(b))
}

func capName(m *Mask) string {
	if !m.valid() {
		return "<absent>"
	}
	return m.cap.String()
}
