package grpmask

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	th "github.com/zbgzbgboy/nvgpu/internal/testhelpers"
	"golang.org/x/sync/errgroup"
)

func TestCapacityMismatch(t *testing.T) {
	dst := mustNew(t, E32, []uint32{0xCAFEF00D})
	op1 := mustNew(t, E32, []uint32{0xFFFF0000})
	op2 := mustNew(t, E255, nil)
	require.NoError(t, op2.SetAll())

	for _, fn := range []func(dst, op1, op2 *Mask) error{And, Or, Xor} {
		assert.ErrorIs(t, fn(dst, op1, op2), ErrInvalidArgument)
		assert.ErrorIs(t, fn(dst, op2, op1), ErrInvalidArgument)
		assert.ErrorIs(t, fn(dst, op1, nil), ErrInvalidArgument)
		assert.Equal(t, []uint32{0xCAFEF00D}, exported(t, dst))
	}

	assert.ErrorIs(t, Copy(dst, op2), ErrInvalidArgument)
	assert.ErrorIs(t, Copy(nil, op1), ErrInvalidArgument)
	assert.Equal(t, []uint32{0xCAFEF00D}, exported(t, dst))

	err := And(dst, op1, op2)
	assert.Contains(t, err.Error(), "E32 does not match E255")
}

func TestSizeEqual(t *testing.T) {
	a := mustNew(t, E32, nil)
	b := mustNew(t, E32, nil)
	c := mustNew(t, E255, nil)
	var zero Mask

	assert.True(t, SizeEqual(a, b))
	assert.False(t, SizeEqual(a, c))
	assert.False(t, SizeEqual(a, nil))
	assert.False(t, SizeEqual(nil, a))
	assert.False(t, SizeEqual(nil, nil))
	assert.False(t, SizeEqual(&zero, &zero))
}

func TestSubset(t *testing.T) {
	g := th.NewSeqGen(th.SgRand)
	for _, c := range capacities {
		for i := 0; i < 50; i++ {
			m := randMask(t, g, c)
			assert.True(t, IsSubset(m, m))

			part := mustNew(t, c, nil)
			require.NoError(t, And(part, m, randMask(t, g, c)))
			assert.True(t, IsSubset(part, m))

			if !m.IsZero() {
				empty := mustNew(t, c, nil)
				assert.True(t, IsSubset(empty, m))
				assert.False(t, IsSubset(m, empty))
			}
		}
	}

	small := mustNew(t, E32, nil)
	large := mustNew(t, E255, nil)
	assert.False(t, IsSubset(small, large))
	assert.False(t, IsSubset(nil, large))
	assert.False(t, IsSubset(large, nil))
}

func TestBooleanLaws(t *testing.T) {
	g := th.NewSeqGen(th.SgRand)
	for _, c := range capacities {
		for i := 0; i < 100; i++ {
			a := randMask(t, g, c)
			b := randMask(t, g, c)
			ab := mustNew(t, c, nil)
			ba := mustNew(t, c, nil)

			require.NoError(t, And(ab, a, b))
			require.NoError(t, And(ba, b, a))
			assert.True(t, Equal(ab, ba))

			// absorption
			absorbed := mustNew(t, c, nil)
			require.NoError(t, Or(absorbed, a, ab))
			assert.True(t, Equal(absorbed, a))

			self := mustNew(t, c, nil)
			require.NoError(t, Xor(self, a, a))
			assert.True(t, self.IsZero())

			// a ^ b == (a | b) & ^(a & b)
			x := mustNew(t, c, nil)
			require.NoError(t, Xor(x, a, b))
			u := mustNew(t, c, nil)
			require.NoError(t, Or(u, a, b))
			require.NoError(t, ab.Invert())
			require.NoError(t, And(u, u, ab))
			assert.True(t, Equal(x, u), "%s != %s", x, u)
		}
	}
}

func TestCopyAndEqual(t *testing.T) {
	g := th.NewSeqGen(th.SgRand)
	src := randMask(t, g, E255)
	dst := mustNew(t, E255, nil)
	assert.False(t, Equal(dst, src))
	require.NoError(t, Copy(dst, src))
	assert.True(t, Equal(dst, src))
	assert.Equal(t, exported(t, src), exported(t, dst))

	require.NoError(t, dst.ToggleBit(7))
	assert.False(t, Equal(dst, src))

	assert.False(t, Equal(mustNew(t, E32, nil), mustNew(t, E255, nil)))
	assert.False(t, Equal(nil, nil))
}

func TestConcurrentQueries(t *testing.T) {
	g := th.NewSeqGen(th.SgRand)
	m := randMask(t, g, E255)
	ref := randMask(t, g, E255)
	require.NoError(t, Or(ref, ref, m))

	count, low, high := m.Count(), m.LowestBit(), m.HighestBit()

	var eg errgroup.Group
	for i := 0; i < 8; i++ {
		eg.Go(func() error {
			for j := 0; j < 1000; j++ {
				if m.Count() != count || m.LowestBit() != low || m.HighestBit() != high {
					return errors.Errorf("unstable query result on %s", m)
				}
				if !IsSubset(m, ref) || m.IsZero() != (count == 0) {
					return errors.New("unstable predicate")
				}
				if m.Bit(low) != (low != IdxInvalid) {
					return errors.Errorf("bit %d", low)
				}
			}
			return nil
		})
	}
	require.NoError(t, eg.Wait())
}
