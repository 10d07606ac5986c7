package wordstore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatePacking(t *testing.T) {
	var s State

	require.False(t, s.Sign())
	require.Equal(t, uint64(0), s.Aux())

	s.SetSign(true)
	require.True(t, s.Sign())
	require.Equal(t, uint64(0), s.Aux())

	s.SetAux(1<<63 - 1)
	require.True(t, s.Sign(), "setting aux must not clobber the sign bit")
	require.Equal(t, uint64(1<<63-1), s.Aux())

	s.SetSign(false)
	require.False(t, s.Sign())
	require.Equal(t, uint64(1<<63-1), s.Aux(), "clearing the sign must not clobber aux")

	s.SetAux(42)
	require.Equal(t, uint64(42), s.Aux())
}

func TestSumCarryPropagation(t *testing.T) {
	r, c := Sum(1, 2, 0)
	require.Equal(t, Word(3), r)
	require.Equal(t, Word(0), c)

	r, c = Sum(^Word(0), 1, 0)
	require.Equal(t, Word(0), r)
	require.Equal(t, Word(1), c)

	r, c = Sum(^Word(0), 0, 1)
	require.Equal(t, Word(0), r)
	require.Equal(t, Word(1), c)

	r, c = Sum(^Word(0), ^Word(0), 1)
	require.Equal(t, ^Word(0), r)
	require.Equal(t, Word(1), c)
}

func TestSubBorrowPropagation(t *testing.T) {
	r, b := Sub(3, 2, 0)
	require.Equal(t, Word(1), r)
	require.Equal(t, Word(0), b)

	r, b = Sub(0, 1, 0)
	require.Equal(t, ^Word(0), r)
	require.Equal(t, Word(1), b)

	r, b = Sub(0, 0, 1)
	require.Equal(t, ^Word(0), r)
	require.Equal(t, Word(1), b)

	r, b = Sub(5, 2, 1)
	require.Equal(t, Word(2), r)
	require.Equal(t, Word(0), b)
}

func TestStoreAccessors(t *testing.T) {
	var s Store

	require.True(t, s.IsZero())
	require.Equal(t, Word(0), s.Get(3), "out-of-range reads are zero words")

	s.Set(2, 7)
	require.Equal(t, 3, s.Len())
	require.Equal(t, Word(0), s.Words[0])
	require.Equal(t, Word(0), s.Words[1])
	require.Equal(t, Word(7), s.Words[2])
	require.False(t, s.IsZero())
}

func TestBitLen(t *testing.T) {
	var s Store
	require.Equal(t, uint64(0), s.BitLen())

	s.Words = []Word{1}
	require.Equal(t, uint64(1), s.BitLen())

	s.Words = []Word{0, 1}
	require.Equal(t, uint64(33), s.BitLen())

	s.Words = []Word{0xffffffff, 0x80000000, 0}
	require.Equal(t, uint64(64), s.BitLen())
}

func TestTrimTrailing(t *testing.T) {
	s := Store{Words: []Word{5, 0, 0}}
	s.TrimTrailing()
	require.Equal(t, []Word{5}, s.Words)

	s = Store{Words: []Word{0, 0}}
	s.State.SetSign(true)
	s.TrimTrailing()
	require.Equal(t, []Word{0}, s.Words, "zero keeps exactly one word")
	require.False(t, s.State.Sign(), "zero is never negative")
}

func TestShiftLeft(t *testing.T) {
	in := Store{Words: []Word{0b1011}}

	out := ShiftLeft(in, 0)
	require.Equal(t, []Word{0b1011}, out.Words)

	out = ShiftLeft(in, 1)
	require.Equal(t, []Word{0b10110}, out.Words)

	out = ShiftLeft(in, WordBits)
	require.Equal(t, []Word{0, 0b1011}, out.Words)

	// Carry across the word boundary.
	out = ShiftLeft(Store{Words: []Word{0x80000000}}, 1)
	require.Equal(t, []Word{0, 1}, out.Words)

	out = ShiftLeft(in, WordBits+4)
	require.Equal(t, []Word{0, 0b10110000}, out.Words)
}

func TestShiftLeftDoesNotAliasInput(t *testing.T) {
	in := Store{Words: []Word{1, 2}}
	out := ShiftLeft(in, 1)
	out.Words[0] = 99
	require.Equal(t, Word(1), in.Words[0])
}
