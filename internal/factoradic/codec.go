// Package factoradic implements the variable-width digit codec of the
// factorial number system.
//
// Digit i of a factoradic number ranges over [0, i] and therefore needs
// exactly bits.Len64(i) bits of storage; digit 0 is always zero and occupies
// no bits at all. Digits are packed contiguously, least significant bit
// first, into the shared word storage. The absolute bit offset of a digit is
// a closed-form function of its index, so no scan is needed to locate it.
package factoradic

import (
	"math/bits"

	apperrors "github.com/numsys-go/numsys/internal/errors"
	"github.com/numsys-go/numsys/internal/wordstore"
)

// MaxIndex is the largest addressable digit index. Offsets above it would
// overflow the 63-bit auxiliary cache and the bit-offset arithmetic.
const MaxIndex = 1<<63 - 1

// DigitBits returns the storage width in bits of the digit at the given
// index: ceil(log2(index+1)). Index 0 has width 0.
func DigitBits(index uint64) uint64 {
	return uint64(bits.Len64(index))
}

// TotalBits returns the absolute bit offset of the digit at the given index,
// which equals the summed widths of all digits below it. For indexes 0 and 1
// the offset is 0. Indexes above MaxIndex fail fast with an index-range
// error instead of silently overflowing the offset arithmetic.
//
// The sum has a closed form: grouping the N = index-1 preceding nonzero-width
// digits by width, with M = floor(log2 N),
//
//	total = N + M*N - (2^(M+1) - M - 2)
func TotalBits(index uint64) (uint64, error) {
	if index <= 1 {
		return 0, nil
	}
	if index > MaxIndex {
		return 0, apperrors.IndexRange.New("digit index %d exceeds MaxIndex", index)
	}

	n := index - 1
	m := uint64(bits.Len64(n)) - 1
	pow2 := uint64(1) << (m + 1)
	return n + m*n - (pow2 - m - 2), nil
}

// Extract reads the digit at the given index from the store. The boolean
// result reports presence: a read that would start or end beyond the
// occupied storage is absent rather than an error, since callers treat
// absent digits as zero (or as end-of-sequence when iterating). Width-zero
// digits are always present with value 0.
func Extract(s wordstore.Store, index uint64) (uint64, bool, error) {
	if index > MaxIndex {
		return 0, false, apperrors.IndexRange.New("extract: digit index %d exceeds MaxIndex", index)
	}

	width := DigitBits(index)
	if width == 0 {
		return 0, true, nil
	}

	offset, err := TotalBits(index)
	if err != nil {
		return 0, false, err
	}

	storageBits := uint64(s.Len()) * wordstore.WordBits
	if offset >= storageBits || offset+width > storageBits {
		return 0, false, nil
	}

	cur := cursor{store: &s, pos: offset}
	return cur.read(width), true, nil
}

// Put writes the digit value at the given index, growing the store by whole
// words as needed and leaving every other bit untouched. A value exceeding
// the index is a radix violation: digit i of a factoradic number cannot
// exceed i. Writing a digit above the cached top index raises the cache.
func Put(s *wordstore.Store, index, value uint64) error {
	if index > MaxIndex {
		return apperrors.IndexRange.New("put: digit index %d exceeds MaxIndex", index)
	}

	width := DigitBits(index)
	if width == 0 {
		return nil
	}
	if value > index {
		return apperrors.RadixViolation.New("digit value %d exceeds its index %d", value, index)
	}

	offset, err := TotalBits(index)
	if err != nil {
		return err
	}

	if s.State.Aux() < index {
		s.State.SetAux(index)
	}

	wordsNeeded := int((offset + width + wordstore.WordBits - 1) / wordstore.WordBits)
	for s.Len() < wordsNeeded {
		s.Words = append(s.Words, 0)
	}

	cur := cursor{store: s, pos: offset}
	cur.write(width, value)
	return nil
}

// TopIndex returns the index of the highest nonzero digit contained in the
// occupied storage, scanning until a digit falls past the end. Returns 0 for
// a zero value.
func TopIndex(s wordstore.Store) uint64 {
	top := uint64(0)
	for idx := uint64(1); ; idx++ {
		d, ok, err := Extract(s, idx)
		if err != nil || !ok {
			break
		}
		if d != 0 {
			top = idx
		}
	}
	return top
}

// Normalize restores canonical storage form after digit-wise arithmetic:
// it recomputes the top digit index, truncates words beyond the occupied bit
// range, and refreshes the auxiliary cache. A store holding no digits
// collapses to the canonical single zero word.
func Normalize(s *wordstore.Store) {
	top := TopIndex(*s)
	if top == 0 {
		s.Words = append(s.Words[:0], 0)
		s.State.SetAux(0)
		if s.IsZero() {
			s.State.SetSign(false)
		}
		return
	}

	bitsUsed, err := TotalBits(top + 1)
	if err != nil {
		// top came from occupied storage, so top+1 cannot exceed MaxIndex.
		return
	}
	wordsUsed := int((bitsUsed + wordstore.WordBits - 1) / wordstore.WordBits)
	s.Truncate(wordsUsed)
	s.State.SetAux(top)
	if s.IsZero() {
		s.State.SetSign(false)
	}
}

// cursor is a bit cursor over word storage: an absolute bit position that
// read and write advance. Each request is split into word-aligned
// sub-operations, so fields may straddle word boundaries freely.
type cursor struct {
	store *wordstore.Store
	pos   uint64
}

// read assembles width bits starting at the cursor, least significant bit
// first.
func (c *cursor) read(width uint64) uint64 {
	var value uint64
	var done uint64

	for done < width {
		wordIdx := int(c.pos / wordstore.WordBits)
		bitOff := c.pos % wordstore.WordBits

		step := wordstore.WordBits - bitOff
		if remaining := width - done; remaining < step {
			step = remaining
		}

		chunk := uint64(c.store.Get(wordIdx)) >> bitOff
		if step < 64 {
			chunk &= (1 << step) - 1
		}
		value |= chunk << done

		done += step
		c.pos += step
	}
	return value
}

// write stores the low width bits of value starting at the cursor,
// read-modify-writing each touched word.
func (c *cursor) write(width, value uint64) {
	var done uint64

	for done < width {
		wordIdx := int(c.pos / wordstore.WordBits)
		bitOff := c.pos % wordstore.WordBits

		step := wordstore.WordBits - bitOff
		if remaining := width - done; remaining < step {
			step = remaining
		}

		chunk := value >> done
		mask := uint64(1)<<step - 1
		chunk &= mask

		word := uint64(c.store.Get(wordIdx))
		word &^= mask << bitOff
		word |= chunk << bitOff
		c.store.Set(wordIdx, wordstore.Word(word))

		done += step
		c.pos += step
	}
}
