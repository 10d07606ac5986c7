package wordstore

import "math/bits"

// Sum adds two words with a carry-in and returns the wrapped result and the
// carry-out. Carry values are 0 or 1 on both sides. Together with Sub this
// is the only place in the module that reasons about machine-word overflow;
// higher layers propagate the returned flags instead of checking overflow
// themselves.
func Sum(a, b, carry Word) (result, carryOut Word) {
	return bits.Add32(a, b, carry)
}

// Sub subtracts b and a borrow-in from a, returning the wrapped result and
// the borrow-out. Borrow values are 0 or 1 on both sides.
func Sub(a, b, borrow Word) (result, borrowOut Word) {
	return bits.Sub32(a, b, borrow)
}

// ShiftLeft returns a copy of the magnitude shifted left by the given number
// of bits, growing the word sequence as required. The word-aligned part is a
// copy at an offset; the remaining intra-word shift propagates a carry
// across the words.
func ShiftLeft(in Store, shift uint64) Store {
	if len(in.Words) == 0 || shift == 0 {
		return in.Clone()
	}

	wordShift := int(shift / WordBits)
	bitShift := shift % WordBits

	out := Store{State: in.State}
	out.Words = make([]Word, len(in.Words)+wordShift)
	copy(out.Words[wordShift:], in.Words)

	if bitShift != 0 {
		var carry Word
		for i := wordShift; i < len(out.Words); i++ {
			cur := out.Words[i]
			out.Words[i] = cur<<bitShift | carry
			carry = cur >> (WordBits - bitShift)
		}
		if carry != 0 {
			out.Words = append(out.Words, carry)
		}
	}

	return out
}
