// Package wordstore provides the sign-magnitude word storage shared by both
// positional engines: a little-endian sequence of unsigned machine words plus
// a packed (sign, auxiliary) state word, together with the overflow-aware
// single-word primitives that all multi-word carry propagation is built on.
package wordstore

import "math/bits"

// Word is the fixed-width storage unit for magnitude bits and packed digits.
type Word = uint32

// WordBits is the width of a Word in bits, shared by an engine family.
const WordBits = 32

// Store holds a magnitude as words (index 0 least significant) plus the
// packed sign/auxiliary state. Each value owns its Store exclusively; all
// arithmetic produces new Stores rather than mutating operands.
type Store struct {
	State State
	Words []Word
}

// Clone returns an independent deep copy.
func (s Store) Clone() Store {
	out := Store{State: s.State}
	if len(s.Words) > 0 {
		out.Words = make([]Word, len(s.Words))
		copy(out.Words, s.Words)
	}
	return out
}

// Get returns the word at index i, or zero when i lies beyond the stored
// words. Shorter operands are thereby padded with zero words implicitly.
func (s Store) Get(i int) Word {
	if i < 0 || i >= len(s.Words) {
		return 0
	}
	return s.Words[i]
}

// Set stores w at index i, growing the word sequence with zero words as
// needed.
func (s *Store) Set(i int, w Word) {
	for len(s.Words) <= i {
		s.Words = append(s.Words, 0)
	}
	s.Words[i] = w
}

// Len returns the number of stored words.
func (s Store) Len() int { return len(s.Words) }

// IsZero reports whether every stored word is zero (an empty sequence counts
// as zero).
func (s Store) IsZero() bool {
	for _, w := range s.Words {
		if w != 0 {
			return false
		}
	}
	return true
}

// BitLen returns the occupied bit length of the magnitude: the position of
// the highest set bit plus one, or zero for a zero magnitude.
func (s Store) BitLen() uint64 {
	for i := len(s.Words) - 1; i >= 0; i-- {
		if s.Words[i] != 0 {
			return uint64(i)*WordBits + uint64(bits.Len32(s.Words[i]))
		}
	}
	return 0
}

// Bit returns bit i of the magnitude (0 or 1).
func (s Store) Bit(i uint64) Word {
	w := s.Get(int(i / WordBits))
	return (w >> (i % WordBits)) & 1
}

// TrimTrailing removes superfluous most-significant zero words, restoring
// canonical form. A zero magnitude keeps exactly one zero word and always
// has a cleared sign.
func (s *Store) TrimTrailing() {
	n := len(s.Words)
	for n > 0 && s.Words[n-1] == 0 {
		n--
	}
	if n == 0 {
		s.Words = append(s.Words[:0], 0)
		s.State.SetSign(false)
		return
	}
	s.Words = s.Words[:n]
}

// Truncate shortens the word sequence to at most n words.
func (s *Store) Truncate(n int) {
	if n < len(s.Words) {
		s.Words = s.Words[:n]
	}
}
