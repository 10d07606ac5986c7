package numsys

import (
	"strconv"

	"github.com/numsys-go/numsys/internal/decstr"
	apperrors "github.com/numsys-go/numsys/internal/errors"
	"github.com/numsys-go/numsys/internal/wordstore"
)

// Binary is an arbitrary-precision signed integer in the base-2^32 positional
// system: a sign flag over a little-endian sequence of 32-bit magnitude
// words. The zero value of the type is the number 0.
//
// All operations are pure: they return new values and never mutate their
// operands, so distinct values may be used freely from different goroutines.
type Binary struct {
	store wordstore.Store
}

// ParseBinary constructs a Binary from a decimal string of the form
// -?(0|[1-9][0-9]*). Anything else fails with an invalid-format error.
func ParseBinary(s string) (Binary, error) {
	if !decstr.Valid(s) {
		return Binary{}, apperrors.InvalidFormat.New("not a decimal integer: %q", s)
	}

	neg := s[0] == '-'
	if neg {
		s = s[1:]
	}

	var st wordstore.Store
	if s == "0" {
		st.Words = []wordstore.Word{0}
		return Binary{store: st}, nil
	}

	// Repeated halving: each division by 2 peels off the least significant
	// bit, which is packed into the current word until it fills.
	var word wordstore.Word
	bitIdx := 0
	for s != "0" {
		q, r, err := decstr.DivWord(s, 2)
		if err != nil {
			return Binary{}, err
		}
		s = q

		word |= wordstore.Word(r) << bitIdx
		bitIdx++
		if bitIdx == wordstore.WordBits {
			st.Words = append(st.Words, word)
			word, bitIdx = 0, 0
		}
	}
	if bitIdx != 0 {
		st.Words = append(st.Words, word)
	}

	st.TrimTrailing()
	st.State.SetSign(neg && !st.IsZero())
	return Binary{store: st}, nil
}

// BinaryFromUint64 constructs a Binary from an unsigned machine integer.
func BinaryFromUint64(v uint64) Binary {
	var st wordstore.Store
	if v == 0 {
		st.Words = []wordstore.Word{0}
		return Binary{store: st}
	}
	for v != 0 {
		st.Words = append(st.Words, wordstore.Word(v))
		v >>= wordstore.WordBits
	}
	return Binary{store: st}
}

// BinaryFromInt64 constructs a Binary from a signed machine integer,
// capturing sign and magnitude exactly (including math.MinInt64).
func BinaryFromInt64(v int64) Binary {
	if v >= 0 {
		return BinaryFromUint64(uint64(v))
	}
	b := BinaryFromUint64(-uint64(v))
	b.store.State.SetSign(true)
	return b
}

// IsZero reports whether the value is 0.
func (x Binary) IsZero() bool { return x.store.IsZero() }

// Sign returns -1 for negative values, 0 for zero, and 1 for positive values.
func (x Binary) Sign() int {
	if x.IsZero() {
		return 0
	}
	if x.store.State.Sign() {
		return -1
	}
	return 1
}

// Neg returns the value with its sign flipped. Zero is its own negation.
func (x Binary) Neg() Binary { return x.withSign(!x.negative()) }

// Cmp compares two values and returns -1, 0, or 1. Differing signs resolve
// immediately; otherwise magnitudes are compared word by word from the most
// significant end, with the ordering inverted for negative operands.
func (x Binary) Cmp(y Binary) int {
	xz, yz := x.IsZero(), y.IsZero()
	if xz && yz {
		return 0
	}
	if x.negative() != y.negative() {
		if x.negative() {
			return -1
		}
		return 1
	}
	if xz {
		return -1
	}
	if yz {
		return 1
	}

	c := x.cmpMag(y)
	if x.negative() {
		return -c
	}
	return c
}

// Add returns x + y.
func (x Binary) Add(y Binary) Binary { return addSigned(x, y) }

// Sub returns x - y.
func (x Binary) Sub(y Binary) Binary { return addSigned(x, y.Neg()) }

// Mul returns x * y using shift-and-add over the set bits of y. The result
// sign is the XOR of the operand signs.
func (x Binary) Mul(y Binary) Binary {
	if x.IsZero() || y.IsZero() {
		return BinaryFromUint64(0)
	}

	acc := BinaryFromUint64(0)
	yBits := y.store.BitLen()
	for i := uint64(0); i < yBits; i++ {
		if y.store.Bit(i) == 1 {
			shifted := Binary{store: wordstore.ShiftLeft(x.store, i)}
			acc = acc.addMag(shifted)
		}
	}

	acc.store.State.SetSign(x.negative() != y.negative())
	acc.store.TrimTrailing()
	return acc
}

// Div returns the quotient of x / y, truncated toward zero. The quotient
// sign is the XOR of the operand signs. Division by zero fails with a
// divide-by-zero error.
func (x Binary) Div(y Binary) (Binary, error) {
	q, _, err := x.divMod(y)
	return q, err
}

// Mod returns the remainder of x / y under truncating division: the
// remainder always carries the dividend's sign. Division by zero fails with
// a divide-by-zero error.
func (x Binary) Mod(y Binary) (Binary, error) {
	_, r, err := x.divMod(y)
	return r, err
}

// divMod runs one pass of restoring binary long division over the operand
// magnitudes: for each dividend bit from the highest set bit downward, the
// running remainder is doubled, the bit is brought down, and the divisor is
// subtracted whenever it fits, setting the corresponding quotient bit.
func (x Binary) divMod(y Binary) (Binary, Binary, error) {
	if y.IsZero() {
		return Binary{}, Binary{}, apperrors.DivideByZero.New("binary division by zero")
	}
	if x.IsZero() {
		return BinaryFromUint64(0), BinaryFromUint64(0), nil
	}

	quotient := BinaryFromUint64(0)
	remainder := BinaryFromUint64(0)

	for i := x.store.BitLen(); i > 0; i-- {
		bit := i - 1

		remainder.store = wordstore.ShiftLeft(remainder.store, 1)
		if x.store.Bit(bit) == 1 {
			remainder.store.Set(0, remainder.store.Get(0)|1)
		}

		if remainder.cmpMag(y) >= 0 {
			remainder = remainder.subMag(y)
			wordIdx := int(bit / wordstore.WordBits)
			quotient.store.Set(wordIdx, quotient.store.Get(wordIdx)|1<<(bit%wordstore.WordBits))
		}
	}

	quotient.store.TrimTrailing()
	remainder.store.TrimTrailing()
	quotient.store.State.SetSign(x.negative() != y.negative() && !quotient.IsZero())
	remainder.store.State.SetSign(x.negative() && !remainder.IsZero())
	return quotient, remainder, nil
}

// String renders the canonical decimal form: a '-' prefix iff the value is
// negative and nonzero, no leading zeros, exactly "0" for zero.
//
// Magnitudes that fit a single uint64 go straight through strconv. Larger
// magnitudes are converted by scanning the binary representation from its
// most significant bit and double-and-adding into a base-10^9 chunked
// accumulator, then rendering the chunks with zero padding below the top.
func (x Binary) String() string {
	if x.IsZero() {
		return "0"
	}

	bitLen := x.store.BitLen()
	if bitLen <= 64 {
		var v uint64
		for i := len(x.store.Words) - 1; i >= 0; i-- {
			v = v<<wordstore.WordBits | uint64(x.store.Words[i])
		}
		if x.negative() {
			return "-" + strconv.FormatUint(v, 10)
		}
		return strconv.FormatUint(v, 10)
	}

	const chunkBase = 1_000_000_000
	chunks := []uint32{0}

	double := func() {
		var carry uint64
		for i := range chunks {
			v := uint64(chunks[i])*2 + carry
			chunks[i] = uint32(v % chunkBase)
			carry = v / chunkBase
		}
		if carry != 0 {
			chunks = append(chunks, uint32(carry))
		}
	}
	addOne := func() {
		carry := uint64(1)
		for i := range chunks {
			v := uint64(chunks[i]) + carry
			chunks[i] = uint32(v % chunkBase)
			carry = v / chunkBase
			if carry == 0 {
				return
			}
		}
		chunks = append(chunks, uint32(carry))
	}

	for i := bitLen; i > 0; i-- {
		double()
		if x.store.Bit(i-1) == 1 {
			addOne()
		}
	}

	out := make([]byte, 0, len(chunks)*9+1)
	if x.negative() {
		out = append(out, '-')
	}
	out = strconv.AppendUint(out, uint64(chunks[len(chunks)-1]), 10)
	for i := len(chunks) - 2; i >= 0; i-- {
		part := strconv.FormatUint(uint64(chunks[i]), 10)
		for pad := 9 - len(part); pad > 0; pad-- {
			out = append(out, '0')
		}
		out = append(out, part...)
	}
	return string(out)
}

// Uint64 converts the value to a uint64. Negative values and magnitudes
// wider than 64 bits fail with an overflow error.
func (x Binary) Uint64() (uint64, error) {
	if x.IsZero() {
		return 0, nil
	}
	if x.negative() {
		return 0, apperrors.Overflow.New("negative value does not fit uint64")
	}
	if x.store.BitLen() > 64 {
		return 0, apperrors.Overflow.New("magnitude of %d bits exceeds uint64", x.store.BitLen())
	}

	var v uint64
	for i := len(x.store.Words) - 1; i >= 0; i-- {
		v = v<<wordstore.WordBits | uint64(x.store.Words[i])
	}
	return v, nil
}

// Int64 converts the value to an int64. Magnitudes wider than 63 bits fail
// with an overflow error.
func (x Binary) Int64() (int64, error) {
	if x.IsZero() {
		return 0, nil
	}
	if x.store.BitLen() > 63 {
		return 0, apperrors.Overflow.New("magnitude of %d bits exceeds int64", x.store.BitLen())
	}

	var v uint64
	for i := len(x.store.Words) - 1; i >= 0; i-- {
		v = v<<wordstore.WordBits | uint64(x.store.Words[i])
	}
	if x.negative() {
		return -int64(v), nil
	}
	return int64(v), nil
}

// --- primitive contract ---

func (x Binary) negative() bool { return x.store.State.Sign() }

func (x Binary) withSign(negative bool) Binary {
	out := Binary{store: x.store}
	out.store.State.SetSign(negative && !x.IsZero())
	return out
}

func (x Binary) fromUint(v uint64) Binary { return BinaryFromUint64(v) }

// cmpMag compares magnitudes only, ignoring signs.
func (x Binary) cmpMag(y Binary) int {
	max := x.store.Len()
	if y.store.Len() > max {
		max = y.store.Len()
	}
	for i := max - 1; i >= 0; i-- {
		xw, yw := x.store.Get(i), y.store.Get(i)
		if xw < yw {
			return -1
		}
		if xw > yw {
			return 1
		}
	}
	return 0
}

// addMag returns the magnitude sum, propagating the carry across
// max(len(x), len(y)) words and appending a final carry word if one remains.
// The result carries no sign.
func (x Binary) addMag(y Binary) Binary {
	size := x.store.Len()
	if y.store.Len() > size {
		size = y.store.Len()
	}

	var out Binary
	out.store.Words = make([]wordstore.Word, size, size+1)

	var carry wordstore.Word
	for i := 0; i < size; i++ {
		out.store.Words[i], carry = wordstore.Sum(x.store.Get(i), y.store.Get(i), carry)
	}
	if carry != 0 {
		out.store.Words = append(out.store.Words, carry)
	}

	out.store.TrimTrailing()
	return out
}

// subMag returns the magnitude difference x - y. The receiver's magnitude
// must not be smaller than the argument's; the operator derivation layer
// orders operands to guarantee this, and a leftover borrow panics rather
// than producing a wrapped result.
func (x Binary) subMag(y Binary) Binary {
	size := x.store.Len()
	if y.store.Len() > size {
		size = y.store.Len()
	}

	var out Binary
	out.store.Words = make([]wordstore.Word, size)

	var borrow wordstore.Word
	for i := 0; i < size; i++ {
		out.store.Words[i], borrow = wordstore.Sub(x.store.Get(i), y.store.Get(i), borrow)
	}
	if borrow != 0 {
		panic(apperrors.Magnitude.New("binary magnitude subtraction underflow"))
	}

	out.store.TrimTrailing()
	return out
}
