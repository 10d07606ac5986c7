package numsys

import (
	"math"

	"github.com/numsys-go/numsys/internal/decstr"
	apperrors "github.com/numsys-go/numsys/internal/errors"
	"github.com/numsys-go/numsys/internal/factoradic"
	"github.com/numsys-go/numsys/internal/wordstore"
)

// Factorial is an arbitrary-precision signed integer in the factorial
// (factoradic) number system: digit i ranges over [0, i] and carries
// positional weight i!. Digits are bit-packed through the factoradic codec;
// the storage's auxiliary field caches the highest occupied digit index so
// operations need not rescan the packed words.
//
// Addition, subtraction, and comparison are native mixed-radix algorithms.
// Multiplication, division, and modulo round-trip through the decimal string
// kernel instead: a deliberate asymmetry carried over for result parity with
// the binary engine rather than a native mixed-radix algorithm.
type Factorial struct {
	store wordstore.Store
}

// ParseFactorial constructs a Factorial from a decimal string of the form
// -?(0|[1-9][0-9]*). Anything else fails with an invalid-format error.
func ParseFactorial(s string) (Factorial, error) {
	if !decstr.Valid(s) {
		return Factorial{}, apperrors.InvalidFormat.New("not a decimal integer: %q", s)
	}

	neg := s[0] == '-'
	if neg {
		s = s[1:]
	}

	var st wordstore.Store
	if s == "0" {
		st.Words = []wordstore.Word{0}
		return Factorial{store: st}, nil
	}

	// Repeated division by the increasing radices 1, 2, 3, ... peels off
	// digit i as the remainder modulo i+1.
	var digits []uint64
	for i := uint64(0); s != "0"; i++ {
		q, r, err := decstr.DivWord(s, i+1)
		if err != nil {
			return Factorial{}, err
		}
		digits = append(digits, r)
		s = q
	}

	for len(digits) > 0 && digits[len(digits)-1] == 0 {
		digits = digits[:len(digits)-1]
	}

	for idx, d := range digits {
		if err := factoradic.Put(&st, uint64(idx), d); err != nil {
			return Factorial{}, err
		}
	}

	st.State.SetSign(neg && !st.IsZero())
	if st.Len() == 0 {
		st.Words = []wordstore.Word{0}
	}
	return Factorial{store: st}, nil
}

// FactorialFromUint64 constructs a Factorial from an unsigned machine
// integer via the native modulo loop over increasing radices.
func FactorialFromUint64(v uint64) Factorial {
	var st wordstore.Store
	if v == 0 {
		st.Words = []wordstore.Word{0}
		return Factorial{store: st}
	}

	for idx := uint64(1); v > 0; idx++ {
		// v%idx <= idx-1, so the codec's radix bound always holds.
		_ = factoradic.Put(&st, idx-1, v%idx)
		v /= idx
	}
	return Factorial{store: st}
}

// FactorialFromInt64 constructs a Factorial from a signed machine integer,
// capturing sign and magnitude exactly (including math.MinInt64).
func FactorialFromInt64(v int64) Factorial {
	if v >= 0 {
		return FactorialFromUint64(uint64(v))
	}
	f := FactorialFromUint64(-uint64(v))
	f.store.State.SetSign(true)
	return f
}

// IsZero reports whether the value is 0.
func (x Factorial) IsZero() bool { return x.store.IsZero() }

// Sign returns -1 for negative values, 0 for zero, and 1 for positive values.
func (x Factorial) Sign() int {
	if x.IsZero() {
		return 0
	}
	if x.store.State.Sign() {
		return -1
	}
	return 1
}

// Neg returns the value with its sign flipped. Zero is its own negation.
func (x Factorial) Neg() Factorial { return x.withSign(!x.negative()) }

// Cmp compares two values and returns -1, 0, or 1. Signs resolve first;
// magnitudes are then compared digit by digit downward from the larger
// cached top index, with absent digits reading as zero.
func (x Factorial) Cmp(y Factorial) int {
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
func (x Factorial) Add(y Factorial) Factorial { return addSigned(x, y) }

// Sub returns x - y.
func (x Factorial) Sub(y Factorial) Factorial { return addSigned(x, y.Neg()) }

// Mul returns x * y. The product is computed by the decimal string kernel on
// the stringified magnitudes and re-parsed; the sign is the XOR of the
// operand signs.
func (x Factorial) Mul(y Factorial) Factorial {
	if x.IsZero() || y.IsZero() {
		return FactorialFromUint64(0)
	}

	product := decstr.Mul(x.magString(), y.magString())
	out, err := ParseFactorial(product)
	if err != nil {
		// The kernel emits canonical decimal strings; a parse failure here
		// would be a kernel defect.
		panic(err)
	}
	return out.withSign(x.negative() != y.negative())
}

// Div returns the quotient of x / y, truncated toward zero, via the decimal
// string kernel. Division by zero fails with a divide-by-zero error.
func (x Factorial) Div(y Factorial) (Factorial, error) {
	if y.IsZero() {
		return Factorial{}, apperrors.DivideByZero.New("factorial division by zero")
	}
	if x.IsZero() {
		return FactorialFromUint64(0), nil
	}

	q, _, err := decstr.Div(x.magString(), y.magString())
	if err != nil {
		return Factorial{}, err
	}
	out, err := ParseFactorial(q)
	if err != nil {
		panic(err)
	}
	return out.withSign(x.negative() != y.negative()), nil
}

// Mod returns the remainder of x / y under truncating division: the
// remainder always carries the dividend's sign. Division by zero fails with
// a divide-by-zero error.
func (x Factorial) Mod(y Factorial) (Factorial, error) {
	if y.IsZero() {
		return Factorial{}, apperrors.DivideByZero.New("factorial modulo by zero")
	}
	if x.IsZero() {
		return FactorialFromUint64(0), nil
	}

	_, r, err := decstr.Div(x.magString(), y.magString())
	if err != nil {
		return Factorial{}, err
	}
	out, err := ParseFactorial(r)
	if err != nil {
		panic(err)
	}
	return out.withSign(x.negative()), nil
}

// String renders the canonical decimal form via Horner accumulation: a
// running factorial in decimal string form is scaled by each digit and
// summed, digit by digit from index 0 upward.
func (x Factorial) String() string {
	s := x.magString()
	if x.negative() && s != "0" {
		return "-" + s
	}
	return s
}

func (x Factorial) magString() string {
	if x.IsZero() {
		return "0"
	}

	sum := "0"
	factorial := "1" // 0! = 1
	for idx := uint64(0); ; idx++ {
		digit, ok, err := factoradic.Extract(x.store, idx)
		if err != nil || !ok {
			break
		}
		if digit != 0 {
			sum = decstr.Add(sum, decstr.MulWord(factorial, digit))
		}
		factorial = decstr.MulWord(factorial, idx+1)
	}
	return sum
}

// Uint64 converts the value to a uint64. Negative values fail with an
// overflow error, as does any accumulation that would exceed 64 bits.
func (x Factorial) Uint64() (uint64, error) {
	if x.IsZero() {
		return 0, nil
	}
	if x.negative() {
		return 0, apperrors.Overflow.New("negative value does not fit uint64")
	}
	return x.magUint64()
}

// Int64 converts the value to an int64, failing with an overflow error when
// the magnitude exceeds 63 bits.
func (x Factorial) Int64() (int64, error) {
	if x.IsZero() {
		return 0, nil
	}
	mag, err := x.magUint64()
	if err != nil {
		return 0, err
	}
	if mag > math.MaxInt64 {
		return 0, apperrors.Overflow.New("magnitude exceeds int64")
	}
	if x.negative() {
		return -int64(mag), nil
	}
	return int64(mag), nil
}

// magUint64 accumulates digit[i] * i! with explicit overflow guards. Once
// the running factorial can no longer grow without overflowing, any further
// nonzero digit means the value does not fit.
func (x Factorial) magUint64() (uint64, error) {
	var result uint64
	factorial := uint64(1)
	factorialValid := true

	for idx := uint64(0); ; idx++ {
		digit, ok, err := factoradic.Extract(x.store, idx)
		if err != nil {
			return 0, err
		}
		if !ok {
			break
		}

		if digit != 0 {
			if !factorialValid ||
				factorial > math.MaxUint64/digit ||
				result > math.MaxUint64-digit*factorial {
				return 0, apperrors.Overflow.New("factorial accumulation exceeds uint64")
			}
			result += digit * factorial
		}

		if factorialValid {
			if factorial > math.MaxUint64/(idx+1) {
				factorialValid = false
			} else {
				factorial *= idx + 1
			}
		}
	}
	return result, nil
}

// --- primitive contract ---

func (x Factorial) negative() bool { return x.store.State.Sign() }

func (x Factorial) withSign(negative bool) Factorial {
	out := Factorial{store: x.store}
	out.store.State.SetSign(negative && !x.IsZero())
	return out
}

func (x Factorial) fromUint(v uint64) Factorial { return FactorialFromUint64(v) }

// cmpMag compares magnitudes digit by digit from the larger cached top
// index downward, treating absent digits as zero.
func (x Factorial) cmpMag(y Factorial) int {
	top := x.store.State.Aux()
	if yTop := y.store.State.Aux(); yTop > top {
		top = yTop
	}

	for i := top + 1; i > 0; i-- {
		xd, _, _ := factoradic.Extract(x.store, i-1)
		yd, _, _ := factoradic.Extract(y.store, i-1)
		if xd < yd {
			return -1
		}
		if xd > yd {
			return 1
		}
	}
	return 0
}

// addMag returns the magnitude sum by digit-wise mixed-radix carry
// propagation: the radix at digit index i is i+1. The loop continues past
// both operands' stored digits while a carry remains.
func (x Factorial) addMag(y Factorial) Factorial {
	var out Factorial
	var carry uint64

	for idx := uint64(0); ; idx++ {
		xd, xok, _ := factoradic.Extract(x.store, idx)
		yd, yok, _ := factoradic.Extract(y.store, idx)
		if !xok && !yok && carry == 0 {
			break
		}

		radix := idx + 1
		sum := xd + yd + carry
		carry = 0
		if sum >= radix {
			carry = 1
			sum -= radix
		}

		if err := factoradic.Put(&out.store, idx, sum); err != nil {
			panic(err)
		}
	}

	factoradic.Normalize(&out.store)
	return out
}

// subMag returns the magnitude difference x - y by digit-wise mixed-radix
// borrow propagation. The receiver's magnitude must not be smaller than the
// argument's; the operator derivation layer orders operands to guarantee
// this, and a leftover borrow panics with a magnitude error rather than
// writing an out-of-range sentinel digit.
func (x Factorial) subMag(y Factorial) Factorial {
	var out Factorial
	var borrow uint64

	for idx := uint64(0); ; idx++ {
		xd, xok, _ := factoradic.Extract(x.store, idx)
		yd, yok, _ := factoradic.Extract(y.store, idx)
		if !xok && !yok && borrow == 0 {
			break
		}
		if !xok && !yok {
			panic(apperrors.Magnitude.New("factorial magnitude subtraction underflow"))
		}

		radix := idx + 1
		need := yd + borrow
		var diff uint64
		if xd >= need {
			diff = xd - need
			borrow = 0
		} else {
			diff = xd + radix - need
			borrow = 1
		}

		if err := factoradic.Put(&out.store, idx, diff); err != nil {
			panic(err)
		}
	}

	factoradic.Normalize(&out.store)
	return out
}
