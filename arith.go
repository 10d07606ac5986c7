package numsys

import apperrors "github.com/numsys-go/numsys/internal/errors"

// Integral is the primitive contract the operator derivation layer works
// against. Both engines satisfy it; everything in this file is derived from
// these primitives and introduces no arithmetic of its own.
//
// The unexported methods expose sign-free magnitude operations: addMag and
// subMag ignore operand signs, and subMag requires the receiver's magnitude
// to be at least the argument's; the derivation layer is responsible for
// ordering operands before calling it.
type Integral[T any] interface {
	Cmp(T) int
	IsZero() bool
	Neg() T
	Mul(T) T
	Div(T) (T, error)
	Mod(T) (T, error)
	String() string

	negative() bool
	withSign(bool) T
	cmpMag(T) int
	addMag(T) T
	subMag(T) T
	fromUint(uint64) T
}

// addSigned derives signed addition from the magnitude primitives: matching
// signs add magnitudes and keep the common sign; equal magnitudes of
// opposite sign cancel to zero; otherwise the smaller magnitude is
// subtracted from the larger, which donates its sign.
func addSigned[T Integral[T]](lhs, rhs T) T {
	if lhs.negative() == rhs.negative() {
		return lhs.addMag(rhs).withSign(lhs.negative())
	}

	switch lhs.cmpMag(rhs) {
	case 0:
		return lhs.fromUint(0)
	case 1:
		return lhs.subMag(rhs).withSign(lhs.negative())
	default:
		return rhs.subMag(lhs).withSign(rhs.negative())
	}
}

// Abs returns the absolute value.
func Abs[T Integral[T]](v T) T {
	if v.negative() {
		return v.Neg()
	}
	return v
}

// Inc returns v + 1.
func Inc[T Integral[T]](v T) T { return addSigned(v, v.fromUint(1)) }

// Dec returns v - 1.
func Dec[T Integral[T]](v T) T { return addSigned(v, v.fromUint(1).Neg()) }

// Pow raises base to a non-negative exponent by squaring.
func Pow[T Integral[T]](base T, exp uint) T {
	result := base.fromUint(1)
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		exp >>= 1
	}
	return result
}

// Sqrt returns the integer square root: the largest m with m*m <= v. It
// fails with a domain error for negative values and returns 0 for 0.
func Sqrt[T Integral[T]](v T) (T, error) {
	var zero T
	if v.negative() {
		return zero, apperrors.Domain.New("square root of negative value")
	}
	if v.IsZero() {
		return v.fromUint(0), nil
	}

	two := v.fromUint(2)
	low := v.fromUint(1)
	high := v

	for low.Cmp(high) <= 0 {
		// The divisor is the constant 2, so the division cannot fail.
		mid, err := addSigned(low, high).Div(two)
		if err != nil {
			return zero, err
		}

		switch squared := mid.Mul(mid); squared.Cmp(v) {
		case 0:
			return mid, nil
		case -1:
			low = Inc(mid)
		default:
			high = Dec(mid)
		}
	}
	return high, nil
}
