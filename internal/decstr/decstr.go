// Package decstr implements base-10 arithmetic over magnitude strings.
//
// All operations treat their inputs as unsigned magnitudes; sign handling
// belongs to the callers. The package backs decimal construction and
// stringification for both engines and serves as the multiply/divide
// substrate for the factorial engine.
package decstr

import (
	"strings"

	apperrors "github.com/numsys-go/numsys/internal/errors"
)

const zeroDigit = '0'

// Valid reports whether s is a well-formed decimal integer: an optional
// leading '-', at least one digit, no leading zeros except for "0" itself,
// and ASCII digits throughout.
func Valid(s string) bool {
	if s == "" {
		return false
	}

	start := 0
	if s[0] == '-' {
		if len(s) == 1 {
			return false
		}
		start = 1
	}

	// "0123" and "-0123" are rejected; "0" and "-0" pass.
	if len(s) > start+1 && s[start] == zeroDigit {
		return false
	}

	for i := start; i < len(s); i++ {
		if s[i] < zeroDigit || s[i] > '9' {
			return false
		}
	}
	return true
}

// GreaterOrEqual reports whether magnitude a >= magnitude b. Inputs must be
// canonical (no leading zeros), which makes length the primary key.
func GreaterOrEqual(a, b string) bool {
	if len(a) != len(b) {
		return len(a) > len(b)
	}
	return a >= b
}

// TrimLeadingZeros removes leading zero characters. If the string empties, a
// single zero is reinserted so the result is always a valid number.
func TrimLeadingZeros(s string) string {
	i := 0
	for i < len(s) && s[i] == zeroDigit {
		i++
	}
	if i == len(s) {
		return "0"
	}
	return s[i:]
}

// TrimTrailingZeros removes trailing zero characters, reinserting a single
// zero if the string empties.
func TrimTrailingZeros(s string) string {
	i := len(s)
	for i > 0 && s[i-1] == zeroDigit {
		i--
	}
	if i == 0 {
		return "0"
	}
	return s[:i]
}

// Add returns the sum of two magnitude strings.
func Add(a, b string) string {
	if len(a) < len(b) {
		a, b = b, a
	}

	var sb strings.Builder
	sb.Grow(len(a) + 1)

	carry := 0
	i, j := len(a)-1, len(b)-1
	buf := make([]byte, 0, len(a)+1)

	for i >= 0 || carry != 0 {
		sum := carry
		if i >= 0 {
			sum += int(a[i] - zeroDigit)
		}
		if j >= 0 {
			sum += int(b[j] - zeroDigit)
		}
		buf = append(buf, byte(sum%10)+zeroDigit)
		carry = sum / 10
		i--
		j--
	}

	reverse(buf)
	sb.Write(buf)
	return TrimLeadingZeros(sb.String())
}

// Sub returns a - b for magnitude strings. The minuend must be greater than
// or equal to the subtrahend; otherwise a magnitude error is returned, since
// the kernel only produces non-negative results.
func Sub(a, b string) (string, error) {
	if b == "0" {
		return a, nil
	}
	if a == b {
		return "0", nil
	}
	if !GreaterOrEqual(a, b) {
		return "", apperrors.Magnitude.New("subtraction minuend %s smaller than subtrahend %s", a, b)
	}

	buf := make([]byte, 0, len(a))
	borrow := 0
	i, j := len(a)-1, len(b)-1

	for i >= 0 {
		diff := int(a[i]-zeroDigit) - borrow
		if j >= 0 {
			diff -= int(b[j] - zeroDigit)
		}
		if diff < 0 {
			diff += 10
			borrow = 1
		} else {
			borrow = 0
		}
		buf = append(buf, byte(diff)+zeroDigit)
		i--
		j--
	}

	reverse(buf)
	return TrimLeadingZeros(string(buf)), nil
}

// Mul returns the product of two magnitude strings using long multiplication.
func Mul(a, b string) string {
	if a == "0" || b == "0" {
		return "0"
	}

	digits := make([]int, len(a)+len(b))
	for i := len(a) - 1; i >= 0; i-- {
		da := int(a[i] - zeroDigit)
		for j := len(b) - 1; j >= 0; j-- {
			db := int(b[j] - zeroDigit)
			sum := da*db + digits[i+j+1]
			digits[i+j+1] = sum % 10
			digits[i+j] += sum / 10
		}
	}

	buf := make([]byte, len(digits))
	for i, d := range digits {
		buf[i] = byte(d) + zeroDigit
	}
	return TrimLeadingZeros(string(buf))
}

// MulWord returns the product of a magnitude string and a machine word.
func MulWord(s string, factor uint64) string {
	if factor == 0 || s == "0" {
		return "0"
	}
	if factor == 1 {
		return s
	}

	buf := make([]byte, 0, len(s)+20)
	var carry uint64
	for i := len(s) - 1; i >= 0; i-- {
		product := uint64(s[i]-zeroDigit)*factor + carry
		buf = append(buf, byte(product%10)+zeroDigit)
		carry = product / 10
	}
	for carry > 0 {
		buf = append(buf, byte(carry%10)+zeroDigit)
		carry /= 10
	}

	reverse(buf)
	return string(buf)
}

// DivWord divides a magnitude string by a machine word, returning the
// quotient string and the numeric remainder. A zero divisor yields a
// divide-by-zero error.
func DivWord(s string, divisor uint64) (string, uint64, error) {
	if divisor == 0 {
		return "", 0, apperrors.DivideByZero.New("string division by zero word")
	}
	if s == "" || s == "0" {
		return "0", 0, nil
	}

	var remainder uint64
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		acc := remainder*10 + uint64(s[i]-zeroDigit)
		buf = append(buf, byte(acc/divisor)+zeroDigit)
		remainder = acc % divisor
	}

	return TrimLeadingZeros(string(buf)), remainder, nil
}

// Div divides one magnitude string by another via schoolbook long division,
// returning quotient and remainder strings. A zero divisor yields a
// divide-by-zero error.
func Div(a, b string) (quotient, remainder string, err error) {
	if b == "0" {
		return "", "", apperrors.DivideByZero.New("string division by zero")
	}
	if a == "0" {
		return "0", "0", nil
	}
	if !GreaterOrEqual(a, b) {
		return "0", a, nil
	}

	qbuf := make([]byte, 0, len(a))
	rem := ""
	for i := 0; i < len(a); i++ {
		rem = TrimLeadingZeros(rem + string(a[i]))

		count := byte(0)
		for GreaterOrEqual(rem, b) {
			rem, err = Sub(rem, b)
			if err != nil {
				return "", "", err
			}
			count++
		}
		qbuf = append(qbuf, count+zeroDigit)
	}

	return TrimLeadingZeros(string(qbuf)), TrimLeadingZeros(rem), nil
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
