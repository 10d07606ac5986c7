package decstr

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/numsys-go/numsys/internal/errors"
)

func TestValid(t *testing.T) {
	type TC struct {
		in   string
		want bool
	}

	tcs := []TC{
		{"0", true},
		{"-0", true},
		{"1", true},
		{"-1", true},
		{"907", true},
		{"123456789012345678901234567890", true},
		{"", false},
		{"-", false},
		{"01", false},
		{"-01", false},
		{"00", false},
		{"1a", false},
		{"+1", false},
		{" 1", false},
		{"1 ", false},
		{"--1", false},
	}

	for _, tc := range tcs {
		t.Run(tc.in, func(t *testing.T) {
			require.Equal(t, tc.want, Valid(tc.in))
		})
	}
}

func TestGreaterOrEqual(t *testing.T) {
	require.True(t, GreaterOrEqual("10", "9"))
	require.True(t, GreaterOrEqual("10", "10"))
	require.False(t, GreaterOrEqual("9", "10"))
	require.True(t, GreaterOrEqual("456", "123"))
	require.False(t, GreaterOrEqual("123", "456"))
}

func TestTrimZeros(t *testing.T) {
	require.Equal(t, "12", TrimLeadingZeros("0012"))
	require.Equal(t, "0", TrimLeadingZeros("0000"))
	require.Equal(t, "0", TrimLeadingZeros(""))
	require.Equal(t, "12", TrimTrailingZeros("1200"))
	require.Equal(t, "0", TrimTrailingZeros("0000"))
	require.Equal(t, "0", TrimTrailingZeros(""))
}

func TestAdd(t *testing.T) {
	type TC struct {
		a, b, want string
	}

	tcs := []TC{
		{"999", "1", "1000"},
		{"1", "999", "1000"},
		{"0", "0", "0"},
		{"0", "5", "5"},
		{"123456789012345678901234567890", "98765432109876543210987654321", "222222221122222222112222222211"},
	}

	for _, tc := range tcs {
		require.Equal(t, tc.want, Add(tc.a, tc.b), "Add(%s, %s)", tc.a, tc.b)
	}
}

func TestSub(t *testing.T) {
	got, err := Sub("1000", "1")
	require.NoError(t, err)
	require.Equal(t, "999", got)

	got, err = Sub("456", "456")
	require.NoError(t, err)
	require.Equal(t, "0", got)

	got, err = Sub("456", "0")
	require.NoError(t, err)
	require.Equal(t, "456", got)

	_, err = Sub("1", "1000")
	require.Error(t, err)
	require.True(t, apperrors.Magnitude.Has(err))
}

func TestMul(t *testing.T) {
	require.Equal(t, "56088", Mul("123", "456"))
	require.Equal(t, "0", Mul("123", "0"))
	require.Equal(t, "0", Mul("0", "456"))
	require.Equal(t, "1", Mul("1", "1"))
	require.Equal(t,
		"121932631137021795226185032733622923332237463801111263526900",
		Mul("123456789012345678901234567890", "987654321098765432109876543210"))
}

func TestMulWord(t *testing.T) {
	require.Equal(t, "0", MulWord("123", 0))
	require.Equal(t, "123", MulWord("123", 1))
	require.Equal(t, "246", MulWord("123", 2))
	require.Equal(t, "2432902008176640000", MulWord("121645100408832000", 20)) // 19! * 20
}

func TestDivWord(t *testing.T) {
	q, r, err := DivWord("123", 10)
	require.NoError(t, err)
	require.Equal(t, "12", q)
	require.Equal(t, uint64(3), r)

	q, r, err = DivWord("0", 7)
	require.NoError(t, err)
	require.Equal(t, "0", q)
	require.Equal(t, uint64(0), r)

	q, r, err = DivWord("65550", 2)
	require.NoError(t, err)
	require.Equal(t, "32775", q)
	require.Equal(t, uint64(0), r)

	_, _, err = DivWord("123", 0)
	require.Error(t, err)
	require.True(t, apperrors.DivideByZero.Has(err))
}

func TestDiv(t *testing.T) {
	q, r, err := Div("65550", "3")
	require.NoError(t, err)
	require.Equal(t, "21850", q)
	require.Equal(t, "0", r)

	q, r, err = Div("21850", "4")
	require.NoError(t, err)
	require.Equal(t, "5462", q)
	require.Equal(t, "2", r)

	q, r, err = Div("5", "100")
	require.NoError(t, err)
	require.Equal(t, "0", q)
	require.Equal(t, "5", r)

	_, _, err = Div("1", "0")
	require.Error(t, err)
	require.True(t, apperrors.DivideByZero.Has(err))
}

// TestKernelAgainstBigInt cross-checks the string kernel against math/big
// over a spread of operand sizes.
func TestKernelAgainstBigInt(t *testing.T) {
	operands := []string{
		"1", "9", "10", "99", "12345",
		"4294967296", "18446744073709551615",
		"340282366920938463463374607431768211456",
		"99999999999999999999999999999999999999999999999",
	}

	for _, a := range operands {
		for _, b := range operands {
			ba, _ := new(big.Int).SetString(a, 10)
			bb, _ := new(big.Int).SetString(b, 10)

			require.Equal(t, new(big.Int).Add(ba, bb).String(), Add(a, b), "add %s %s", a, b)
			require.Equal(t, new(big.Int).Mul(ba, bb).String(), Mul(a, b), "mul %s %s", a, b)

			if GreaterOrEqual(a, b) {
				got, err := Sub(a, b)
				require.NoError(t, err)
				require.Equal(t, new(big.Int).Sub(ba, bb).String(), got, "sub %s %s", a, b)
			}

			q, r, err := Div(a, b)
			require.NoError(t, err)
			require.Equal(t, new(big.Int).Quo(ba, bb).String(), q, "div %s %s", a, b)
			require.Equal(t, new(big.Int).Rem(ba, bb).String(), r, "rem %s %s", a, b)
		}
	}
}
