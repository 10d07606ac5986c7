package numsys

import (
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/numsys-go/numsys/internal/errors"
)

func mustBinary(t *testing.T, s string) Binary {
	t.Helper()
	v, err := ParseBinary(s)
	require.NoError(t, err)
	return v
}

func mustFactorial(t *testing.T, s string) Factorial {
	t.Helper()
	v, err := ParseFactorial(s)
	require.NoError(t, err)
	return v
}

func TestAbs(t *testing.T) {
	require.Equal(t, "7", Abs(mustBinary(t, "-7")).String())
	require.Equal(t, "7", Abs(mustBinary(t, "7")).String())
	require.Equal(t, "0", Abs(mustBinary(t, "0")).String())

	require.Equal(t, "7", Abs(mustFactorial(t, "-7")).String())
	require.Equal(t, "0", Abs(mustFactorial(t, "0")).String())
}

func TestIncDec(t *testing.T) {
	require.Equal(t, "1", Inc(mustBinary(t, "0")).String())
	require.Equal(t, "0", Inc(mustBinary(t, "-1")).String())
	require.Equal(t, "4294967296", Inc(mustBinary(t, "4294967295")).String())

	require.Equal(t, "-1", Dec(mustBinary(t, "0")).String())
	require.Equal(t, "4294967295", Dec(mustBinary(t, "4294967296")).String())

	require.Equal(t, "24", Inc(mustFactorial(t, "23")).String())
	require.Equal(t, "23", Dec(mustFactorial(t, "24")).String())
	require.Equal(t, "-1", Dec(mustFactorial(t, "0")).String())
}

func TestPow(t *testing.T) {
	cases := []struct {
		base string
		exp  uint
		want string
	}{
		{"2", 10, "1024"},
		{"-2", 3, "-8"},
		{"-2", 4, "16"},
		{"7", 0, "1"},
		{"0", 0, "1"},
		{"0", 5, "0"},
		{"10", 30, "1000000000000000000000000000000"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Pow(mustBinary(t, tc.base), tc.exp).String(),
			"binary %s^%d", tc.base, tc.exp)
		require.Equal(t, tc.want, Pow(mustFactorial(t, tc.base), tc.exp).String(),
			"factorial %s^%d", tc.base, tc.exp)
	}
}

func TestSqrt(t *testing.T) {
	cases := []struct{ v, want string }{
		{"0", "0"},
		{"1", "1"},
		{"2", "1"},
		{"3", "1"},
		{"4", "2"},
		{"624", "24"},
		{"625", "25"},
		{"626", "25"},
		{"1000000000000000000000000000000", "1000000000000000"},
	}
	for _, tc := range cases {
		got, err := Sqrt(mustBinary(t, tc.v))
		require.NoError(t, err)
		require.Equal(t, tc.want, got.String(), "binary sqrt(%s)", tc.v)

		got2, err := Sqrt(mustFactorial(t, tc.v))
		require.NoError(t, err)
		require.Equal(t, tc.want, got2.String(), "factorial sqrt(%s)", tc.v)
	}
}

func TestSqrtNegative(t *testing.T) {
	_, err := Sqrt(mustBinary(t, "-4"))
	require.Error(t, err)
	require.True(t, apperrors.Domain.Has(err))

	_, err = Sqrt(mustFactorial(t, "-4"))
	require.Error(t, err)
	require.True(t, apperrors.Domain.Has(err))
}

func TestAdditiveInverse(t *testing.T) {
	for _, s := range []string{"0", "1", "-17", "4294967296", "123456789012345678901234567890"} {
		b := mustBinary(t, s)
		require.Equal(t, "0", b.Add(b.Neg()).String(), "binary %s", s)

		f := mustFactorial(t, s)
		require.Equal(t, "0", f.Add(f.Neg()).String(), "factorial %s", s)
	}
}
