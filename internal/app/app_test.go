package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/numsys-go/numsys/internal/errors"
)

func newApp(t *testing.T, args ...string) *Application {
	t.Helper()
	a, err := New(append([]string{"numsys"}, args...), &bytes.Buffer{})
	require.NoError(t, err)
	return a
}

func TestRunCalcBothSystems(t *testing.T) {
	a := newApp(t, "-lhs", "123", "-op", "mul", "-rhs", "456")
	var out bytes.Buffer

	code := a.Run(context.Background(), &out)
	require.Equal(t, apperrors.ExitSuccess, code)
	require.Contains(t, out.String(), "56088")
	require.Contains(t, out.String(), "binary")
	require.Contains(t, out.String(), "factorial")
	require.Contains(t, out.String(), "agree")
}

func TestRunCalcQuiet(t *testing.T) {
	a := newApp(t, "-lhs", "999", "-op", "add", "-rhs", "1", "-quiet")
	var out bytes.Buffer

	code := a.Run(context.Background(), &out)
	require.Equal(t, apperrors.ExitSuccess, code)
	require.Equal(t, "1000\n", out.String())
}

func TestRunCalcSingleSystem(t *testing.T) {
	a := newApp(t, "-lhs", "65550", "-op", "div", "-rhs", "3", "-system", "binary", "-quiet")
	var out bytes.Buffer

	code := a.Run(context.Background(), &out)
	require.Equal(t, apperrors.ExitSuccess, code)
	require.Equal(t, "21850\n", out.String())
}

func TestRunCalcUnaryOps(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"-lhs", "2", "-op", "pow", "-pow", "10"}, "1024"},
		{[]string{"-lhs", "-2", "-op", "pow", "-pow", "3"}, "-8"},
		{[]string{"-lhs", "625", "-op", "sqrt"}, "25"},
		{[]string{"-lhs", "2", "-op", "sqrt"}, "1"},
		{[]string{"-lhs", "-7", "-op", "abs"}, "7"},
		{[]string{"-lhs", "7", "-op", "cmp", "-rhs", "3"}, "1"},
	}
	for _, tc := range cases {
		a := newApp(t, append(tc.args, "-quiet")...)
		var out bytes.Buffer
		code := a.Run(context.Background(), &out)
		require.Equal(t, apperrors.ExitSuccess, code, "%v", tc.args)
		require.Equal(t, tc.want+"\n", out.String(), "%v", tc.args)
	}
}

func TestRunCalcDivideByZero(t *testing.T) {
	var errBuf bytes.Buffer
	a, err := New([]string{"numsys", "-lhs", "5", "-op", "div", "-rhs", "0", "-quiet"}, &errBuf)
	require.NoError(t, err)

	var out bytes.Buffer
	code := a.Run(context.Background(), &out)
	require.Equal(t, apperrors.ExitErrorGeneric, code)
	require.Contains(t, errBuf.String(), "divide by zero")
}

func TestRunCalcInvalidOperand(t *testing.T) {
	var errBuf bytes.Buffer
	a, err := New([]string{"numsys", "-lhs", "12a", "-op", "add", "-rhs", "1", "-quiet"}, &errBuf)
	require.NoError(t, err)

	var out bytes.Buffer
	code := a.Run(context.Background(), &out)
	require.Equal(t, apperrors.ExitErrorGeneric, code)
	require.Contains(t, errBuf.String(), "invalid format")
}

func TestNewRejectsBadConfig(t *testing.T) {
	var errBuf bytes.Buffer
	_, err := New([]string{"numsys", "-op", "frobnicate", "-lhs", "1"}, &errBuf)
	require.Error(t, err)
	require.True(t, IsConfigError(err))
}

func TestRunBenchSmall(t *testing.T) {
	a := newApp(t, "-bench", "-min-digits", "2", "-max-digits", "4", "-iters", "3", "-seed", "5", "-quiet")
	var out bytes.Buffer

	code := a.Run(context.Background(), &out)
	require.Equal(t, apperrors.ExitSuccess, code)
	require.Contains(t, out.String(), "Benchmark report")
	require.Contains(t, out.String(), "binary")
	require.Contains(t, out.String(), "factorial")
}

func TestHasVersionFlag(t *testing.T) {
	require.True(t, HasVersionFlag([]string{"-version"}))
	require.True(t, HasVersionFlag([]string{"--version"}))
	require.False(t, HasVersionFlag([]string{"-lhs", "1"}))
}

func TestPrintVersion(t *testing.T) {
	var out bytes.Buffer
	PrintVersion(&out)
	require.True(t, strings.HasPrefix(out.String(), "numsys "))
}
