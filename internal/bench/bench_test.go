package bench

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/numsys-go/numsys/internal/logging"
)

func TestRandomDecimal(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for digits := 1; digits <= 40; digits++ {
		s := randomDecimal(rng, digits)
		require.Len(t, s, digits)
		if digits > 1 {
			require.NotEqual(t, byte('0'), s[0], "multi-digit operands must not start with zero")
		}
		for i := 0; i < len(s); i++ {
			require.True(t, s[i] >= '0' && s[i] <= '9')
		}
	}
}

func TestGenerateOperandsBumpsZeroDivisors(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	found := false
	for tries := 0; tries < 200 && !found; tries++ {
		set := generateOperands(rng, 1, 50)
		for i := range set.rhs {
			require.NotEqual(t, "0", set.divisors[i])
			if set.rhs[i] == "0" {
				require.Equal(t, "1", set.divisors[i])
				found = true
			}
		}
	}
	require.True(t, found, "expected at least one zero right-hand side among single-digit operands")
}

func TestRunProducesConsistentReport(t *testing.T) {
	opts := Options{
		MinDigits: 2,
		MaxDigits: 8,
		Iters:     5,
		Seed:      42,
		Log:       logging.Nop(),
	}

	var observed int
	opts.Observe = func(system, op string, seconds float64) {
		observed++
		require.Contains(t, Systems, system)
		require.Contains(t, Ops, op)
		require.GreaterOrEqual(t, seconds, 0.0)
	}

	report, err := Run(context.Background(), opts)
	require.NoError(t, err)

	// Sizes 2, 4, 8 with two engines each.
	require.Len(t, report.Sizes, 3)
	for _, size := range report.Sizes {
		require.Len(t, size.Systems, 2)
		for _, sys := range size.Systems {
			require.Len(t, sys.Stats, len(Ops))
			for _, st := range sys.Stats {
				require.Equal(t, 5, st.Iters)
			}
		}
	}

	// 3 sizes * 2 engines * 6 ops * 5 iterations.
	require.Equal(t, 180, observed)
}

func TestRunHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Options{
		MinDigits: 2,
		MaxDigits: 4,
		Iters:     2,
		Seed:      1,
		Log:       logging.Nop(),
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunSameSeedIsDeterministic(t *testing.T) {
	base := Options{MinDigits: 2, MaxDigits: 2, Iters: 3, Seed: 99, Log: logging.Nop()}

	rng1 := rand.New(rand.NewSource(base.Seed))
	rng2 := rand.New(rand.NewSource(base.Seed))
	set1 := generateOperands(rng1, 6, 10)
	set2 := generateOperands(rng2, 6, 10)
	require.Equal(t, set1, set2)

	start := time.Now()
	_, err := Run(context.Background(), base)
	require.NoError(t, err)
	require.Less(t, time.Since(start), time.Minute)
}
