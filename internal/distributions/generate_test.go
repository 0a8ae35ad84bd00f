package distributions

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed)
}

func TestGenerateKeysAndLengths(t *testing.T) {
	samples, err := Generate(500, nil)
	require.NoError(t, err)

	require.Len(t, samples, 5)
	for _, name := range Names() {
		data, ok := samples[name]
		require.True(t, ok, "missing %s", name)
		assert.Len(t, data, 500, name)
	}
}

func TestGenerateRejectsNonPositiveCount(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := Generate(n, nil)
		assert.ErrorIs(t, err, ErrInvalidSampleCount)
	}
}

func TestGenerateSupports(t *testing.T) {
	samples, err := Generate(2000, seeded(7))
	require.NoError(t, err)

	for _, v := range samples[Binomial] {
		assert.Equal(t, math.Trunc(v), v, "binomial value %v is not an integer", v)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 10.0)
	}
	for _, v := range samples[Poisson] {
		assert.Equal(t, math.Trunc(v), v, "poisson value %v is not an integer", v)
		assert.GreaterOrEqual(t, v, 0.0)
	}
	for _, v := range samples[Uniform] {
		assert.GreaterOrEqual(t, v, -3.0)
		assert.LessOrEqual(t, v, 3.0)
	}
	for _, v := range samples[Exponential] {
		assert.GreaterOrEqual(t, v, 0.0)
	}
}

func TestGenerateIsReproducibleWithSeed(t *testing.T) {
	a, err := Generate(100, seeded(42))
	require.NoError(t, err)
	b, err := Generate(100, seeded(42))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestGenerateMomentsAreNearTheirTargets(t *testing.T) {
	samples, err := Generate(20000, seeded(1))
	require.NoError(t, err)

	tests := []struct {
		name Name
		mean float64
	}{
		{Normal, 0},
		{Uniform, 0},
		{Exponential, 1},
		{Binomial, 5},
		{Poisson, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name.String(), func(t *testing.T) {
			s, err := Summarize(samples[tt.name])
			require.NoError(t, err)
			// At least eight standard errors for every distribution here.
			assert.InDelta(t, tt.mean, s.Mean, 0.1)
		})
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, []Name{Normal, Uniform, Exponential, Binomial, Poisson}, Names())
	assert.True(t, Binomial.Discrete())
	assert.True(t, Poisson.Discrete())
	assert.False(t, Normal.Discrete())
}
