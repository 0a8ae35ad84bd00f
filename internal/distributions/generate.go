package distributions

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// sampler draws one observation.
type sampler interface {
	Rand() float64
}

// generators returns the fixed generating distributions.
func generators(src rand.Source) map[Name]sampler {
	return map[Name]sampler{
		Normal:      distuv.Normal{Mu: 0, Sigma: 1, Src: src},
		Uniform:     distuv.Uniform{Min: -3, Max: 3, Src: src},
		Exponential: distuv.Exponential{Rate: 1, Src: src},
		Binomial:    distuv.Binomial{N: 10, P: 0.5, Src: src},
		Poisson:     distuv.Poisson{Lambda: 2, Src: src},
	}
}

// Generate draws n independent observations from each distribution.
// A nil src uses the unseeded global generator, so runs differ.
func Generate(n int, src rand.Source) (Samples, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSampleCount, n)
	}

	gens := generators(src)
	samples := make(Samples, len(gens))
	for _, name := range Names() {
		gen := gens[name]
		data := make([]float64, n)
		for i := range data {
			data[i] = gen.Rand()
		}
		samples[name] = data
	}
	return samples, nil
}
