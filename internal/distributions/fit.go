package distributions

import (
	"fmt"
	"math"
	"slices"
)

// DefaultAlpha is the significance level used by the reports.
const DefaultAlpha = 0.05

// FitTest runs a two-sided one-sample Kolmogorov-Smirnov test of data
// against the reference model for name. Passed is true when the p-value
// exceeds alpha.
func FitTest(name Name, data []float64, alpha float64) (FitResult, error) {
	if len(data) == 0 {
		return FitResult{}, fmt.Errorf("%s: %w", name, ErrEmptySample)
	}

	ref, err := referenceCDF(name, data)
	if err != nil {
		return FitResult{}, err
	}

	d := ksStatistic(data, ref)
	p := ksPValue(d, len(data))
	return FitResult{
		Statistic: d,
		PValue:    p,
		Passed:    p > alpha,
	}, nil
}

// FitTestAll tests every sample.
func FitTestAll(samples Samples, alpha float64) (map[Name]FitResult, error) {
	out := make(map[Name]FitResult, len(samples))
	for _, name := range Names() {
		data, ok := samples[name]
		if !ok {
			continue
		}
		r, err := FitTest(name, data, alpha)
		if err != nil {
			return nil, err
		}
		out[name] = r
	}
	return out, nil
}

// ksStatistic returns D = max(D+, D-) between the empirical CDF of data and ref.
func ksStatistic(data []float64, ref cdf) float64 {
	sorted := slices.Clone(data)
	slices.Sort(sorted)

	n := float64(len(sorted))
	var dPlus, dMinus float64
	for i, x := range sorted {
		fx := ref(x)
		if v := float64(i+1)/n - fx; v > dPlus {
			dPlus = v
		}
		if v := fx - float64(i)/n; v > dMinus {
			dMinus = v
		}
	}
	return math.Max(dPlus, dMinus)
}

// ksPValue approximates P(D >= d) for a sample of size n using the limiting
// Kolmogorov distribution with Stephens' finite-sample correction.
func ksPValue(d float64, n int) float64 {
	sqrtN := math.Sqrt(float64(n))
	return kolmogorovQ((sqrtN + 0.12 + 0.11/sqrtN) * d)
}

// kolmogorovQ is the complementary Kolmogorov distribution
// Q(z) = 2 * sum_{j>=1} (-1)^(j-1) exp(-2 j^2 z^2).
// Below z = 1.18 the dual theta series converges faster and is used instead.
func kolmogorovQ(z float64) float64 {
	if z <= 0 {
		return 1
	}
	if z < 1.18 {
		// 1 - sqrt(2*pi)/z * sum exp(-(2j-1)^2 pi^2 / (8 z^2))
		y := math.Exp(-math.Pi * math.Pi / (8 * z * z))
		p := math.Sqrt(2*math.Pi) / z * (y + math.Pow(y, 9) + math.Pow(y, 25) + math.Pow(y, 49))
		return clamp01(1 - p)
	}
	x := math.Exp(-2 * z * z)
	return clamp01(2 * (x - math.Pow(x, 4) + math.Pow(x, 9)))
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
