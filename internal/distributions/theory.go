package distributions

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// density evaluates a PDF or PMF at x.
type density func(x float64) float64

// cdf evaluates a cumulative distribution function at x.
type cdf func(x float64) float64

// overlayDensity returns the theoretical curve drawn over the histogram of
// data. Parameters are estimated from data itself, except for Binomial which
// keeps its generating parameters.
func overlayDensity(name Name, data []float64) (density, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptySample)
	}

	mean := stat.Mean(data, nil)

	switch name {
	case Normal:
		sd := math.Sqrt(stat.Moment(2, data, nil))
		if sd == 0 {
			return nil, fmt.Errorf("%s: %w: zero variance", name, ErrDegenerateSample)
		}
		return distuv.Normal{Mu: mean, Sigma: sd}.Prob, nil
	case Uniform:
		lo, _ := stats.Min(data)
		hi, _ := stats.Max(data)
		if hi <= lo {
			return nil, fmt.Errorf("%s: %w: empty support", name, ErrDegenerateSample)
		}
		return distuv.Uniform{Min: lo, Max: hi}.Prob, nil
	case Exponential:
		// Scale is 1/mean, so the rate equals the sample mean.
		if mean <= 0 {
			return nil, fmt.Errorf("%s: %w: non-positive mean", name, ErrDegenerateSample)
		}
		return distuv.Exponential{Rate: mean}.Prob, nil
	case Binomial:
		return distuv.Binomial{N: 10, P: 0.5}.Prob, nil
	case Poisson:
		if mean <= 0 {
			return nil, fmt.Errorf("%s: %w: non-positive mean", name, ErrDegenerateSample)
		}
		return distuv.Poisson{Lambda: mean}.Prob, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDistribution, name)
	}
}

// referenceCDF returns the hypothesized distribution for the fit test.
// Normal, Uniform and Exponential use the standard forms; Poisson takes its
// rate from data.
func referenceCDF(name Name, data []float64) (cdf, error) {
	switch name {
	case Normal:
		return distuv.UnitNormal.CDF, nil
	case Uniform:
		return distuv.Uniform{Min: 0, Max: 1}.CDF, nil
	case Exponential:
		return distuv.Exponential{Rate: 1}.CDF, nil
	case Binomial:
		return distuv.Binomial{N: 10, P: 0.5}.CDF, nil
	case Poisson:
		if len(data) == 0 {
			return nil, fmt.Errorf("%s: %w", name, ErrEmptySample)
		}
		lambda := stat.Mean(data, nil)
		if lambda <= 0 {
			return nil, fmt.Errorf("%s: %w: non-positive mean", name, ErrDegenerateSample)
		}
		return distuv.Poisson{Lambda: lambda}.CDF, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDistribution, name)
	}
}
