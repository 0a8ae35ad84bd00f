package distributions

import "errors"

var (
	// ErrInvalidSampleCount is returned when asked for fewer than one observation.
	ErrInvalidSampleCount = errors.New("sample count must be positive")
	// ErrEmptySample is returned when a computation receives no observations.
	ErrEmptySample = errors.New("sample is empty")
	// ErrDegenerateSample is returned when a sample cannot parameterize its model.
	ErrDegenerateSample = errors.New("sample is degenerate")
	// ErrUnknownDistribution is returned for names outside Names().
	ErrUnknownDistribution = errors.New("unknown distribution")
)

// Name identifies one of the fixed distributions.
type Name string

const (
	Normal      Name = "Normal"
	Uniform     Name = "Uniform"
	Exponential Name = "Exponential"
	Binomial    Name = "Binomial"
	Poisson     Name = "Poisson"
)

// Names returns every distribution in reporting order.
func Names() []Name {
	return []Name{Normal, Uniform, Exponential, Binomial, Poisson}
}

// Discrete reports whether the distribution takes integer values only.
func (n Name) Discrete() bool {
	return n == Binomial || n == Poisson
}

func (n Name) String() string { return string(n) }

// Samples maps each distribution to its observations in draw order.
// A Samples value is never modified after Generate returns it.
type Samples map[Name][]float64

// Summary holds descriptive statistics of one sample.
//
// StdDev is the population standard deviation. Skewness and Kurtosis are
// the biased standardized moments; Kurtosis is excess (Fisher) kurtosis.
type Summary struct {
	Mean     float64
	Median   float64
	StdDev   float64
	Skewness float64
	Kurtosis float64
}

// FitResult is the outcome of a goodness-of-fit test.
type FitResult struct {
	Statistic float64
	PValue    float64
	Passed    bool
}
