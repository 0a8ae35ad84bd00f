package distributions

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// Summarize computes the descriptive statistics of data.
// Skewness and Kurtosis are NaN when data has zero variance.
func Summarize(data []float64) (Summary, error) {
	if len(data) == 0 {
		return Summary{}, ErrEmptySample
	}

	median, err := stats.Median(data)
	if err != nil {
		return Summary{}, fmt.Errorf("median: %w", err)
	}

	m2 := stat.Moment(2, data, nil)
	m3 := stat.Moment(3, data, nil)
	m4 := stat.Moment(4, data, nil)

	s := Summary{
		Mean:     stat.Mean(data, nil),
		Median:   median,
		StdDev:   math.Sqrt(m2),
		Skewness: math.NaN(),
		Kurtosis: math.NaN(),
	}
	if m2 > 0 {
		s.Skewness = m3 / math.Pow(m2, 1.5)
		s.Kurtosis = m4/(m2*m2) - 3
	}
	return s, nil
}

// SummarizeAll summarizes every sample.
func SummarizeAll(samples Samples) (map[Name]Summary, error) {
	out := make(map[Name]Summary, len(samples))
	for _, name := range Names() {
		data, ok := samples[name]
		if !ok {
			continue
		}
		s, err := Summarize(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out[name] = s
	}
	return out, nil
}
