package distributions

import (
	"fmt"
	"io"
	"strings"
)

const rule = "--------------------------------------------------"

// WriteSummaries prints the statistical summary in distribution order.
func WriteSummaries(w io.Writer, summaries map[Name]Summary) error {
	var b strings.Builder
	b.WriteString("\nStatistical Summary:\n")
	b.WriteString(rule + "\n")

	for _, name := range Names() {
		s, ok := summaries[name]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "\n%s Distribution:\n", name)
		fmt.Fprintf(&b, "Mean: %.4f\n", s.Mean)
		fmt.Fprintf(&b, "Median: %.4f\n", s.Median)
		fmt.Fprintf(&b, "Standard Deviation: %.4f\n", s.StdDev)
		fmt.Fprintf(&b, "Skewness: %.4f\n", s.Skewness)
		fmt.Fprintf(&b, "Kurtosis: %.4f\n", s.Kurtosis)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteFitResults prints the Kolmogorov-Smirnov results in distribution order.
func WriteFitResults(w io.Writer, results map[Name]FitResult) error {
	var b strings.Builder
	b.WriteString("\nKolmogorov-Smirnov Test Results:\n")
	b.WriteString(rule + "\n")

	for _, name := range Names() {
		r, ok := results[name]
		if !ok {
			continue
		}
		verdict := "No"
		if r.Passed {
			verdict = "Yes"
		}
		fmt.Fprintf(&b, "\n%s Distribution:\n", name)
		fmt.Fprintf(&b, "P-value: %.4f\n", r.PValue)
		fmt.Fprintf(&b, "Follows theoretical distribution: %s\n", verdict)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
