// Package distributions samples five standard probability distributions and
// compares each sample against its theoretical model.
//
// The pipeline is generate, plot, summarize, fit:
//
//	samples, err := distributions.Generate(1000, nil)
//	err = distributions.Plot(samples, "probability_distributions.png")
//	summaries, err := distributions.SummarizeAll(samples)
//	results, err := distributions.FitTestAll(samples, 0.05)
//
// Sampling, densities and CDFs come from gonum's distuv. Moments come from
// gonum's stat, medians and quartiles from montanaflynn/stats, and the
// comparison figure is drawn with gonum/plot.
//
// The goodness-of-fit test is a one-sample Kolmogorov-Smirnov test. The
// Poisson reference takes its rate from the very sample under test, which
// biases the statistic's null distribution toward acceptance. That is kept
// on purpose so results stay comparable with earlier runs.
package distributions
