// Package main is the entry point of the probability distribution workbench.
//
// One run draws samples from the Normal, Uniform, Exponential, Binomial and
// Poisson distributions, writes a comparison figure of histograms against
// theoretical curves, prints descriptive statistics and prints a
// Kolmogorov-Smirnov goodness-of-fit verdict per distribution.
//
// Usage:
//
//	# Defaults: 1000 samples, unseeded, figure in ./probability_distributions.png
//	./distributions
//
//	# Reproducible run
//	./distributions -samples 500 -seed 42 -out /tmp/dists.png
//
// Any failure aborts the run with a non-zero exit status.
package main
