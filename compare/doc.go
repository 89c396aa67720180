// Package compare summarizes sampled energy distributions and bins several
// distributions on shared dividers so that they can be compared side by side.
//
// Summaries use gonum's stat package: the standard deviation is the unbiased
// sample estimate and quartiles use the empirical CDF. Histogram dividers are
// evenly spaced over the union range of every series; the last bin is closed.
package compare
