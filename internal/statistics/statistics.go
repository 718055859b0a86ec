// Package statistics accumulates running sample statistics without keeping
// the samples.
package statistics

import (
	"fmt"
	"math"
)

// Summary tracks count, sum and sum of squares of a stream of values
type Summary struct {
	N     int
	Sum   float64
	SumSq float64 // for variance
}

// Add records one value
func (s *Summary) Add(x float64) {
	s.N++
	s.Sum += x
	s.SumSq += x * x
}

// Merge folds other into s. Merging is exact for integer-valued samples.
func (s *Summary) Merge(other Summary) {
	s.N += other.N
	s.Sum += other.Sum
	s.SumSq += other.SumSq
}

// Mean returns the arithmetic mean
func (s Summary) Mean() float64 {
	if s.N == 0 {
		return 0
	}
	return s.Sum / float64(s.N)
}

// Variance returns the sample variance
func (s Summary) Variance() float64 {
	if s.N < 2 {
		return 0
	}
	mean := s.Mean()
	v := (s.SumSq - float64(s.N)*mean*mean) / float64(s.N-1)
	return math.Max(v, 0)
}

// StdDev returns the sample standard deviation
func (s Summary) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s Summary) StdError() float64 {
	if s.N == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.N))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s Summary) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// String formats the mean with its 95% margin
func (s Summary) String() string {
	return fmt.Sprintf("%.4f ± %.4f (n=%d)", s.Mean(), 1.96*s.StdError(), s.N)
}
