package stats

import (
	"fmt"
	"math"
	"sort"
)

// Sample is an immutable, sorted copy of a set of finite numbers.
type Sample struct {
	sorted []float64
	sum    float64
}

// Summary collects the descriptive statistics of a non-empty sample.
type Summary struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
	Median  float64 `json:"median"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

// NewSample validates numbers and returns a Sample over a sorted copy of
// them. The caller's slice is left untouched.
//
// Returns an error wrapping ErrNonFinite if any value is NaN or infinite.
func NewSample(numbers []float64) (*Sample, error) {
	sorted := make([]float64, len(numbers))
	var sum float64
	for i, n := range numbers {
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return nil, fmt.Errorf("%w: %v at index %d", ErrNonFinite, n, i)
		}
		sorted[i] = n
		sum += n
	}
	sort.Float64s(sorted)

	return &Sample{sorted: sorted, sum: sum}, nil
}

// Len returns the number of values in the sample.
func (s *Sample) Len() int {
	return len(s.sorted)
}

// Average returns the arithmetic mean. ok is false for an empty sample.
func (s *Sample) Average() (avg float64, ok bool) {
	n := float64(len(s.sorted))
	if n == 0 {
		return 0, false
	}
	if !math.IsInf(s.sum, 0) {
		return s.sum / n, true
	}

	// The running sum overflowed; the mean of finite values still fits.
	var scaled float64
	for _, v := range s.sorted {
		scaled += v / n
	}
	return scaled, true
}

// Median returns the middle value of the sample. For an even number of
// values it is the mean of the two central values, not the lower or upper
// median. ok is false for an empty sample.
func (s *Sample) Median() (median float64, ok bool) {
	n := len(s.sorted)
	if n == 0 {
		return 0, false
	}
	if n%2 == 0 {
		return midpoint(s.sorted[n/2-1], s.sorted[n/2]), true
	}
	return s.sorted[n/2], true
}

// midpoint returns the mean of a <= b without overflowing.
func midpoint(a, b float64) float64 {
	if (a < 0) != (b < 0) {
		return (a + b) / 2
	}
	return a + (b-a)/2
}

// Min returns the smallest value. ok is false for an empty sample.
func (s *Sample) Min() (float64, bool) {
	if len(s.sorted) == 0 {
		return 0, false
	}
	return s.sorted[0], true
}

// Max returns the largest value. ok is false for an empty sample.
func (s *Sample) Max() (float64, bool) {
	if len(s.sorted) == 0 {
		return 0, false
	}
	return s.sorted[len(s.sorted)-1], true
}

// Summary returns every statistic at once. ok is false for an empty sample.
func (s *Sample) Summary() (Summary, bool) {
	if len(s.sorted) == 0 {
		return Summary{}, false
	}

	avg, _ := s.Average()
	median, _ := s.Median()
	return Summary{
		Count:   len(s.sorted),
		Average: avg,
		Median:  median,
		Min:     s.sorted[0],
		Max:     s.sorted[len(s.sorted)-1],
	}, true
}

// Average returns the arithmetic mean of numbers.
// ok is false when numbers is empty; err is non-nil for non-finite input.
func Average(numbers []float64) (avg float64, ok bool, err error) {
	s, err := NewSample(numbers)
	if err != nil {
		return 0, false, err
	}
	avg, ok = s.Average()
	return avg, ok, nil
}

// Median returns the median of numbers without reordering them.
// ok is false when numbers is empty; err is non-nil for non-finite input.
func Median(numbers []float64) (median float64, ok bool, err error) {
	s, err := NewSample(numbers)
	if err != nil {
		return 0, false, err
	}
	median, ok = s.Median()
	return median, ok, nil
}
