// Package stats provides descriptive statistics over a sample of
// floating-point numbers.
//
// Empty samples are valid: statistics that have no meaning for them report
// absence through a false ok result rather than an error or a sentinel
// value. Non-finite inputs (NaN, +Inf, -Inf) are rejected when a Sample is
// built, so every statistic is computed over a totally ordered set.
package stats
