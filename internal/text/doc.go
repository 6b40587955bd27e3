// Package text contains pure string metrics (reversal, vowel counting,
// palindrome detection) and word frequency analysis over free text.
//
// Every function is stateless and safe for concurrent use. Nothing in this
// package formats output or parses flags; callers render the results.
package text
