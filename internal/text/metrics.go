package text

import "unicode"

// Analysis bundles every string metric for a single input.
type Analysis struct {
	Original     string `json:"original"`
	Reversed     string `json:"reversed"`
	VowelCount   int    `json:"vowel_count"`
	IsPalindrome bool   `json:"is_palindrome"`
}

// Analyze computes all string metrics for s.
func Analyze(s string) Analysis {
	return Analysis{
		Original:     s,
		Reversed:     Reverse(s),
		VowelCount:   CountVowels(s),
		IsPalindrome: IsPalindrome(s),
	}
}

// Reverse returns s with its runes in reverse order. Multi-byte characters
// are moved as whole units, so "añb" becomes "bña".
func Reverse(s string) string {
	runes := []rune(s)
	reverseRunes(runes)
	return string(runes)
}

// CountVowels counts the runes of s whose ASCII lowercase form is a, e, i,
// o or u. Case does not matter; everything else contributes nothing.
func CountVowels(s string) int {
	count := 0
	for _, r := range s {
		switch asciiLower(r) {
		case 'a', 'e', 'i', 'o', 'u':
			count++
		}
	}
	return count
}

// IsPalindrome reports whether s reads the same in both directions once
// everything except letters and digits is removed and ASCII letters are
// lowercased. Empty input, or input with no letters or digits, is a
// palindrome.
func IsPalindrome(s string) bool {
	cleaned := make([]rune, 0, len(s))
	for _, r := range s {
		if isAlphanumeric(r) {
			cleaned = append(cleaned, asciiLower(r))
		}
	}

	for i, j := 0, len(cleaned)-1; i < j; i, j = i+1, j-1 {
		if cleaned[i] != cleaned[j] {
			return false
		}
	}
	return true
}

func reverseRunes(runes []rune) {
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
}

// asciiLower only folds A-Z. Non-ASCII runes are returned unchanged so that
// characters like U+0130 never turn into an ASCII vowel.
func asciiLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// isAlphanumeric reports whether r is alphabetic or numeric. Alphabetic
// includes Other_Alphabetic marks such as Devanagari vowel signs.
func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.Is(unicode.Other_Alphabetic, r)
}
