package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReverse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "ascii word", input: "hello", expected: "olleh"},
		{name: "another word", input: "rust", expected: "tsur"},
		{name: "empty", input: "", expected: ""},
		{name: "single rune", input: "x", expected: "x"},
		{name: "multi-byte runes stay whole", input: "añb", expected: "bña"},
		{name: "cjk", input: "日本語", expected: "語本日"},
		{name: "spaces kept", input: "a b  c", expected: "c  b a"},
	}

	for _, tc := range testCases {

		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, Reverse(tc.input))
		})
	}
}

func TestReverseIsInvolution(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "hello", "Hello Rust", "añb", "A man a plan a canal Panama", "🙂 smile", "日本語テキスト"}
	for _, s := range inputs {
		assert.Equal(t, s, Reverse(Reverse(s)), "reversing twice should give back %q", s)
	}
}

func TestCountVowels(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input    string
		expected int
	}{
		{"hello world", 3},
		{"", 0},
		{"hello", 2},
		{"aeiou", 5},
		{"AEIOU", 5},
		{"xyz", 0},
		{"HELLO", 2},
		{"12345 !?", 0},
		// The dotted capital I is not an ASCII vowel.
		{"İstanbul", 2},
	}

	for _, tc := range testCases {

		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, CountVowels(tc.input))
		})
	}
}

func TestIsPalindrome(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input    string
		expected bool
	}{
		{"racecar", true},
		{"A man a plan a canal Panama", true},
		{"hello", false},
		{"", true},
		{"!!! ...", true},
		{"Was it a car or a cat I saw?", true},
		{"No 'x' in Nixon", true},
		{"12321", true},
		{"12345", false},
		{"ab", false},
		// Only ASCII letters are case folded.
		{"Été", false},
		{"été", true},
		// Vowel signs are alphabetic and take part in the comparison.
		{"का", false},
		{"ाकाा", false},
		{"ाका", true},
	}

	for _, tc := range testCases {

		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, IsPalindrome(tc.input))
		})
	}
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	got := Analyze("racecar")
	assert.Equal(t, Analysis{
		Original:     "racecar",
		Reversed:     "racecar",
		VowelCount:   3,
		IsPalindrome: true,
	}, got)

	got = Analyze("Hello Rust")
	assert.Equal(t, "tsuR olleH", got.Reversed)
	assert.Equal(t, 3, got.VowelCount)
	assert.False(t, got.IsPalindrome)
}

func TestIsAlphanumeric(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		r        rune
		expected bool
	}{
		{name: "ASCII letter", r: 'a', expected: true},
		{name: "digit", r: '7', expected: true},
		{name: "Roman numeral", r: 'Ⅻ', expected: true},
		{name: "Devanagari vowel sign AA", r: '\u093E', expected: true},
		{name: "Devanagari vowel sign E", r: '\u0947', expected: true},
		{name: "combining acute accent", r: '\u0301', expected: false},
		{name: "apostrophe", r: '\'', expected: false},
		{name: "space", r: ' ', expected: false},
	}

	for _, tc := range testCases {

		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, isAlphanumeric(tc.r))
		})
	}
}
