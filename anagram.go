// Package anagram provides combinatorial helpers over the character
// multiset of a word: counting distinct arrangements, scanning a text
// for anagram occurrences, anagram equality and next-permutation.
//
// All functions operate on bytes. Multi-byte UTF-8 sequences are
// treated as their constituent bytes and no case folding is applied.
package anagram

import (
	"math/big"
	"slices"
)

// factorial returns n! exactly. factorial(0) == 1.
func factorial(n int64) *big.Int {
	return new(big.Int).MulRange(1, n)
}

// Count returns the number of distinct arrangements of word's bytes:
// len(word)! divided by the factorial of every byte frequency.
// The result is exact for words of any length. Count("") is 1.
func Count(word string) *big.Int {
	var freq [256]int

	for i := 0; i < len(word); i++ {
		freq[word[i]]++
	}

	res := factorial(int64(len(word)))

	// each partial quotient stays integral, so dividing as we go
	// never truncates
	for _, n := range freq {
		if n > 1 {
			res.Div(res, factorial(int64(n)))
		}
	}

	return res
}

// Occurences returns the number of starting positions in haystack
// whose window of len(needle) bytes is an anagram of needle.
// Overlapping windows are counted individually. A needle longer than
// the haystack never occurs. An empty needle matches the empty window
// at every boundary, giving len(haystack)+1.
func Occurences(haystack, needle string) int {
	if len(needle) > len(haystack) {
		return 0
	}

	// diff[c] is the window count minus the needle count for byte c;
	// nonzero tracks how many bytes currently disagree
	var diff [256]int

	nonzero := 0

	bump := func(c byte, by int) {
		if diff[c] == 0 {
			nonzero++
		}

		diff[c] += by

		if diff[c] == 0 {
			nonzero--
		}
	}

	for i := 0; i < len(needle); i++ {
		bump(haystack[i], 1)
		bump(needle[i], -1)
	}

	res := 0
	if nonzero == 0 {
		res++
	}

	for i := len(needle); i < len(haystack); i++ {
		bump(haystack[i], 1)
		bump(haystack[i-len(needle)], -1)

		if nonzero == 0 {
			res++
		}
	}

	return res
}

// IsAnagram reports whether left and right contain the same bytes with
// the same multiplicities.
func IsAnagram(left, right string) bool {
	if len(left) != len(right) {
		return false
	}

	var freq [256]int

	for i := 0; i < len(left); i++ {
		freq[left[i]]++
		freq[right[i]]--
	}

	for _, n := range freq {
		if n != 0 {
			return false
		}
	}

	return true
}

// GetNext returns the lexicographically next greater arrangement of
// word's bytes, or the lexicographically smallest arrangement when
// word is already the greatest. GetNext("") is "".
//
// Examples:
//
//	GetNext("abc") == "acb"
//	GetNext("cba") == "abc"
func GetNext(word string) string {
	b := []byte(word)

	// rightmost ascent
	i := len(b) - 2
	for i >= 0 && b[i] >= b[i+1] {
		i--
	}

	// already the greatest arrangement; wrap to the smallest
	if i < 0 {
		slices.Sort(b)

		return string(b)
	}

	// rightmost byte greater than b[i]; the suffix is non-increasing,
	// so this is also the smallest such byte
	j := len(b) - 1
	for b[j] <= b[i] {
		j--
	}

	b[i], b[j] = b[j], b[i]
	slices.Reverse(b[i+1:])

	return string(b)
}
