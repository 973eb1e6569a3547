package anagram

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var dictWords = []string{"listen", "silent", "enlist", "tinsel", "stone", "notes", "onset"}

func TestDictionaryLookup(t *testing.T) {
	d := NewDictionary(dictWords)

	tests := []struct {
		word string
		want bool
	}{
		{"listen", true},
		{"silent", true},
		{"stone", true},
		{"liste", false},
		{"listens", false},
		{"absent", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := d.Lookup(tt.word); got != tt.want {
			t.Errorf("Lookup(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestDictionaryAnagrams(t *testing.T) {
	d := NewDictionary(dictWords)

	got := d.Anagrams("inlets", 10)
	slices.Sort(got)

	want := []string{"enlist", "listen", "silent", "tinsel"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Anagrams(%q) mismatch (-want +got):\n%s", "inlets", diff)
	}
}

func TestDictionaryAnagramsMax(t *testing.T) {
	d := NewDictionary(dictWords)

	if got := d.Anagrams("inlets", 2); len(got) != 2 {
		t.Errorf("Anagrams with max 2 returned %d matches, want 2", len(got))
	}

	// max below 1 falls back to a single match
	if got := d.Anagrams("inlets", 0); len(got) != 1 {
		t.Errorf("Anagrams with max 0 returned %d matches, want 1", len(got))
	}
}

func TestDictionaryAnagramsNoMatch(t *testing.T) {
	d := NewDictionary(dictWords)

	if got := d.Anagrams("zzzzzz", 10); len(got) != 0 {
		t.Errorf("Anagrams(%q) = %v, want none", "zzzzzz", got)
	}
}
