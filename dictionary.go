package anagram

// Dictionary indexes a word list for exact lookups and anagram search.
type Dictionary struct {
	root *node
}

type node struct {
	children map[byte]*node
	word     bool
}

func newNode() *node {
	return &node{children: make(map[byte]*node)}
}

// NewDictionary builds a dictionary over words.
func NewDictionary(words []string) *Dictionary {
	d := &Dictionary{root: newNode()}

	for _, word := range words {
		d.insert(word)
	}

	return d
}

func (d *Dictionary) insert(word string) {
	nodeRef := d.root

	for i := 0; i < len(word); i++ {
		if nodeRef.children[word[i]] == nil {
			nodeRef.children[word[i]] = newNode()
		}

		nodeRef = nodeRef.children[word[i]]
	}

	nodeRef.word = true
}

// Lookup reports whether word is in the dictionary.
func (d *Dictionary) Lookup(word string) bool {
	nodeRef := d.root

	for i := 0; i < len(word); i++ {
		nodeRef = nodeRef.children[word[i]]
		if nodeRef == nil {
			return false
		}
	}

	return nodeRef.word
}

// Anagrams returns up to max dictionary words that are anagrams of
// word, without duplicates. Word itself is included when it is in the
// dictionary. A max below 1 is treated as 1.
func (d *Dictionary) Anagrams(word string, max int) []string {
	if max < 1 {
		max = 1
	}

	seen := make(map[string]bool)
	res := make([]string, 0, max)

	for _, p := range Permutations(word, nil) {
		if seen[p] || !d.Lookup(p) {
			continue
		}

		seen[p] = true
		res = append(res, p)

		if len(res) >= max {
			break
		}
	}

	return res
}
