// Package dictionary implements the process-wide word store: a mapping from
// part-of-speech tags to word sets, seeded from the embedded base lexicon and
// mutable at runtime. All methods are safe for concurrent use; a mutation is
// atomic with respect to readers.
package dictionary

import (
	"strings"
	"sync"
	"unicode"

	"github.com/kotext/kotext/pos"
)

// Match is one dictionary hit at a text position: a prefix of the given
// length carrying the tags it is known under.
type Match struct {
	Length int
	Tags   pos.Set
}

// Dictionary maps words to the POS tags they are known under. Words are keyed
// once and carry a tag bitmask so a single lookup answers all tags at a
// position.
type Dictionary struct {
	mu      sync.RWMutex
	words   map[string]pos.Set
	maxLen  int // longest word, in runes; never shrinks on removal
	gen     uint64
	typos   map[string]string
	typoMax int
	spam    []string
}

// New creates an empty dictionary.
func New() *Dictionary {
	return &Dictionary{
		words: make(map[string]pos.Set),
		typos: make(map[string]string),
	}
}

// Add inserts words under the given tag. Words containing whitespace are
// silently ignored, matching the documented contract for user words.
func (d *Dictionary) Add(p pos.Pos, words ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, w := range words {
		if w == "" || containsSpace(w) {
			continue
		}
		d.words[w] = d.words[w].With(p)
		if n := len([]rune(w)); n > d.maxLen {
			d.maxLen = n
		}
	}
	d.gen++
}

// Remove deletes words from the given tag's set. Removing an absent word is a
// no-op.
func (d *Dictionary) Remove(p pos.Pos, words ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, w := range words {
		s, ok := d.words[w]
		if !ok {
			continue
		}
		s = s.Without(p)
		if s.Empty() {
			delete(d.words, w)
		} else {
			d.words[w] = s
		}
	}
	d.gen++
}

// Contains reports whether word is known under tag p.
func (d *Dictionary) Contains(p pos.Pos, word string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.words[word].Has(p)
}

// Lookup returns the tag set a word is known under. An empty set means the
// word is out of vocabulary.
func (d *Dictionary) Lookup(word string) pos.Set {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.words[word]
}

// PrefixMatches returns every dictionary word that is a prefix of
// runes[at:], in ascending length order.
func (d *Dictionary) PrefixMatches(runes []rune, at int) []Match {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []Match
	max := len(runes) - at
	if max > d.maxLen {
		max = d.maxLen
	}
	for l := 1; l <= max; l++ {
		if tags := d.words[string(runes[at:at+l])]; !tags.Empty() {
			out = append(out, Match{Length: l, Tags: tags})
		}
	}
	return out
}

// MaxWordLength returns the rune length of the longest known word.
func (d *Dictionary) MaxWordLength() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.maxLen
}

// Generation increments on every mutation. Consumers caching derived results
// compare generations to invalidate.
func (d *Dictionary) Generation() uint64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.gen
}

// Size returns the number of distinct words.
func (d *Dictionary) Size() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.words)
}

// Typo returns the canonical spelling for a known misspelling.
func (d *Dictionary) Typo(surface string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	right, ok := d.typos[surface]
	return right, ok
}

// TypoMaxLength returns the rune length of the longest misspelling key.
func (d *Dictionary) TypoMaxLength() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.typoMax
}

// SpamWords returns the low-information denylist used by the phrase
// extractor. The returned slice must not be modified.
func (d *Dictionary) SpamWords() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.spam
}

func (d *Dictionary) addTypo(wrong, right string) {
	d.typos[wrong] = right
	if n := len([]rune(wrong)); n > d.typoMax {
		d.typoMax = n
	}
}

func containsSpace(s string) bool {
	return strings.ContainsFunc(s, unicode.IsSpace)
}
