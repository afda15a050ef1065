package tokenizer

import "github.com/kotext/kotext/pos"

// Conjugation endings are short; bounding the scan keeps the ending search
// linear in practice.
const maxEndingLen = 4

// inflection is an inflected Verb/Adjective surface form recognized at a
// position: a dictionary stem followed by conjugation endings.
type inflection struct {
	length int // surface length in runes
	stem   string
	tag    pos.Pos
}

// Vowel-contracted syllables: the surface syllable fuses the stem's last
// syllable with the first ending vowel (하+었 -> 했).
var contractions = map[rune]struct {
	stemEnd rune
	ending  string
}{
	'했': {'하', "었"},
	'해': {'하', "어"},
	'갔': {'가', "았"},
	'왔': {'오', "았"},
	'됐': {'되', "었"},
	'돼': {'되', "어"},
	'봐': {'보', "아"},
	'줘': {'주', "어"},
	'써': {'쓰', "어"},
	'져': {'지', "어"},
}

var stemTags = []pos.Pos{pos.Verb, pos.Adjective}

// inflections lists every inflected form starting at runes[0]. The stem is
// reported in dictionary citation form (stem + 다). Plain nouns never
// receive a stem.
func (t *Tokenizer) inflections(runes []rune) []inflection {
	var out []inflection
	maxStem := t.dict.MaxWordLength()
	for k := 1; k <= maxStem && k <= len(runes); k++ {
		stem := string(runes[:k])
		tags := t.dict.Lookup(stem)
		for _, tag := range stemTags {
			if !tags.Has(tag) {
				continue
			}
			for _, e := range t.endingLengths(nil, runes[k:]) {
				if e == 0 {
					continue // bare stems are plain dictionary matches
				}
				out = append(out, inflection{length: k + e, stem: stem + "다", tag: tag})
			}
		}

		c, ok := contractions[runes[k-1]]
		if !ok {
			continue
		}
		fused := string(runes[:k-1]) + string(c.stemEnd)
		fusedTags := t.dict.Lookup(fused)
		for _, tag := range stemTags {
			if !fusedTags.Has(tag) {
				continue
			}
			for _, e := range t.endingLengths([]rune(c.ending), runes[k:]) {
				out = append(out, inflection{length: k + e, stem: fused + "다", tag: tag})
			}
		}
	}
	return out
}

// endingLengths returns every surface length L such that prefix+rest[:L]
// decomposes as zero or more PreEomi endings followed by a final Eomi.
// prefix is the virtual ending material recovered from a contracted syllable
// and consumes no surface runes.
func (t *Tokenizer) endingLengths(prefix, rest []rune) []int {
	full := make([]rune, 0, len(prefix)+len(rest))
	full = append(full, prefix...)
	full = append(full, rest...)
	n := len(full)
	p := len(prefix)

	reachable := make([]bool, n+1)
	valid := make([]bool, n+1)
	reachable[0] = true
	for i := 0; i < n; i++ {
		if !reachable[i] {
			continue
		}
		limit := n - i
		if limit > maxEndingLen {
			limit = maxEndingLen
		}
		for l := 1; l <= limit; l++ {
			tags := t.dict.Lookup(string(full[i : i+l]))
			if tags.Has(pos.PreEomi) {
				reachable[i+l] = true
			}
			if tags.Has(pos.Eomi) {
				valid[i+l] = true
			}
		}
	}

	var out []int
	for i := p; i <= n; i++ {
		if valid[i] {
			out = append(out, i-p)
		}
	}
	return out
}
