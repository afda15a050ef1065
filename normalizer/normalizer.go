// Package normalizer rewrites noisy informal Korean into a canonical form the
// tokenizer can segment: emotive jamo runs collapse, exaggerated vowel
// elongation collapses, and known misspellings are corrected against the
// dictionary. Normalization never fails and is idempotent.
package normalizer

import (
	"golang.org/x/text/unicode/norm"

	"github.com/kotext/kotext/dictionary"
	"github.com/kotext/kotext/hangul"
)

// Longest emotive run kept after collapsing, e.g. ㅋㅋㅋㅋㅋ -> ㅋㅋ.
const maxParticleRun = 2

// Vowel pairs commonly confused because they sound alike.
var vowelConfusion = map[rune][]rune{
	'ㅐ': {'ㅔ'},
	'ㅔ': {'ㅐ'},
	'ㅒ': {'ㅖ'},
	'ㅖ': {'ㅒ'},
	'ㅚ': {'ㅙ', 'ㅞ'},
	'ㅙ': {'ㅚ', 'ㅞ'},
	'ㅞ': {'ㅚ', 'ㅙ'},
}

// Normalizer holds the dictionary consulted for spelling correction.
type Normalizer struct {
	dict *dictionary.Dictionary
}

// New creates a normalizer backed by the given dictionary.
func New(dict *dictionary.Dictionary) *Normalizer {
	return &Normalizer{dict: dict}
}

// Normalize returns the canonical form of text.
func (n *Normalizer) Normalize(text string) string {
	s, _ := n.NormalizeWithAlignment(text)
	return s
}

// NormalizeWithAlignment returns the canonical form along with a mapping from
// each normalized rune position to the rune position in the original text it
// derives from. Token offsets downstream are reported in normalized
// coordinates; the alignment lets callers project them back.
func (n *Normalizer) NormalizeWithAlignment(text string) (string, []int) {
	if text == "" {
		return "", nil
	}
	runes, align := fold(text)
	runes, align = detachEmotiveCoda(runes, align)
	runes, align = collapseParticleRuns(runes, align)
	runes, align = collapseElongation(runes, align)
	runes, align = n.correctSpelling(runes, align)
	return string(runes), align
}

// fold applies NFC composition and seeds the alignment. When composition
// changes the rune count the alignment is a monotone best effort; inputs
// produced by this package are already NFC so the second pass is exact.
func fold(text string) ([]rune, []int) {
	orig := []rune(text)
	folded := []rune(norm.NFC.String(text))
	align := make([]int, len(folded))
	for i := range folded {
		j := i
		if j >= len(orig) {
			j = len(orig) - 1
		}
		align[i] = j
	}
	return folded, align
}

// detachEmotiveCoda strips a trailing consonant that bleeds into a following
// emotive run: 그랰ㅋㅋ reads as 그래 + ㅋㅋㅋ.
func detachEmotiveCoda(runes []rune, align []int) ([]rune, []int) {
	out := make([]rune, 0, len(runes)+1)
	outAlign := make([]int, 0, len(runes)+1)
	for i, r := range runes {
		if i+1 < len(runes) && hangul.IsParticle(runes[i+1]) {
			if open, tail, ok := hangul.StripTail(r); ok && tail == runes[i+1] {
				out = append(out, open, tail)
				outAlign = append(outAlign, align[i], align[i])
				continue
			}
		}
		out = append(out, r)
		outAlign = append(outAlign, align[i])
	}
	return out, outAlign
}

// collapseParticleRuns shortens runs of three or more identical emotive jamo
// to the canonical two-character form.
func collapseParticleRuns(runes []rune, align []int) ([]rune, []int) {
	out := runes[:0:0]
	outAlign := align[:0:0]
	for i := 0; i < len(runes); {
		r := runes[i]
		j := i
		for j < len(runes) && runes[j] == r {
			j++
		}
		keep := j - i
		if hangul.IsParticle(r) && keep > maxParticleRun {
			keep = maxParticleRun
		}
		for k := 0; k < keep; k++ {
			out = append(out, r)
			outAlign = append(outAlign, align[i+k])
		}
		i = j
	}
	return out, outAlign
}

// collapseElongation reduces a repeated trailing vowel syllable (ㅇ onset, no
// coda) after another syllable to a single instance: 좋아아아아 -> 좋아.
func collapseElongation(runes []rune, align []int) ([]rune, []int) {
	out := runes[:0:0]
	outAlign := align[:0:0]
	for i := 0; i < len(runes); {
		r := runes[i]
		j := i
		for j < len(runes) && runes[j] == r {
			j++
		}
		keep := j - i
		if keep > 1 && isVowelCarrier(r) && len(out) > 0 && hangul.IsSyllable(out[len(out)-1]) {
			keep = 1
		}
		for k := 0; k < keep; k++ {
			out = append(out, r)
			outAlign = append(outAlign, align[i+k])
		}
		i = j
	}
	return out, outAlign
}

func isVowelCarrier(r rune) bool {
	s, ok := hangul.Decompose(r)
	return ok && s.Lead == 'ㅇ' && s.Tail == 0
}

// correctSpelling rewrites known misspellings inside each syllable run. The
// typo table applies unconditionally with longest-match priority; the vowel
// confusion pass only rewrites a run when the substituted form is a
// dictionary word and the original is not.
func (n *Normalizer) correctSpelling(runes []rune, align []int) ([]rune, []int) {
	out := runes[:0:0]
	outAlign := align[:0:0]
	for i := 0; i < len(runes); {
		if !hangul.IsSyllable(runes[i]) {
			out = append(out, runes[i])
			outAlign = append(outAlign, align[i])
			i++
			continue
		}
		j := i
		for j < len(runes) && hangul.IsSyllable(runes[j]) {
			j++
		}
		fixed, fixedAlign := n.fixRun(runes[i:j], align[i:j])
		out = append(out, fixed...)
		outAlign = append(outAlign, fixedAlign...)
		i = j
	}
	return out, outAlign
}

func (n *Normalizer) fixRun(run []rune, align []int) ([]rune, []int) {
	run, align = n.applyTypoTable(run, align)
	if !n.dict.Lookup(string(run)).Empty() {
		return run, align
	}
	if len(run) > n.dict.MaxWordLength() {
		return run, align
	}
	if sub, ok := n.substituteVowel(run); ok {
		return sub, align
	}
	return run, align
}

func (n *Normalizer) applyTypoTable(run []rune, align []int) ([]rune, []int) {
	maxKey := n.dict.TypoMaxLength()
	if maxKey == 0 {
		return run, align
	}
	out := run[:0:0]
	outAlign := align[:0:0]
	for i := 0; i < len(run); {
		matched := false
		limit := len(run) - i
		if limit > maxKey {
			limit = maxKey
		}
		for l := limit; l >= 1; l-- {
			right, ok := n.dict.Typo(string(run[i : i+l]))
			if !ok {
				continue
			}
			for _, rr := range right {
				out = append(out, rr)
				outAlign = append(outAlign, align[i])
			}
			i += l
			matched = true
			break
		}
		if !matched {
			out = append(out, run[i])
			outAlign = append(outAlign, align[i])
			i++
		}
	}
	return out, outAlign
}

// substituteVowel tries one phonetic vowel substitution at a time, leftmost
// first, and accepts the first form the dictionary knows.
func (n *Normalizer) substituteVowel(run []rune) ([]rune, bool) {
	for i, r := range run {
		s, ok := hangul.Decompose(r)
		if !ok {
			continue
		}
		for _, alt := range vowelConfusion[s.Vowel] {
			replaced, ok := hangul.Compose(s.Lead, alt, s.Tail)
			if !ok {
				continue
			}
			cand := make([]rune, len(run))
			copy(cand, run)
			cand[i] = replaced
			if !n.dict.Lookup(string(cand)).Empty() {
				return cand, true
			}
		}
	}
	return nil, false
}
